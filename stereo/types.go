// Package stereo: result types, sentinel errors, and the report container.
package stereo

import "errors"

// Sentinel errors for stereocenter perception.
var (
	// ErrNilMolecule is returned when a nil molecule is passed to Perceive
	// or FindStereocenters.
	ErrNilMolecule = errors.New("stereo: molecule is nil")

	// ErrUnsupportedGeometry marks an atom whose coordination the tetrahedral
	// algorithm cannot classify (five or more connections). It is used as a
	// typed per-atom skip: the atom is omitted from the report and perception
	// of the remaining atoms continues.
	ErrUnsupportedGeometry = errors.New("stereo: unsupported (non-tetrahedral) geometry")
)

// Label is the configuration assigned to a candidate stereocenter.
type Label string

const (
	// LabelR is the rectus configuration.
	LabelR Label = "R"
	// LabelS is the sinister configuration.
	LabelS Label = "S"
	// LabelUnspecified marks a candidate whose configuration the input never
	// pinned down.
	LabelUnspecified Label = "?"
)

// Assigned reports whether the label carries an actual configuration.
func (l Label) Assigned() bool { return l == LabelR || l == LabelS }

// Center is one perceived stereocenter: the atom's stable index and its
// configuration label.
type Center struct {
	// AtomIdx is the atom's 0-based index in the input molecule.
	AtomIdx int
	// Label is "R", "S", or "?".
	Label Label
}

// Report aggregates one perception run: every candidate center in ascending
// atom-index order. The three views below are pure filters over the same
// canonical slice, so the assigned and unassigned views always partition All.
type Report struct {
	centers []Center
}

// All returns every candidate, assigned and unspecified, ascending by atom
// index. The returned slice is a fresh copy.
func (r *Report) All() []Center {
	out := make([]Center, len(r.centers))
	copy(out, r.centers)

	return out
}

// Assigned returns only the candidates labeled R or S.
func (r *Report) Assigned() []Center {
	return r.filter(true)
}

// Unassigned returns only the candidates labeled "?".
func (r *Report) Unassigned() []Center {
	return r.filter(false)
}

// filter keeps centers whose Assigned() status matches want.
func (r *Report) filter(want bool) []Center {
	out := make([]Center, 0, len(r.centers))
	var c Center
	for _, c = range r.centers {
		if c.Label.Assigned() == want {
			out = append(out, c)
		}
	}

	return out
}

// Len reports the total number of candidates.
func (r *Report) Len() int { return len(r.centers) }
