// Package molecule: type and sentinel-error declarations for the molecular
// graph. See doc.go for the package overview.
package molecule

import "errors"

// Sentinel errors for molecular-graph operations.
var (
	// ErrAtomIndex indicates an atom index outside [0, AtomCount).
	ErrAtomIndex = errors.New("molecule: atom index out of range")

	// ErrMalformedGraph indicates a bond whose endpoints do not both refer
	// to existing atoms (dangling reference).
	ErrMalformedGraph = errors.New("molecule: malformed graph: dangling bond endpoint")

	// ErrUnknownElement indicates an element symbol absent from the
	// periodic-table data in elements.go.
	ErrUnknownElement = errors.New("molecule: unknown element symbol")
)

// BondOrder enumerates the bond orders the graph distinguishes.
type BondOrder uint8

const (
	// Single is an ordinary two-electron sigma bond.
	Single BondOrder = iota + 1
	// Double adds one pi bond; it duplicates its partner during priority ranking.
	Double
	// Triple adds two pi bonds.
	Triple
	// Aromatic marks a bond belonging to an aromatic system.
	Aromatic
)

// Multiplicity returns the number of duplicate phantom neighbors a bond of
// this order contributes on each side during priority ranking: 0 for single,
// 1 for double and aromatic, 2 for triple.
func (o BondOrder) Multiplicity() int {
	switch o {
	case Double, Aromatic:
		return 1
	case Triple:
		return 2
	default:
		return 0
	}
}

// Parity is a discrete tetrahedral stereo mark carried by an atom. It records
// the rotational sense of the atom's 2nd..4th neighbors when viewed from the
// 1st, using the atom's neighbor order with the implicit hydrogen (if any)
// taken as the LAST neighbor. ParityNone means no configuration was encoded.
type Parity uint8

const (
	// ParityNone: the input carried no stereo mark for this atom.
	ParityNone Parity = iota
	// ParityAnticlockwise: neighbors 2..4 appear counterclockwise from neighbor 1.
	ParityAnticlockwise
	// ParityClockwise: neighbors 2..4 appear clockwise from neighbor 1.
	ParityClockwise
)

// Invert returns the opposite rotational sense; ParityNone inverts to itself.
func (p Parity) Invert() Parity {
	switch p {
	case ParityAnticlockwise:
		return ParityClockwise
	case ParityClockwise:
		return ParityAnticlockwise
	default:
		return ParityNone
	}
}

// Atom is one node of the molecular graph. Index is assigned by AddAtom and
// never changes afterwards.
type Atom struct {
	// Index is the stable 0-based position of this atom in the graph.
	Index int

	// AtomicNum is the element's atomic number; 0 denotes a wildcard atom.
	AtomicNum int

	// Isotope is the explicit mass number, or 0 for natural abundance.
	Isotope int

	// Charge is the formal charge.
	Charge int

	// Hydrogens is the number of implicit (unlisted) hydrogen atoms.
	Hydrogens int

	// Aromatic reports membership in an aromatic system.
	Aromatic bool

	// Parity is the optional tetrahedral stereo mark; see the Parity docs for
	// the neighbor-order convention it is defined against.
	Parity Parity
}

// Bond is one edge of the molecular graph.
type Bond struct {
	// From and To are the endpoint atom indices (From < To is NOT required;
	// the pair is unordered for graph purposes).
	From, To int

	// Order is the bond order.
	Order BondOrder

	// InRing is true when the bond lies on at least one cycle. It is zero
	// until PerceiveRings runs.
	InRing bool
}

// Other returns the endpoint of b opposite to atom idx.
func (b Bond) Other(idx int) int {
	if b.From == idx {
		return b.To
	}

	return b.From
}

// Neighbor pairs an adjacent atom with the bond reaching it.
type Neighbor struct {
	// AtomIdx is the adjacent atom's index.
	AtomIdx int
	// BondIdx is the index of the connecting bond in Bonds().
	BondIdx int
}
