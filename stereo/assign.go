// Package stereo: the configuration assigner. It translates an atom's
// discrete parity mark into an R/S label by comparing the input neighbor
// order against the ranked priority order.
package stereo

import "github.com/BerendHuisman/molkit/molecule"

// assignLabel labels one candidate. Without a parity mark the configuration
// is genuinely unspecified. With a mark, the branches are permuted into
// priority-descending order while counting pairwise swaps: each swap flips
// the rotational sense, and the normalized sense maps clockwise to R,
// anticlockwise to S.
//
// The mark's reference frame is the candidate's input branch order (real
// neighbors in bond-insertion order, implicit hydrogen last), which is
// exactly how molecule.Parity is defined.
func assignLabel(mol *molecule.Molecule, cand candidate) Label {
	// 1. Unmarked candidate: could be chiral, never specified
	sense := mol.Atom(cand.atomIdx).Parity
	if sense == molecule.ParityNone {
		return LabelUnspecified
	}

	// 2. Selection-sort the branch positions into priority order, flipping
	//    the sense once per swap. Ranks are distinct for any candidate, so
	//    the target order is unique.
	order := make([]int, len(cand.ranks))
	for i := range order {
		order[i] = i
	}
	var i, j, best int
	for i = 0; i < len(order); i++ {
		best = i
		for j = i + 1; j < len(order); j++ {
			if cand.ranks[order[j]] < cand.ranks[order[best]] {
				best = j
			}
		}
		if best != i {
			order[i], order[best] = order[best], order[i]
			sense = sense.Invert()
		}
	}

	// 3. Normalized sense decides the label
	if sense == molecule.ParityClockwise {
		return LabelR
	}

	return LabelS
}
