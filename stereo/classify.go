// Package stereo: the symmetry classifier. It decides whether an atom's four
// substituent branches are pairwise distinguishable under the priority
// ranking, which is the precondition for being a potential stereocenter.
package stereo

import (
	"fmt"

	"github.com/BerendHuisman/molkit/molecule"
)

// tetraBranches is the coordination the tetrahedral model works with.
const tetraBranches = 4

// candidate carries the resolved four-branch ranking of one potential
// stereocenter, in input order: real neighbors in bond-insertion order,
// then implicit hydrogens, then lone-pair phantoms. The configuration
// assigner depends on exactly this order.
type candidate struct {
	atomIdx  int
	branches []branch
	ranks    []int
}

// classify evaluates atom idx. It returns (candidate, true, nil) when the
// atom is a potential stereocenter, (zero, false, nil) when its branches tie,
// and (zero, false, ErrUnsupportedGeometry) when the atom carries more than
// four connections.
func classify(cmp *branchComparator, idx int) (candidate, bool, error) {
	mol := cmp.mol
	atom := mol.Atom(idx)
	nbs := mol.Neighbors(idx)

	// 1. Reject coordination the tetrahedral model cannot express
	if len(nbs)+atom.Hydrogens > tetraBranches {
		return candidate{}, false, fmt.Errorf("stereo: atom %d has %d connections: %w",
			idx, len(nbs)+atom.Hydrogens, ErrUnsupportedGeometry)
	}

	// 2. Build branches: real neighbors first, in bond-insertion order
	branches := make([]branch, 0, tetraBranches)
	root := []int{idx}
	var nb molecule.Neighbor
	for _, nb = range nbs {
		branches = append(branches, realBranch(mol, nb.AtomIdx, idx, root))
	}

	// 3. Pad with implicit hydrogens, then lone-pair phantoms, to four
	for i := 0; i < atom.Hydrogens; i++ {
		branches = append(branches, hydrogenBranch())
	}
	for len(branches) < tetraBranches {
		branches = append(branches, phantomBranch())
	}

	// 4. Rank; any shared rank means two branches are interchangeable and no
	//    spatial arrangement yields distinguishable enantiomers
	ranks := cmp.rank(branches)
	seen := [tetraBranches]bool{}
	var r int
	for _, r = range ranks {
		if seen[r] {
			return candidate{}, false, nil
		}
		seen[r] = true
	}

	return candidate{atomIdx: idx, branches: branches, ranks: ranks}, true, nil
}
