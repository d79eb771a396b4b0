// Package stereo: the priority ranking engine. A branchComparator realizes
// the CIP-style total preorder over substituent branches; the duplication and
// phantom rules live here and nowhere else.
package stereo

import (
	"sort"

	"github.com/BerendHuisman/molkit/molecule"
)

// branch is one node of the hierarchical digraph rooted at a center atom.
// Real branches point at a graph atom; synthetic branches (implicit
// hydrogens, multiple-bond duplicates, ring-closure phantoms, lone-pair
// padding) are terminal and carry only an atomic number.
type branch struct {
	// atom is the graph atom index, or -1 for synthetic branches.
	atom int
	// z is the effective atomic number (0 for minimal-priority phantoms).
	z int
	// isotope is the explicit mass number, or 0 for natural abundance.
	isotope int
	// terminal branches are never expanded (synthetic nodes, duplicates,
	// ring revisits).
	terminal bool
	// from is the atom this branch was entered from (-1 for synthetic).
	from int
	// path holds every atom on the walk from the center up to and including
	// from. It is copied, never shared, so comparisons are reentrant.
	path []int
}

// phantomBranch is the minimal-priority terminal node used for ring
// revisits, lone-pair padding, and padding of uneven child lists.
func phantomBranch() branch {
	return branch{atom: -1, z: 0, terminal: true, from: -1}
}

// hydrogenBranch models one implicit hydrogen.
func hydrogenBranch() branch {
	return branch{atom: -1, z: 1, terminal: true, from: -1}
}

// duplicateBranch models the phantom duplicate a multiple bond inserts:
// the partner's atomic number, no substituents of its own.
func duplicateBranch(z int) branch {
	return branch{atom: -1, z: z, terminal: true, from: -1}
}

// realBranch enters graph atom idx from atom from, extending path by from.
func realBranch(mol *molecule.Molecule, idx, from int, path []int) branch {
	a := mol.Atom(idx)

	return branch{atom: idx, z: a.AtomicNum, isotope: a.Isotope, from: from, path: path}
}

// branchComparator compares substituent branches by the hierarchical-digraph
// rules. It holds no mutable traversal state, so one comparator may serve
// any number of concurrent comparisons on the same molecule.
type branchComparator struct {
	mol *molecule.Molecule
}

// compare returns a negative value when a outranks b (a sorts first),
// positive when b outranks a, and 0 when the branches are indistinguishable
// after full digraph exploration, a genuine topological tie.
//
// Comparison order at each node: atomic number (higher wins), then isotope
// mass, then the recursively ranked child lists, first point of difference
// deciding. Termination: every recursion step either consumes a terminal
// branch or extends the copied path by one atom, and a path can never exceed
// the molecule's atom count before the revisit rule cuts it off.
func (c *branchComparator) compare(a, b branch) int {
	// 1. Atomic number, higher priority first
	if a.z != b.z {
		if a.z > b.z {
			return -1
		}

		return 1
	}

	// 2. Isotope mass where atomic numbers tie
	am, bm := effectiveMass(a), effectiveMass(b)
	if am != bm {
		if am > bm {
			return -1
		}

		return 1
	}

	// 3. Recursive comparison of ranked child lists
	ca := c.children(a)
	cb := c.children(b)
	if len(ca) == 0 && len(cb) == 0 {
		return 0
	}
	c.sortDesc(ca)
	c.sortDesc(cb)

	// Pad the shorter list with minimal-priority phantoms so that a missing
	// substituent always loses to any real one.
	n := len(ca)
	if len(cb) > n {
		n = len(cb)
	}
	var x, y branch
	var d int
	for i := 0; i < n; i++ {
		x, y = phantomBranch(), phantomBranch()
		if i < len(ca) {
			x = ca[i]
		}
		if i < len(cb) {
			y = cb[i]
		}
		if d = c.compare(x, y); d != 0 {
			return d
		}
	}

	return 0
}

// children expands a branch into its substituent branches: every neighbor of
// the branch atom except the atom it was entered from, plus multiple-bond
// duplicates (including the duplicate owed to the arrival bond itself) and
// implicit hydrogens. Neighbors already on the walk become terminal phantoms.
func (c *branchComparator) children(b branch) []branch {
	if b.terminal || b.atom < 0 {
		return nil
	}

	// Extend the path by the current atom; copy so sibling walks never share.
	path := make([]int, len(b.path), len(b.path)+1)
	copy(path, b.path)
	path = append(path, b.atom)

	nbs := c.mol.Neighbors(b.atom)
	out := make([]branch, 0, len(nbs)+c.mol.Atom(b.atom).Hydrogens)
	var nb molecule.Neighbor
	var bond molecule.Bond
	var i int
	for _, nb = range nbs {
		bond = c.mol.Bond(nb.BondIdx)
		if nb.AtomIdx == b.from {
			// The arrival bond contributes only its duplicates on this side.
			for i = 0; i < bond.Order.Multiplicity(); i++ {
				out = append(out, duplicateBranch(c.mol.Atom(nb.AtomIdx).AtomicNum))
			}
			continue
		}
		if onPath(path, nb.AtomIdx) {
			// Ring closure: terminal phantom of minimal priority.
			out = append(out, phantomBranch())
		} else {
			out = append(out, realBranch(c.mol, nb.AtomIdx, b.atom, path))
		}
		for i = 0; i < bond.Order.Multiplicity(); i++ {
			out = append(out, duplicateBranch(c.mol.Atom(nb.AtomIdx).AtomicNum))
		}
	}
	for i = 0; i < c.mol.Atom(b.atom).Hydrogens; i++ {
		out = append(out, hydrogenBranch())
	}

	return out
}

// sortDesc orders branches highest priority first, in place.
func (c *branchComparator) sortDesc(bs []branch) {
	sort.SliceStable(bs, func(i, j int) bool {
		return c.compare(bs[i], bs[j]) < 0
	})
}

// rank assigns each branch an integer rank: the number of branches that
// strictly outrank it. Equal integers denote genuine ties; rank 0 is the
// highest priority.
func (c *branchComparator) rank(bs []branch) []int {
	ranks := make([]int, len(bs))
	var i, j int
	for i = range bs {
		for j = range bs {
			if c.compare(bs[j], bs[i]) < 0 {
				ranks[i]++
			}
		}
	}

	return ranks
}

// effectiveMass is the mass used for the isotope tie-break: the explicit
// mass number when present, the standard atomic weight otherwise.
func effectiveMass(b branch) float64 {
	if b.isotope > 0 {
		return float64(b.isotope)
	}

	return molecule.StandardWeight(b.z)
}

// onPath reports whether atom idx already occurs on the walk.
func onPath(path []int, idx int) bool {
	for _, p := range path {
		if p == idx {
			return true
		}
	}

	return false
}
