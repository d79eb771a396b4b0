// Package molecule: ring perception. A bond lies in a ring iff it is not a
// bridge of the graph, so one depth-first pass with discovery/low-link
// numbering classifies every bond.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) recursion + numbering arrays
package molecule

// ringWalker holds the DFS state for bridge detection.
type ringWalker struct {
	mol   *Molecule
	disc  []int // discovery order per atom, 0 = unvisited
	low   []int // lowest discovery order reachable from the subtree
	clock int
}

// PerceiveRings recomputes the InRing flag of every bond. It is idempotent
// and must be re-run after any AddBond. Disconnected components are covered.
func (m *Molecule) PerceiveRings() {
	// 1. Reset flags and numbering
	for i := range m.bonds {
		m.bonds[i].InRing = false
	}
	w := &ringWalker{
		mol:  m,
		disc: make([]int, len(m.atoms)),
		low:  make([]int, len(m.atoms)),
	}

	// 2. DFS forest over all components
	for v := range m.atoms {
		if w.disc[v] == 0 {
			w.visit(v, -1)
		}
	}
}

// visit explores atom v, having arrived via bond fromBond (-1 at roots).
// Tree edges recurse; back edges pull low-link values down. A tree edge whose
// child subtree cannot reach above v is a bridge; every other bond is cyclic.
func (w *ringWalker) visit(v, fromBond int) {
	// 1. Stamp discovery and low-link
	w.clock++
	w.disc[v] = w.clock
	w.low[v] = w.clock

	// 2. Scan incident bonds, skipping only the arrival bond itself so that
	//    parallel bonds to the parent still register as cycles
	var nb Neighbor
	for _, nb = range w.mol.adjacency[v] {
		if nb.BondIdx == fromBond {
			continue
		}
		if w.disc[nb.AtomIdx] == 0 {
			// Tree edge
			w.visit(nb.AtomIdx, nb.BondIdx)
			if w.low[nb.AtomIdx] < w.low[v] {
				w.low[v] = w.low[nb.AtomIdx]
			}
			// Child subtree reaches v or above: the tree edge is cyclic
			if w.low[nb.AtomIdx] <= w.disc[v] {
				w.mol.bonds[nb.BondIdx].InRing = true
			}
		} else {
			// Back edge (or forward view of one): always cyclic
			if w.disc[nb.AtomIdx] < w.disc[v] {
				w.mol.bonds[nb.BondIdx].InRing = true
			}
			if w.disc[nb.AtomIdx] < w.low[v] {
				w.low[v] = w.disc[nb.AtomIdx]
			}
		}
	}
}

// InRing reports whether atom i has at least one ring bond.
func (m *Molecule) InRing(i int) bool {
	for _, nb := range m.adjacency[i] {
		if m.bonds[nb.BondIdx].InRing {
			return true
		}
	}

	return false
}
