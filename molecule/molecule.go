// Package molecule: the Molecule container and its build/read methods.
package molecule

import "fmt"

// Molecule is the molecular graph. Build it with AddAtom/AddBond, then treat
// it as read-only: every consumer in molkit traverses without mutating, so a
// single Molecule may be shared across goroutines after construction.
type Molecule struct {
	atoms []Atom
	bonds []Bond

	// adjacency[i] lists i's neighbors in bond-insertion order. Parity marks
	// are defined against this order, so it is part of the public contract.
	adjacency [][]Neighbor
}

// New returns an empty Molecule.
func New() *Molecule {
	return &Molecule{}
}

// AddAtom appends a new atom and returns its index. The Index field of the
// argument is overwritten; callers need not set it.
func (m *Molecule) AddAtom(a Atom) int {
	a.Index = len(m.atoms)
	m.atoms = append(m.atoms, a)
	m.adjacency = append(m.adjacency, nil)

	return a.Index
}

// AddBond appends a bond between two existing atoms and returns its index.
// Returns ErrAtomIndex when either endpoint does not exist.
func (m *Molecule) AddBond(from, to int, order BondOrder) (int, error) {
	// 1. Validate endpoints
	if from < 0 || from >= len(m.atoms) || to < 0 || to >= len(m.atoms) {
		return 0, fmt.Errorf("molecule: AddBond(%d,%d): %w", from, to, ErrAtomIndex)
	}

	// 2. Append bond and mirror adjacency on both endpoints
	idx := len(m.bonds)
	m.bonds = append(m.bonds, Bond{From: from, To: to, Order: order})
	m.adjacency[from] = append(m.adjacency[from], Neighbor{AtomIdx: to, BondIdx: idx})
	m.adjacency[to] = append(m.adjacency[to], Neighbor{AtomIdx: from, BondIdx: idx})

	return idx, nil
}

// AtomCount reports the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// BondCount reports the number of bonds.
func (m *Molecule) BondCount() int { return len(m.bonds) }

// Atoms returns the atom slice in index order. The slice is the live backing
// array; callers must not modify it.
func (m *Molecule) Atoms() []Atom { return m.atoms }

// Bonds returns the bond slice in insertion order. The slice is the live
// backing array; callers must not modify it.
func (m *Molecule) Bonds() []Bond { return m.bonds }

// Atom returns the atom at index i. Panics on out-of-range access like a
// slice would; use Validate to vet untrusted graphs first.
func (m *Molecule) Atom(i int) Atom { return m.atoms[i] }

// Bond returns the bond at index i.
func (m *Molecule) Bond(i int) Bond { return m.bonds[i] }

// Neighbors returns atom i's adjacent (atom, bond) pairs in bond-insertion
// order. The returned slice is live; callers must not modify it.
func (m *Molecule) Neighbors(i int) []Neighbor { return m.adjacency[i] }

// SetParity records a tetrahedral stereo mark on atom i.
func (m *Molecule) SetParity(i int, p Parity) error {
	if i < 0 || i >= len(m.atoms) {
		return fmt.Errorf("molecule: SetParity(%d): %w", i, ErrAtomIndex)
	}
	m.atoms[i].Parity = p

	return nil
}

// SetHydrogens overwrites atom i's implicit hydrogen count.
func (m *Molecule) SetHydrogens(i, n int) error {
	if i < 0 || i >= len(m.atoms) {
		return fmt.Errorf("molecule: SetHydrogens(%d): %w", i, ErrAtomIndex)
	}
	m.atoms[i].Hydrogens = n

	return nil
}

// HeavyDegree reports how many non-hydrogen neighbors atom i has. Explicit
// hydrogen atoms in the graph count as hydrogens, not heavy neighbors.
func (m *Molecule) HeavyDegree(i int) int {
	var deg int
	for _, nb := range m.adjacency[i] {
		if m.atoms[nb.AtomIdx].AtomicNum != 1 {
			deg++
		}
	}

	return deg
}

// TotalHydrogens reports atom i's hydrogen total: implicit count plus
// explicit H-atom neighbors.
func (m *Molecule) TotalHydrogens(i int) int {
	n := m.atoms[i].Hydrogens
	for _, nb := range m.adjacency[i] {
		if m.atoms[nb.AtomIdx].AtomicNum == 1 {
			n++
		}
	}

	return n
}

// Validate checks structural consistency: every bond endpoint must refer to
// an existing atom and no bond may be a self-loop. Returns ErrMalformedGraph
// (wrapped with the offending bond index) on the first violation.
func (m *Molecule) Validate() error {
	var b Bond
	for i := range m.bonds {
		b = m.bonds[i]
		if b.From < 0 || b.From >= len(m.atoms) || b.To < 0 || b.To >= len(m.atoms) || b.From == b.To {
			return fmt.Errorf("molecule: bond %d (%d-%d): %w", i, b.From, b.To, ErrMalformedGraph)
		}
	}

	return nil
}
