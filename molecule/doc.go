// Package molecule defines the in-memory molecular graph consumed by the rest
// of molkit: atoms, bonds, ring membership, and discrete tetrahedral parity
// marks. A Molecule is built once (by the smiles parser or by hand) and is
// treated as read-only by every downstream consumer.
//
// What:
//
//   - Atom: stable 0-based index, atomic number, isotope, formal charge,
//     implicit hydrogen count, aromaticity, and an optional Parity mark.
//   - Bond: endpoint pair, order (single/double/triple/aromatic), and a ring
//     flag populated by PerceiveRings.
//   - Molecule: append-only builder (AddAtom, AddBond) plus deterministic
//     read accessors (Atoms, Bonds, Atom, Bond, Neighbors).
//   - PerceiveRings: marks every bond that lies on at least one cycle, via
//     bridge detection (a bond is in a ring iff it is not a bridge).
//   - Validate: rejects graphs whose bonds reference missing atoms.
//
// Why:
//   - Stereocenter perception, formula building, and descriptor counting all
//     need one shared, immutable-after-build graph with stable indices and a
//     stable neighbor order (parity marks are defined relative to that order).
//
// Key Types & Constants:
//
//   - BondOrder: Single, Double, Triple, Aromatic
//   - Parity: ParityNone, ParityAnticlockwise, ParityClockwise
//   - Neighbor: (AtomIdx, BondIdx) pair returned by Neighbors
//
// Complexity:
//
//   - AddAtom/AddBond: O(1) amortized
//   - Neighbors:       O(1) (precomputed adjacency)
//   - PerceiveRings:   Time O(V+E), Memory O(V) (one DFS, low-link bridges)
//   - Validate:        O(V+E)
//
// Errors:
//
//   - ErrAtomIndex       atom index out of range
//   - ErrMalformedGraph  bond endpoints reference missing atoms
//   - ErrUnknownElement  element symbol not in the periodic table
package molecule
