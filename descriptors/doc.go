// Package descriptors exposes a fixed registry of named scalar descriptors
// over a molecule.Molecule. The registry contract is robustness: every
// registered descriptor evaluates on any valid molecule (exotic elements,
// wildcard atoms, disconnected fragments), returning a value or a typed
// error, never panicking.
//
// What:
//
//   - Descriptor: (Name, Fn) pair; Fn is a pure function of the molecule.
//   - List: the registry in a fixed, documented order, so batch consumers
//     get deterministic columns.
//   - Compute: convenience map of every descriptor for one molecule.
//
// Registered descriptors: AtomCount, HeavyAtomCount, HydrogenCount,
// BondCount, RingBondCount, RingAtomCount, RotatableBondCount, TotalCharge,
// MolWeight, StereocenterCount, UnspecifiedStereocenterCount.
//
// RotatableBondCount counts non-ring single bonds whose both endpoints carry
// at least two heavy neighbors (terminal bonds are never rotatable). This is
// the strict topological definition; no amide or conjugation exclusions are
// applied.
//
// Complexity: every counting descriptor is O(V+E); the stereocenter
// descriptors run a full perception pass.
package descriptors
