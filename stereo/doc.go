// Package stereo perceives tetrahedral stereocenters on a molecule.Molecule:
// it finds every atom that could carry a spatial configuration, translates
// any discrete parity mark present in the input into an R/S label, and leaves
// unmarked candidates explicitly unspecified.
//
// What:
//
//   - Priority ranking (rank.go): a CIP-style comparator orders an atom's
//     substituent branches by hierarchical-digraph comparison: atomic number
//     first, then isotope mass, then recursive comparison of the branches'
//     own ranked neighbor sets. Multiple bonds insert duplicate phantom
//     neighbors on each side; revisiting an atom already on the current walk
//     yields a terminal phantom of minimal priority, which bounds recursion
//     on rings.
//   - Symmetry classification (classify.go): an atom is a candidate center
//     iff its four branches (implicit hydrogens and lone-pair phantoms pad
//     shorter lists) all receive distinct ranks. Two tied branches mean no
//     arrangement is distinguishable, so the atom is rejected.
//   - Enumeration (find.go): one ascending pass over all atoms; only atoms in
//     a ring or with at least three heavy substituents are evaluated; atoms
//     with more than four connections are skipped as unsupported geometry.
//   - Assignment (assign.go): a parity mark is converted to R or S by the
//     permutation parity between the input neighbor order and the ranked
//     priority order; each pairwise swap flips the rotational sense.
//   - Report (types.go): one canonical ascending (atom, label) sequence with
//     three pure filter views: All, Assigned, Unassigned.
//
// Why:
//   - Chirality drives pharmacology and separation science; a toolkit must
//     say which atoms could be stereocenters and which configurations the
//     input actually pinned down, deterministically and without touching the
//     input graph.
//
// Key Types:
//
//   - Label:  "R", "S", or "?" (unspecified)
//   - Center: (AtomIdx, Label) pair
//   - Report: canonical result with filter views
//
// Complexity:
//
//   - One ranking per evaluated atom; ranking is near-linear for typical
//     molecules and worst-case quadratic in atom count on heavily symmetric
//     graphs (repeated tie-break recursion). Memory is O(depth) per
//     comparison; the walk's visited path is copied per step, never shared.
//
// Errors:
//
//   - ErrNilMolecule             nil input
//   - molecule.ErrMalformedGraph dangling bond endpoints, call aborted
//   - ErrUnsupportedGeometry     per-atom typed skip, never surfaced by
//     Perceive itself; the atom is omitted from the report
//
// Perception is a pure function of the input: calling it twice yields
// byte-identical reports, and independent molecules may be perceived
// concurrently without synchronization.
package stereo
