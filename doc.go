// Package molkit is an in-memory cheminformatics toolkit: parse a molecule
// once, then perceive stereocenters, build formulas, and count descriptors
// over one shared, read-only graph.
//
// What molkit offers:
//
//   - molecule/    the molecular graph: atoms, bonds, ring perception,
//     discrete tetrahedral parity marks, periodic-table data
//   - smiles/      a practical SMILES subset parser producing molecules
//     with implicit hydrogens filled and parity marks normalized
//   - stereo/      CIP-style priority ranking, symmetry classification,
//     and R/S assignment of tetrahedral stereocenters
//   - formula/     Hill-order molecular formula with charge suffixes
//   - descriptors/ a fixed registry of scalar counting descriptors
//   - cmd/molkit   the command-line surface over all of the above
//
// Why molkit:
//
//   - Deterministic – perception is a pure function of the input graph;
//     running it twice yields identical output
//   - Concurrent-friendly – molecules are immutable after construction, so
//     independent perceptions need no coordination
//   - Pure Go – no native chemistry engine, no cgo
//
// Quick example:
//
//	mol, err := smiles.Parse("[H][C@](F)(I)C(CC)C(Cl)Br")
//	if err != nil {
//		log.Fatal(err)
//	}
//	centers, err := stereo.FindStereocenters(mol, true)
//	// centers → [{1 S} {4 ?} {7 ?}]
//
// Everything downstream of the parser treats the molecule as read-only; the
// perception core never mutates its input.
package molkit
