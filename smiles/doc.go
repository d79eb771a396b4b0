// Package smiles parses a practical subset of the SMILES line notation into
// a molecule.Molecule. It is the graph-construction collaborator in front of
// the perception and descriptor packages: parse once, then hand the
// read-only molecule around.
//
// What:
//
//   - Organic-subset atoms (B, C, N, O, P, S, F, Cl, Br, I and the aromatic
//     forms b, c, n, o, p, s) with automatic implicit-hydrogen filling from
//     default valences; the wildcard atom "*".
//   - Bracket atoms "[isotope symbol chirality Hcount charge]", e.g.
//     [13CH4], [NH4+], [C@@H], [O-], [Pu].
//   - Bonds "-", "=", "#", ":" (aromatic); the directional bonds "/" and
//     "\" are accepted and read as single bonds (cis/trans perception is out
//     of scope).
//   - Branches "(...)", ring closures "1".."9" and "%nn", and the dot "."
//     disconnect.
//   - Tetrahedral marks "@" and "@@", normalized into molecule.Parity: the
//     written neighbor order (preceding atom, then bracket hydrogen, ring
//     closures, and branches as they appear) is permuted to the molecule's
//     bond-insertion order with the implicit hydrogen last, flipping the
//     rotational sense once per pairwise swap.
//
// Why:
//   - Every reference scenario in this toolkit is written as a SMILES
//     string; a self-contained subset parser keeps the toolkit free of
//     native bindings.
//
// Out of scope: cis/trans double-bond stereo, allenes, reaction SMILES,
// atom classes beyond skipping them, and full OpenSMILES conformance.
//
// Complexity:
//
//   - Time O(n) in the input length, Memory O(n).
//
// Errors:
//
//   - ErrSyntax          unparseable character or malformed bracket
//   - ErrUnclosedRing    ring-closure digit never paired
//   - ErrUnclosedBranch  '(' never closed (or stray ')')
//   - molecule.ErrUnknownElement (wrapped) for symbols outside the table
package smiles
