// Package formula builds molecular-formula strings from a molecule.Molecule.
//
// What:
//
//   - CalcMolFormula: element counts (implicit hydrogens included) rendered
//     in Hill order: carbon first, hydrogen second, every other element
//     alphabetical; with no carbon present all elements sort alphabetically.
//     A non-zero net formal charge is appended as "+", "+n", "-", or "-n".
//     Wildcard atoms render as "*" after the named elements.
//
// Why:
//   - The formula is the cheapest identity check a toolkit offers; keeping
//     it here, next to the graph, avoids every caller reinventing Hill
//     ordering and charge suffixes.
//
// Complexity:
//
//   - Time O(V + k log k) for k distinct elements, Memory O(k).
//
// The builder has no failure modes: every molecule, however odd, renders to
// some formula string.
package formula
