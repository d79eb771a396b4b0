// Package molecule: periodic-table data used for symbol lookup, implicit
// hydrogen filling, and molecular-weight accumulation.
package molecule

import "fmt"

// atomicNums maps element symbols (case-sensitive, standard capitalization)
// to atomic numbers. The table covers the main-group and transition elements
// that occur in practice in line notations; exotic symbols can be added here
// without touching any caller.
var atomicNums = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Sc": 21, "Ti": 22,
	"V": 23, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29,
	"Zn": 30, "Ga": 31, "Ge": 32, "As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43,
	"Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54, "Cs": 55, "Ba": 56, "La": 57,
	"Ce": 58, "Gd": 64, "W": 74, "Re": 75, "Os": 76, "Ir": 77, "Pt": 78,
	"Au": 79, "Hg": 80, "Tl": 81, "Pb": 82, "Bi": 83, "Po": 84, "At": 85,
	"Rn": 86, "Fr": 87, "Ra": 88, "Ac": 89, "Th": 90, "Pa": 91, "U": 92,
	"Np": 93, "Pu": 94, "Am": 95,
}

// symbols is the inverse of atomicNums, built once at init.
var symbols = func() map[int]string {
	m := make(map[int]string, len(atomicNums))
	for sym, z := range atomicNums {
		m[z] = sym
	}

	return m
}()

// stdWeights maps atomic numbers to standard atomic weights (IUPAC 2021,
// rounded). Elements without a stable isotope carry the mass number of the
// most stable one. Missing entries weigh 0 (wildcard atoms).
var stdWeights = map[int]float64{
	1: 1.008, 2: 4.003, 3: 6.94, 4: 9.012, 5: 10.81, 6: 12.011, 7: 14.007,
	8: 15.999, 9: 18.998, 10: 20.180, 11: 22.990, 12: 24.305, 13: 26.982,
	14: 28.085, 15: 30.974, 16: 32.06, 17: 35.45, 18: 39.95, 19: 39.098,
	20: 40.078, 21: 44.956, 22: 47.867, 23: 50.942, 24: 51.996, 25: 54.938,
	26: 55.845, 27: 58.933, 28: 58.693, 29: 63.546, 30: 65.38, 31: 69.723,
	32: 72.630, 33: 74.922, 34: 78.971, 35: 79.904, 36: 83.798, 37: 85.468,
	38: 87.62, 39: 88.906, 40: 91.224, 41: 92.906, 42: 95.95, 43: 97,
	44: 101.07, 45: 102.906, 46: 106.42, 47: 107.868, 48: 112.414,
	49: 114.818, 50: 118.710, 51: 121.760, 52: 127.60, 53: 126.904,
	54: 131.293, 55: 132.905, 56: 137.327, 57: 138.905, 58: 140.116,
	64: 157.25, 74: 183.84, 75: 186.207, 76: 190.23, 77: 192.217,
	78: 195.084, 79: 196.967, 80: 200.592, 81: 204.38, 82: 207.2,
	83: 208.980, 84: 209, 85: 210, 86: 222, 87: 223, 88: 226, 89: 227,
	90: 232.038, 91: 231.036, 92: 238.029, 93: 237, 94: 244, 95: 243,
}

// defaultValences lists the normal valences, ascending, of the elements that
// receive implicit hydrogens when written in the bare organic subset of a
// line notation. Implicit H = smallest listed valence >= current bond-order
// sum, minus that sum; atoms of any other element get no implicit hydrogens.
var defaultValences = map[int][]int{
	5:  {3},       // B
	6:  {4},       // C
	7:  {3, 5},    // N
	8:  {2},       // O
	15: {3, 5},    // P
	16: {2, 4, 6}, // S
	9:  {1},       // F
	17: {1},       // Cl
	35: {1},       // Br
	53: {1},       // I
}

// AtomicNumber resolves an element symbol to its atomic number.
// Returns ErrUnknownElement for symbols absent from the table.
func AtomicNumber(symbol string) (int, error) {
	z, ok := atomicNums[symbol]
	if !ok {
		return 0, fmt.Errorf("molecule: symbol %q: %w", symbol, ErrUnknownElement)
	}

	return z, nil
}

// SymbolFor returns the element symbol for an atomic number, or "*" for 0 and
// any number outside the table (wildcard atoms).
func SymbolFor(z int) string {
	if sym, ok := symbols[z]; ok {
		return sym
	}

	return "*"
}

// StandardWeight returns the standard atomic weight for an atomic number,
// or 0 when unknown.
func StandardWeight(z int) float64 {
	return stdWeights[z]
}

// DefaultValences returns the normal-valence list for an element, ascending,
// or nil when the element never receives implicit hydrogens.
func DefaultValences(z int) []int {
	return defaultValences[z]
}
