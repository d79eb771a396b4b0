package formula

import (
	"sort"
	"strconv"
	"strings"

	"github.com/BerendHuisman/molkit/molecule"
)

// CalcMolFormula renders mol's molecular formula in Hill order with a net
// formal-charge suffix. Isotopes are merged into their element; implicit
// hydrogens count toward H.
func CalcMolFormula(mol *molecule.Molecule) string {
	// 1. Accumulate element counts and net charge
	counts := make(map[string]int)
	charge := 0
	var a molecule.Atom
	for _, a = range mol.Atoms() {
		counts[molecule.SymbolFor(a.AtomicNum)]++
		if a.Hydrogens > 0 {
			counts["H"] += a.Hydrogens
		}
		charge += a.Charge
	}

	// 2. Order symbols: Hill convention, wildcards trailing
	wildcards := counts["*"]
	delete(counts, "*")
	syms := make([]string, 0, len(counts))
	for sym := range counts {
		syms = append(syms, sym)
	}
	hasCarbon := counts["C"] > 0
	sort.Slice(syms, func(i, j int) bool {
		if hasCarbon {
			if r := hillRank(syms[i]) - hillRank(syms[j]); r != 0 {
				return r < 0
			}
		}

		return syms[i] < syms[j]
	})

	// 3. Render counts, then the charge suffix
	var sb strings.Builder
	var n int
	for _, sym := range syms {
		sb.WriteString(sym)
		if n = counts[sym]; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	if wildcards > 0 {
		sb.WriteString("*")
		if wildcards > 1 {
			sb.WriteString(strconv.Itoa(wildcards))
		}
	}
	switch {
	case charge > 0:
		sb.WriteString("+")
		if charge > 1 {
			sb.WriteString(strconv.Itoa(charge))
		}
	case charge < 0:
		sb.WriteString("-")
		if charge < -1 {
			sb.WriteString(strconv.Itoa(-charge))
		}
	}

	return sb.String()
}

// hillRank places C first and H second when carbon is present; everything
// else shares one alphabetical bucket.
func hillRank(sym string) int {
	switch sym {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}
