package formula_test

import (
	"fmt"
	"testing"

	"github.com/BerendHuisman/molkit/formula"
	"github.com/BerendHuisman/molkit/molecule"
	"github.com/BerendHuisman/molkit/smiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalcMolFormula_ReferenceTable runs the full reference table: Hill
// ordering, implicit hydrogens, aromatic vs saturated rings, and charge
// suffixes in every shape.
func TestCalcMolFormula_ReferenceTable(t *testing.T) {
	cases := []struct {
		smi  string
		want string
	}{
		{"[NH4+]", "H4N+"},
		{"c1ccccc1", "C6H6"},
		{"C1CCCCC1", "C6H12"},
		{"c1ccccc1O", "C6H6O"},
		{"C1CCCCC1O", "C6H12O"},
		{"C1CCCCC1=O", "C6H10O"},
		{"N[Na]", "H2NNa"},
		{"[C-][C-]", "C2-2"},
		{"[H]", "H"},
		{"[H-1]", "H-"},
		{"[CH2]", "CH2"},
		{"[He-2]", "He-2"},
		{"[U+3]", "U+3"},
	}
	for _, tc := range cases {
		t.Run(tc.smi, func(t *testing.T) {
			m, err := smiles.Parse(tc.smi)
			require.NoError(t, err)
			assert.Equal(t, tc.want, formula.CalcMolFormula(m))
		})
	}
}

// TestCalcMolFormula_IsotopesMerge checks that explicit isotopes fold into
// their element count.
func TestCalcMolFormula_IsotopesMerge(t *testing.T) {
	m, err := smiles.Parse("[13CH4]")
	require.NoError(t, err)
	assert.Equal(t, "CH4", formula.CalcMolFormula(m))
}

// TestCalcMolFormula_Wildcards renders wildcard atoms after the named
// elements.
func TestCalcMolFormula_Wildcards(t *testing.T) {
	m, err := smiles.Parse("CC[*]")
	require.NoError(t, err)
	assert.Equal(t, "C2H5*", formula.CalcMolFormula(m))
}

// TestCalcMolFormula_EmptyMolecule renders an empty string for an empty
// graph rather than failing.
func TestCalcMolFormula_EmptyMolecule(t *testing.T) {
	assert.Equal(t, "", formula.CalcMolFormula(molecule.New()))
}

// ExampleCalcMolFormula renders phenol.
func ExampleCalcMolFormula() {
	mol, err := smiles.Parse("c1ccccc1O")
	if err != nil {
		fmt.Println("parse:", err)

		return
	}
	fmt.Println(formula.CalcMolFormula(mol))

	// Output:
	// C6H6O
}
