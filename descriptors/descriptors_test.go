package descriptors_test

import (
	"testing"

	"github.com/BerendHuisman/molkit/descriptors"
	"github.com/BerendHuisman/molkit/smiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEveryDescriptor_SurvivesOddMolecules is the robustness sweep: every
// registered descriptor must evaluate without error on molecules with exotic
// elements, wildcard atoms, and disconnected fragments.
func TestEveryDescriptor_SurvivesOddMolecules(t *testing.T) {
	odd := []string{"CCC", "CC[Pu]", "CC[*]", "[Na+].[Cl-]", "c1ccccc1", "[H][H]"}
	for _, smi := range odd {
		m, err := smiles.Parse(smi)
		require.NoError(t, err, "parse %q", smi)
		for _, d := range descriptors.List() {
			_, err = d.Fn(m)
			assert.NoError(t, err, "SMILES: %s; Descriptor: %s", smi, d.Name)
		}
	}
}

// TestDescriptorValues_KnownMolecule pins the whole vector for CC(Cl)Br.
func TestDescriptorValues_KnownMolecule(t *testing.T) {
	m, err := smiles.Parse("CC(Cl)Br")
	require.NoError(t, err)

	got, err := descriptors.Compute(m)
	require.NoError(t, err)

	assert.Equal(t, 4.0, got["AtomCount"])
	assert.Equal(t, 4.0, got["HeavyAtomCount"])
	assert.Equal(t, 4.0, got["HydrogenCount"])
	assert.Equal(t, 3.0, got["BondCount"])
	assert.Equal(t, 0.0, got["RingBondCount"])
	assert.Equal(t, 0.0, got["RingAtomCount"])
	assert.Equal(t, 0.0, got["RotatableBondCount"], "all three bonds are terminal")
	assert.Equal(t, 0.0, got["TotalCharge"])
	assert.InDelta(t, 143.408, got["MolWeight"], 0.01)
	assert.Equal(t, 1.0, got["StereocenterCount"])
	assert.Equal(t, 1.0, got["UnspecifiedStereocenterCount"])
}

// TestRotatableBondCount_ChainAndRing contrasts an open chain with its ring
// closure: ring bonds never rotate.
func TestRotatableBondCount_ChainAndRing(t *testing.T) {
	open, err := smiles.Parse("CCCCCC")
	require.NoError(t, err)
	ring, err := smiles.Parse("C1CCCCC1")
	require.NoError(t, err)

	openV, err := descriptors.Compute(open)
	require.NoError(t, err)
	ringV, err := descriptors.Compute(ring)
	require.NoError(t, err)

	assert.Equal(t, 3.0, openV["RotatableBondCount"], "hexane: three interior bonds")
	assert.Equal(t, 0.0, ringV["RotatableBondCount"])
	assert.Equal(t, 6.0, ringV["RingBondCount"])
	assert.Equal(t, 6.0, ringV["RingAtomCount"])
}

// TestDescriptors_RingAndCharge covers the remaining counters on a charged
// aromatic molecule.
func TestDescriptors_RingAndCharge(t *testing.T) {
	m, err := smiles.Parse("c1ccccc1C[N+](C)(C)C")
	require.NoError(t, err)
	got, err := descriptors.Compute(m)
	require.NoError(t, err)

	assert.Equal(t, 1.0, got["TotalCharge"])
	assert.Equal(t, 6.0, got["RingAtomCount"])
	assert.Equal(t, 6.0, got["RingBondCount"])
}

// TestDescriptors_NilMolecule pins the shared nil guard.
func TestDescriptors_NilMolecule(t *testing.T) {
	for _, d := range descriptors.List() {
		_, err := d.Fn(nil)
		assert.ErrorIs(t, err, descriptors.ErrNilMolecule, "descriptor %s", d.Name)
	}
}

// TestList_StableOrder pins the registry column order.
func TestList_StableOrder(t *testing.T) {
	names := make([]string, 0)
	for _, d := range descriptors.List() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"AtomCount", "HeavyAtomCount", "HydrogenCount", "BondCount",
		"RingBondCount", "RingAtomCount", "RotatableBondCount", "TotalCharge",
		"MolWeight", "StereocenterCount", "UnspecifiedStereocenterCount",
	}, names)
}
