package molecule_test

import (
	"testing"

	"github.com/BerendHuisman/molkit/molecule"
	"github.com/stretchr/testify/require"
)

// chain builds a straight chain of n carbons.
func chain(t *testing.T, n int) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < n; i++ {
		m.AddAtom(molecule.Atom{AtomicNum: 6})
		if i > 0 {
			_, err := m.AddBond(i-1, i, molecule.Single)
			require.NoError(t, err)
		}
	}

	return m
}

// TestPerceiveRings_ChainHasNone verifies that an acyclic chain ends up with
// every bond flagged as non-ring.
func TestPerceiveRings_ChainHasNone(t *testing.T) {
	m := chain(t, 5)
	m.PerceiveRings()

	for i, b := range m.Bonds() {
		require.False(t, b.InRing, "chain bond %d must not be in a ring", i)
	}
	for i := 0; i < m.AtomCount(); i++ {
		require.False(t, m.InRing(i), "chain atom %d must not be in a ring", i)
	}
}

// TestPerceiveRings_CycleMarksAllBonds closes a 6-chain into a hexagon and
// expects every bond flagged.
func TestPerceiveRings_CycleMarksAllBonds(t *testing.T) {
	m := chain(t, 6)
	_, err := m.AddBond(5, 0, molecule.Single)
	require.NoError(t, err)
	m.PerceiveRings()

	for i, b := range m.Bonds() {
		require.True(t, b.InRing, "ring bond %d must be flagged", i)
	}
	require.True(t, m.InRing(3))
}

// TestPerceiveRings_BridgeStaysClear attaches a pendant methyl to a
// cyclopropane and checks that only the three ring bonds are flagged.
func TestPerceiveRings_BridgeStaysClear(t *testing.T) {
	m := chain(t, 3)
	_, err := m.AddBond(2, 0, molecule.Single)
	require.NoError(t, err)
	pendant := m.AddAtom(molecule.Atom{AtomicNum: 6})
	_, err = m.AddBond(0, pendant, molecule.Single)
	require.NoError(t, err)
	m.PerceiveRings()

	bonds := m.Bonds()
	require.True(t, bonds[0].InRing)
	require.True(t, bonds[1].InRing)
	require.True(t, bonds[2].InRing)
	require.False(t, bonds[3].InRing, "pendant bond is a bridge")
	require.False(t, m.InRing(pendant))
}

// TestPerceiveRings_Idempotent re-runs perception and expects identical
// flags, including after flags were already set.
func TestPerceiveRings_Idempotent(t *testing.T) {
	m := chain(t, 4)
	_, err := m.AddBond(3, 0, molecule.Single)
	require.NoError(t, err)

	m.PerceiveRings()
	first := make([]bool, m.BondCount())
	for i, b := range m.Bonds() {
		first[i] = b.InRing
	}

	m.PerceiveRings()
	for i, b := range m.Bonds() {
		require.Equal(t, first[i], b.InRing, "bond %d flag changed between runs", i)
	}
}

// TestPerceiveRings_DisconnectedComponents covers a forest with one cyclic
// and one acyclic component.
func TestPerceiveRings_DisconnectedComponents(t *testing.T) {
	m := chain(t, 3)
	_, err := m.AddBond(2, 0, molecule.Single)
	require.NoError(t, err)
	a := m.AddAtom(molecule.Atom{AtomicNum: 8})
	b := m.AddAtom(molecule.Atom{AtomicNum: 8})
	_, err = m.AddBond(a, b, molecule.Single)
	require.NoError(t, err)
	m.PerceiveRings()

	require.True(t, m.InRing(0))
	require.False(t, m.InRing(a))
	require.False(t, m.Bond(3).InRing)
}
