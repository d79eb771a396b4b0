package stereo

import (
	"testing"

	"github.com/BerendHuisman/molkit/molecule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// center4 builds a carbon bonded to four substituent fragments and returns
// (molecule, center index). Each fragment is given as a chain of atomic
// numbers walking outward from the center.
func center4(t *testing.T, chains ...[]int) (*molecule.Molecule, int) {
	t.Helper()
	m := molecule.New()
	c := m.AddAtom(molecule.Atom{AtomicNum: 6})
	for _, chain := range chains {
		prev := c
		for _, z := range chain {
			idx := m.AddAtom(molecule.Atom{AtomicNum: z})
			_, err := m.AddBond(prev, idx, molecule.Single)
			require.NoError(t, err)
			prev = idx
		}
	}

	return m, c
}

// rootBranches returns the center's real neighbor branches in bond order.
func rootBranches(m *molecule.Molecule, c int) []branch {
	var out []branch
	for _, nb := range m.Neighbors(c) {
		out = append(out, realBranch(m, nb.AtomIdx, c, []int{c}))
	}

	return out
}

// TestCompare_AtomicNumberWins checks the first comparison tier: higher
// atomic number outranks regardless of what hangs deeper.
func TestCompare_AtomicNumberWins(t *testing.T) {
	// Cl vs a long carbon chain: Cl(17) still wins over C(6).
	m, c := center4(t, []int{17}, []int{6, 6, 6, 6})
	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, c)

	assert.Negative(t, cmp.compare(bs[0], bs[1]), "Cl must outrank any carbon chain")
	assert.Positive(t, cmp.compare(bs[1], bs[0]))
}

// TestCompare_IsotopeBreaksTie checks the mass tier: same element, heavier
// isotope wins.
func TestCompare_IsotopeBreaksTie(t *testing.T) {
	m := molecule.New()
	c := m.AddAtom(molecule.Atom{AtomicNum: 6})
	c13 := m.AddAtom(molecule.Atom{AtomicNum: 6, Isotope: 13})
	c12 := m.AddAtom(molecule.Atom{AtomicNum: 6})
	_, err := m.AddBond(c, c13, molecule.Single)
	require.NoError(t, err)
	_, err = m.AddBond(c, c12, molecule.Single)
	require.NoError(t, err)

	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, c)
	assert.Negative(t, cmp.compare(bs[0], bs[1]), "13C must outrank natural-abundance carbon")
}

// TestCompare_RecursesIntoNeighborSets checks the third tier: ethyl beats
// methyl because its first ranked child is a carbon, not a hydrogen.
func TestCompare_RecursesIntoNeighborSets(t *testing.T) {
	m, c := center4(t, []int{6, 6}, []int{6})
	// Give both attached carbons their implicit hydrogens.
	require.NoError(t, m.SetHydrogens(1, 2)) // CH2 of ethyl
	require.NoError(t, m.SetHydrogens(2, 3)) // terminal CH3
	require.NoError(t, m.SetHydrogens(3, 3)) // lone methyl

	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, c)
	assert.Negative(t, cmp.compare(bs[0], bs[1]), "ethyl must outrank methyl")
}

// TestCompare_DoubleBondDuplicates checks the duplication rule: a carbonyl
// carbon (O plus a phantom O duplicate) outranks an alcohol carbon (O plus
// hydrogens).
func TestCompare_DoubleBondDuplicates(t *testing.T) {
	m := molecule.New()
	c := m.AddAtom(molecule.Atom{AtomicNum: 6})
	carbonyl := m.AddAtom(molecule.Atom{AtomicNum: 6, Hydrogens: 1})
	oxo := m.AddAtom(molecule.Atom{AtomicNum: 8})
	alcohol := m.AddAtom(molecule.Atom{AtomicNum: 6, Hydrogens: 2})
	hydroxyl := m.AddAtom(molecule.Atom{AtomicNum: 8, Hydrogens: 1})
	_, err := m.AddBond(c, carbonyl, molecule.Single)
	require.NoError(t, err)
	_, err = m.AddBond(carbonyl, oxo, molecule.Double)
	require.NoError(t, err)
	_, err = m.AddBond(c, alcohol, molecule.Single)
	require.NoError(t, err)
	_, err = m.AddBond(alcohol, hydroxyl, molecule.Single)
	require.NoError(t, err)

	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, c)
	assert.Negative(t, cmp.compare(bs[0], bs[1]), "CHO must outrank CH2OH")
}

// TestCompare_RingClosureTerminates checks the phantom rule on a cycle: the
// two ring directions out of a cyclopropane carbon are indistinguishable and
// the comparison terminates despite the cycle.
func TestCompare_RingClosureTerminates(t *testing.T) {
	m := molecule.New()
	for i := 0; i < 3; i++ {
		m.AddAtom(molecule.Atom{AtomicNum: 6, Hydrogens: 2})
	}
	for i := 0; i < 3; i++ {
		_, err := m.AddBond(i, (i+1)%3, molecule.Single)
		require.NoError(t, err)
	}

	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, 0)
	require.Len(t, bs, 2)
	assert.Zero(t, cmp.compare(bs[0], bs[1]), "both ring directions must tie exactly")
}

// TestRank_TiesShareIntegers pins the rank contract: equal branches share a
// rank and the next distinct branch skips past them.
func TestRank_TiesShareIntegers(t *testing.T) {
	// Center with Cl and two identical methyls.
	m, c := center4(t, []int{17}, []int{6}, []int{6})
	require.NoError(t, m.SetHydrogens(2, 3))
	require.NoError(t, m.SetHydrogens(3, 3))

	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, c)
	ranks := cmp.rank(bs)

	assert.Equal(t, []int{0, 1, 1}, ranks, "Cl first, methyls tied behind it")
}

// TestCompare_PathIsCopiedPerWalk guards the reentrancy contract: running
// many comparisons concurrently over one shared comparator must be safe.
func TestCompare_PathIsCopiedPerWalk(t *testing.T) {
	m, c := center4(t, []int{6, 6, 6}, []int{6, 6, 8}, []int{17}, []int{35})
	cmp := &branchComparator{mol: m}
	bs := rootBranches(m, c)
	want := cmp.compare(bs[0], bs[1])

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				if cmp.compare(bs[0], bs[1]) != want {
					t.Error("comparison result changed under concurrency")

					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
