package descriptors

import (
	"errors"

	"github.com/BerendHuisman/molkit/molecule"
	"github.com/BerendHuisman/molkit/stereo"
)

// ErrNilMolecule is returned by every descriptor for a nil molecule.
var ErrNilMolecule = errors.New("descriptors: molecule is nil")

// Descriptor is one named scalar over a molecule.
type Descriptor struct {
	// Name identifies the descriptor in output columns.
	Name string
	// Fn evaluates the descriptor. Pure: the molecule is only read.
	Fn func(*molecule.Molecule) (float64, error)
}

// registry order is fixed; consumers rely on stable columns.
var registry = []Descriptor{
	{"AtomCount", guard(atomCount)},
	{"HeavyAtomCount", guard(heavyAtomCount)},
	{"HydrogenCount", guard(hydrogenCount)},
	{"BondCount", guard(bondCount)},
	{"RingBondCount", guard(ringBondCount)},
	{"RingAtomCount", guard(ringAtomCount)},
	{"RotatableBondCount", guard(rotatableBondCount)},
	{"TotalCharge", guard(totalCharge)},
	{"MolWeight", guard(molWeight)},
	{"StereocenterCount", stereocenterCount},
	{"UnspecifiedStereocenterCount", unspecifiedStereocenterCount},
}

// List returns the registry. The slice is a fresh copy; the order is part of
// the public contract.
func List() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)

	return out
}

// Compute evaluates every registered descriptor on mol. It stops at the
// first failing descriptor, wrapping its name into the error.
func Compute(mol *molecule.Molecule) (map[string]float64, error) {
	out := make(map[string]float64, len(registry))
	var v float64
	var err error
	for _, d := range registry {
		if v, err = d.Fn(mol); err != nil {
			return nil, err
		}
		out[d.Name] = v
	}

	return out, nil
}

// guard lifts an infallible counting function into the Descriptor signature
// with the shared nil check.
func guard(fn func(*molecule.Molecule) float64) func(*molecule.Molecule) (float64, error) {
	return func(mol *molecule.Molecule) (float64, error) {
		if mol == nil {
			return 0, ErrNilMolecule
		}

		return fn(mol), nil
	}
}

func atomCount(mol *molecule.Molecule) float64 { return float64(mol.AtomCount()) }

func heavyAtomCount(mol *molecule.Molecule) float64 {
	var n int
	for _, a := range mol.Atoms() {
		if a.AtomicNum > 1 {
			n++
		}
	}

	return float64(n)
}

func hydrogenCount(mol *molecule.Molecule) float64 {
	var n int
	for _, a := range mol.Atoms() {
		n += a.Hydrogens
		if a.AtomicNum == 1 {
			n++
		}
	}

	return float64(n)
}

func bondCount(mol *molecule.Molecule) float64 { return float64(mol.BondCount()) }

func ringBondCount(mol *molecule.Molecule) float64 {
	var n int
	for _, b := range mol.Bonds() {
		if b.InRing {
			n++
		}
	}

	return float64(n)
}

func ringAtomCount(mol *molecule.Molecule) float64 {
	var n int
	for i := 0; i < mol.AtomCount(); i++ {
		if mol.InRing(i) {
			n++
		}
	}

	return float64(n)
}

// rotatableBondCount: non-ring single bonds with two non-terminal heavy
// endpoints. See the package docs for the definition choice.
func rotatableBondCount(mol *molecule.Molecule) float64 {
	var n int
	for _, b := range mol.Bonds() {
		if b.Order != molecule.Single || b.InRing {
			continue
		}
		if mol.HeavyDegree(b.From) >= 2 && mol.HeavyDegree(b.To) >= 2 {
			n++
		}
	}

	return float64(n)
}

func totalCharge(mol *molecule.Molecule) float64 {
	var n int
	for _, a := range mol.Atoms() {
		n += a.Charge
	}

	return float64(n)
}

// molWeight sums standard atomic weights, explicit isotopes overriding, plus
// the implicit hydrogens.
func molWeight(mol *molecule.Molecule) float64 {
	var w float64
	hw := molecule.StandardWeight(1)
	for _, a := range mol.Atoms() {
		if a.Isotope > 0 {
			w += float64(a.Isotope)
		} else {
			w += molecule.StandardWeight(a.AtomicNum)
		}
		w += float64(a.Hydrogens) * hw
	}

	return w
}

func stereocenterCount(mol *molecule.Molecule) (float64, error) {
	if mol == nil {
		return 0, ErrNilMolecule
	}
	rep, err := stereo.Perceive(mol)
	if err != nil {
		return 0, err
	}

	return float64(rep.Len()), nil
}

func unspecifiedStereocenterCount(mol *molecule.Molecule) (float64, error) {
	if mol == nil {
		return 0, ErrNilMolecule
	}
	rep, err := stereo.Perceive(mol)
	if err != nil {
		return 0, err
	}

	return float64(len(rep.Unassigned())), nil
}
