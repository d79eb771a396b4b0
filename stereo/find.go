// Package stereo: the potential-center enumerator and the public entry
// points. One ascending pass over the atoms feeds the symmetry classifier
// and the configuration assigner, and the collected centers become the
// report callers filter.
package stereo

import (
	"errors"
	"fmt"

	"github.com/BerendHuisman/molkit/molecule"
)

// Perceive runs stereocenter perception over mol and returns the full
// report. The molecule is only read; perception is deterministic, so two
// calls on the same molecule yield identical reports.
//
// Errors: ErrNilMolecule for nil input; molecule.ErrMalformedGraph (wrapped)
// when the bond list is inconsistent, aborting this call only. Atoms with
// unsupported (non-tetrahedral) geometry are silently omitted, per the
// typed-skip contract of ErrUnsupportedGeometry.
func Perceive(mol *molecule.Molecule) (*Report, error) {
	// 1. Validate input
	if mol == nil {
		return nil, ErrNilMolecule
	}
	if err := mol.Validate(); err != nil {
		return nil, fmt.Errorf("stereo: %w", err)
	}

	// 2. One classifier pass, ascending atom index (ordering is part of the
	//    public contract)
	cmp := &branchComparator{mol: mol}
	var centers []Center
	var cand candidate
	var ok bool
	var err error
	for idx := 0; idx < mol.AtomCount(); idx++ {
		if !eligible(mol, idx) {
			continue
		}
		cand, ok, err = classify(cmp, idx)
		if err != nil {
			// Typed skip: non-tetrahedral coordination is omitted, not fatal.
			if errors.Is(err, ErrUnsupportedGeometry) {
				continue
			}

			return nil, err
		}
		if !ok {
			continue
		}
		centers = append(centers, Center{AtomIdx: idx, Label: assignLabel(mol, cand)})
	}

	return &Report{centers: centers}, nil
}

// FindStereocenters is the single-call boundary most callers want: every
// perceived center in ascending atom-index order. With includeUnassigned
// set, unspecified candidates ("?") are included; otherwise only centers
// labeled R or S are returned.
func FindStereocenters(mol *molecule.Molecule, includeUnassigned bool) ([]Center, error) {
	rep, err := Perceive(mol)
	if err != nil {
		return nil, err
	}
	if includeUnassigned {
		return rep.All(), nil
	}

	return rep.Assigned(), nil
}

// eligible applies the cheap topological precondition before the expensive
// ranking work: the atom must be tetrahedrally bonded (single bonds only,
// no aromatic membership) and either sit in a ring or carry at least three
// heavy substituents. Atoms with two or more hydrogens can never have four
// distinct branches and are rejected outright.
func eligible(mol *molecule.Molecule, idx int) bool {
	atom := mol.Atom(idx)
	if atom.Aromatic {
		return false
	}
	if mol.TotalHydrogens(idx) >= 2 {
		return false
	}
	var nb molecule.Neighbor
	for _, nb = range mol.Neighbors(idx) {
		if mol.Bond(nb.BondIdx).Order != molecule.Single {
			return false
		}
	}

	return mol.InRing(idx) || mol.HeavyDegree(idx) >= 3
}
