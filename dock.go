/*
 * dock.go, part of AutodockScript.
 *
 * Copyright 2026 The AutodockScript developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dock

import (
	"log"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Atom contains the data read for one ATOM/HETATM record, except for the
// coordinates, which are kept in a separate matrix with one row per atom.
type Atom struct {
	Name    string
	Molname string //residue name, 3-letter for aminoacids
	Chain   string
	Molid   int //residue sequence number
	Het     bool
}

// Hydrogen returns true if the atom name marks it as a hydrogen. PDBQT
// receptor files normally carry only polar hydrogens, but they still have
// to be excluded from geometric centering.
func (A *Atom) Hydrogen() bool {
	return strings.HasPrefix(A.Name, "H")
}

// Molecule is a set of atoms plus their coordinates. Name is the receptor
// identifier (normally the structure's file stem) used to key boxes in a
// Registry.
type Molecule struct {
	Name   string
	Atoms  []*Atom
	Coords *mat.Dense //NAtoms x 3
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	if M == nil {
		return 0
	}
	return len(M.Atoms)
}

// HeavyCoords returns the coordinates of every non-hydrogen atom, or nil if
// there are none.
func (M *Molecule) HeavyCoords() *mat.Dense {
	if M.Len() == 0 {
		return nil
	}
	rows := make([]float64, 0, 3*M.Len())
	n := 0
	for i, at := range M.Atoms {
		if at.Hydrogen() {
			continue
		}
		rows = append(rows, M.Coords.At(i, 0), M.Coords.At(i, 1), M.Coords.At(i, 2))
		n++
	}
	if n == 0 {
		return nil
	}
	return mat.NewDense(n, 3, rows)
}

// GroupKey identifies one residue-level atom group: a bound ligand,
// cofactor, ion or water molecule among the HETATM records.
type GroupKey struct {
	Molname string
	Chain   string
	Molid   int
}

// DefaultExcluded is the default set of residue names treated as non-ligand
// species during automatic ligand detection: waters, monoatomic ions, common
// cryoprotectants/buffers, sugars and ubiquitous cofactors. It is only a
// default; callers with better knowledge of their structures should pass
// their own list to SelectGroup.
var DefaultExcluded = []string{
	"HOH", "WAT", "DOD", //waters
	"NA", "K", "CL", "MG", "CA", "ZN", "MN", "FE", "CU", "NI", "CO", "CD", "IOD", "BR", //ions
	"SO4", "PO4", "NO3", "ACT", "FMT", "CIT", //buffer anions
	"GOL", "EDO", "PEG", "PGE", "MPD", "DMS", "EOH", "IPA", //cryo and solvent additives
	"NAG", "NDG", "BMA", "MAN", "GAL", "GLC", "FUC", "SIA", //glycosylation sugars
	"HEM", "NAD", "NAP", "FAD", "FMN", "ADP", "ATP", "GDP", "GTP", "SAH", "SAM", //cofactors
}

// Groups collects the HETATM records of M into residue-level atom groups.
// It returns the group keys in order of first appearance in the file, and a
// map from each key to the indexes of its atoms. Keeping the key order
// explicit makes tie-breaking in SelectGroup reproducible.
func (M *Molecule) Groups() ([]GroupKey, map[GroupKey][]int) {
	keys := make([]GroupKey, 0, 10)
	groups := make(map[GroupKey][]int)
	for i, at := range M.Atoms {
		if !at.Het {
			continue
		}
		k := GroupKey{at.Molname, at.Chain, at.Molid}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], i)
	}
	return keys, groups
}

// SomeCoords returns the coordinates of the atoms with the given indexes.
func (M *Molecule) SomeCoords(indexes []int) *mat.Dense {
	rows := make([]float64, 0, 3*len(indexes))
	for _, i := range indexes {
		rows = append(rows, M.Coords.At(i, 0), M.Coords.At(i, 1), M.Coords.At(i, 2))
	}
	return mat.NewDense(len(indexes), 3, rows)
}

// SelectGroup picks the atom group that a ligand-centered docking box
// should be built around, and returns its key and coordinates.
//
// If target is non-empty, the largest group whose residue name matches it
// (case-insensitively) is selected; if no group matches, an error with the
// ErrResidueNotFound message is returned. With an empty target the largest
// group whose residue name is not in excluded wins; the exclusion match is
// case-insensitive too. If every group is excluded, the largest group
// overall is returned anyway, with a logged
// warning; a structure containing only, say, ions still gets a box, just a
// worse-centered one. Ties in atom count go to the group that appears first
// in the file.
func (M *Molecule) SelectGroup(target string, excluded []string) (GroupKey, *mat.Dense, error) {
	keys, groups := M.Groups()
	var best GroupKey
	bestn := 0
	if target != "" {
		for _, k := range keys {
			if !strings.EqualFold(k.Molname, target) {
				continue
			}
			if len(groups[k]) > bestn {
				best = k
				bestn = len(groups[k])
			}
		}
		if bestn == 0 {
			return GroupKey{}, nil, Error{ErrResidueNotFound, M.Name, []string{"SelectGroup"}, true}
		}
		return best, M.SomeCoords(groups[best]), nil
	}
	for _, k := range keys {
		if isInString(excluded, k.Molname) {
			continue
		}
		if len(groups[k]) > bestn {
			best = k
			bestn = len(groups[k])
		}
	}
	if bestn == 0 {
		//everything excluded: degraded, not fatal
		for _, k := range keys {
			if len(groups[k]) > bestn {
				best = k
				bestn = len(groups[k])
			}
		}
		if bestn == 0 {
			return GroupKey{}, nil, Error{ErrEmptyInput, M.Name, []string{"SelectGroup"}, true}
		}
		log.Printf("[warn] %s: all hetero groups excluded, centering on %s %s%d anyway", M.Name, best.Molname, best.Chain, best.Molid)
	}
	return best, M.SomeCoords(groups[best]), nil
}

// isInString returns true if test matches an element of container,
// ignoring case. Residue names are uppercase by convention but deny
// lists come from callers, who shouldn't have to know that.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if strings.EqualFold(test, i) {
			return true
		}
	}
	return false
}
