/*
 * box_test.go, part of AutodockScript.
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
	"fmt"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

func close3(a, b [3]float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Four points forming a tetrahedron with a 10 A extent per axis.
func tetrahedron() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		0, 0, 0,
		10, 0, 0,
		0, 10, 0,
		0, 0, 10,
	})
}

func TestBoxFromPoints(Te *testing.T) {
	b, err := BoxFromPoints(tetrahedron(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("tetrahedron box:", b)
	if !close3(b.Center, [3]float64{2.5, 2.5, 2.5}) {
		Te.Errorf("wrong center: %v", b.Center)
	}
	//extent 10 + 2*3 padding = 16, exactly the minimum, cube already
	if !close3(b.Size, [3]float64{16, 16, 16}) {
		Te.Errorf("wrong size: %v", b.Size)
	}
	if b.NPoints != 4 {
		Te.Errorf("wrong point count: %d", b.NPoints)
	}
}

func TestBoxSinglePoint(Te *testing.T) {
	b, err := BoxFromPoints(mat.NewDense(1, 3, []float64{5, 5, 5}), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !close3(b.Center, [3]float64{5, 5, 5}) {
		Te.Errorf("wrong center: %v", b.Center)
	}
	//zero extent clamps every axis to the minimum edge
	if !close3(b.Size, [3]float64{16, 16, 16}) {
		Te.Errorf("wrong size: %v", b.Size)
	}
}

func TestBoxEmptyInput(Te *testing.T) {
	_, err := BoxFromPoints(nil, nil)
	if err == nil {
		Te.Fatal("no error for empty input")
	}
	if !strings.Contains(err.Error(), ErrEmptyInput) {
		Te.Errorf("wrong error: %v", err)
	}
}

func TestBoxOrderInvariance(Te *testing.T) {
	reversed := mat.NewDense(4, 3, []float64{
		0, 0, 10,
		0, 10, 0,
		10, 0, 0,
		0, 0, 0,
	})
	a, err := BoxFromPoints(tetrahedron(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := BoxFromPoints(reversed, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !close3(a.Center, b.Center) || !close3(a.Size, b.Size) {
		Te.Errorf("box depends on point order: %v vs %v", a, b)
	}
}

func TestBoxIdempotence(Te *testing.T) {
	a, err := BoxFromPoints(tetrahedron(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := BoxFromPoints(tetrahedron(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	//bit-identical, not merely close: the estimator is a pure function
	if *a != *b {
		Te.Errorf("repeated estimation differs: %v vs %v", a, b)
	}
}

func TestBoxNoCube(Te *testing.T) {
	o := DefaultBoxOptions()
	o.ForceCube = false
	points := mat.NewDense(2, 3, []float64{0, 0, 0, 20, 0, 0})
	b, err := BoxFromPoints(points, o)
	if err != nil {
		Te.Fatal(err)
	}
	//x has real extent (20 + 6 > minimum), y and z only get the clamp
	if !close3(b.Size, [3]float64{26, 16, 16}) {
		Te.Errorf("wrong size: %v", b.Size)
	}
	o.ForceCube = true
	b, err = BoxFromPoints(points, o)
	if err != nil {
		Te.Fatal(err)
	}
	if !close3(b.Size, [3]float64{26, 26, 26}) {
		Te.Errorf("cube not forced to largest axis: %v", b.Size)
	}
}

func TestDedupPoints(Te *testing.T) {
	points := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		0, 0, 0,
		0.0000001, 0, 0, //rounds onto the first point at 3 decimals
		10, 0, 0,
	})
	o := DefaultBoxOptions()
	plain, err := BoxFromPoints(points, o)
	if err != nil {
		Te.Fatal(err)
	}
	o.Dedup = true
	deduped, err := BoxFromPoints(points, o)
	if err != nil {
		Te.Fatal(err)
	}
	if plain.NPoints != 4 || deduped.NPoints != 2 {
		Te.Errorf("wrong point counts: %d, %d", plain.NPoints, deduped.NPoints)
	}
	if !close3(plain.Center, [3]float64{2.5, 0, 0}) {
		Te.Errorf("wrong undeduplicated center: %v", plain.Center)
	}
	if !close3(deduped.Center, [3]float64{5, 0, 0}) {
		Te.Errorf("wrong deduplicated center: %v", deduped.Center)
	}
}

func TestFixedBox(Te *testing.T) {
	b, err := FixedBox(tetrahedron(), 25)
	if err != nil {
		Te.Fatal(err)
	}
	if !close3(b.Center, [3]float64{2.5, 2.5, 2.5}) {
		Te.Errorf("wrong center: %v", b.Center)
	}
	if !close3(b.Size, [3]float64{25, 25, 25}) {
		Te.Errorf("wrong size: %v", b.Size)
	}
}

// testMol builds a Molecule from (molname, chain, molid, het, atomname, x, y, z)
// tuples, in order.
type testAtom struct {
	molname string
	chain   string
	molid   int
	het     bool
	name    string
	x, y, z float64
}

func testMol(name string, atoms []testAtom) *Molecule {
	mol := &Molecule{Name: name}
	data := make([]float64, 0, 3*len(atoms))
	for _, a := range atoms {
		mol.Atoms = append(mol.Atoms, &Atom{Name: a.name, Molname: a.molname, Chain: a.chain, Molid: a.molid, Het: a.het})
		data = append(data, a.x, a.y, a.z)
	}
	if len(atoms) > 0 {
		mol.Coords = mat.NewDense(len(atoms), 3, data)
	}
	return mol
}

func ligandedMol() *Molecule {
	return testMol("liganded", []testAtom{
		{"ALA", "A", 1, false, "CA", 0, 0, 0},
		{"GLY", "A", 2, false, "CA", 10, 10, 10},
		{"STI", "A", 300, true, "C1", 20, 10, 4},
		{"STI", "A", 300, true, "C2", 20, 10, 6},
		{"STI", "A", 300, true, "N1", 22, 10, 5},
		{"HOH", "A", 401, true, "O", 30, 30, 30},
		{"GOL", "A", 400, true, "C1", 5, 5, 5},
		{"GOL", "A", 400, true, "C2", 6, 6, 6},
	})
}

func TestSelectGroupTarget(Te *testing.T) {
	mol := ligandedMol()
	k, points, err := mol.SelectGroup("sti", nil) //case-insensitive
	if err != nil {
		Te.Fatal(err)
	}
	if k.Molname != "STI" || k.Molid != 300 {
		Te.Errorf("wrong group: %+v", k)
	}
	if n, _ := points.Dims(); n != 3 {
		Te.Errorf("wrong atom count: %d", n)
	}
	_, _, err = mol.SelectGroup("XYZ", nil)
	if err == nil || !strings.Contains(err.Error(), ErrResidueNotFound) {
		Te.Errorf("wrong error for absent residue: %v", err)
	}
}

func TestSelectGroupAuto(Te *testing.T) {
	mol := ligandedMol()
	//GOL and HOH are in the default exclusions, so STI wins even though
	//it is not the only multi-atom group
	k, points, err := mol.SelectGroup("", DefaultExcluded)
	if err != nil {
		Te.Fatal(err)
	}
	if k.Molname != "STI" {
		Te.Errorf("wrong group: %+v", k)
	}
	if n, _ := points.Dims(); n != 3 {
		Te.Errorf("wrong atom count: %d", n)
	}
	//with no exclusions the largest group still wins
	k, _, err = mol.SelectGroup("", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if k.Molname != "STI" {
		Te.Errorf("wrong group without exclusions: %+v", k)
	}
}

func TestSelectGroupExclusionCase(Te *testing.T) {
	mol := testMol("cased", []testAtom{
		{"GOL", "A", 400, true, "C1", 5, 5, 5},
		{"GOL", "A", 400, true, "C2", 6, 6, 6},
		{"GOL", "A", 400, true, "C3", 7, 7, 7},
		{"LIG", "A", 500, true, "C1", 0, 0, 0},
		{"LIG", "A", 500, true, "C2", 1, 1, 1},
	})
	//a lowercase deny list must still exclude, like the target match
	k, _, err := mol.SelectGroup("", []string{"gol"})
	if err != nil {
		Te.Fatal(err)
	}
	if k.Molname != "LIG" {
		Te.Errorf("lowercase exclusion ignored: %+v", k)
	}
}

func TestSelectGroupAllExcluded(Te *testing.T) {
	mol := testMol("solvated", []testAtom{
		{"HOH", "A", 401, true, "O", 30, 30, 30},
		{"GOL", "A", 400, true, "C1", 5, 5, 5},
		{"GOL", "A", 400, true, "C2", 6, 6, 6},
	})
	//everything excluded: the largest group is returned anyway
	k, _, err := mol.SelectGroup("", DefaultExcluded)
	if err != nil {
		Te.Fatal(err)
	}
	if k.Molname != "GOL" {
		Te.Errorf("wrong degraded pick: %+v", k)
	}
}

func TestSelectGroupTieBreak(Te *testing.T) {
	mol := testMol("tied", []testAtom{
		{"LG1", "A", 500, true, "C1", 0, 0, 0},
		{"LG1", "A", 500, true, "C2", 1, 1, 1},
		{"LG2", "A", 501, true, "C1", 9, 9, 9},
		{"LG2", "A", 501, true, "C2", 8, 8, 8},
	})
	//same size: the group appearing first in the file wins
	k, _, err := mol.SelectGroup("", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if k.Molname != "LG1" {
		Te.Errorf("tie broken against file order: %+v", k)
	}
}

func TestReceptorBoxRegistry(Te *testing.T) {
	curated := &Box{Center: [3]float64{1, 2, 3}, Size: [3]float64{20, 20, 20}, NPoints: 77}
	reg := Registry{"liganded": curated}
	//a registry hit wins even though a ligand group is available
	b := ReceptorBox("liganded", ligandedMol(), reg, "", DefaultExcluded, nil)
	if b != curated {
		Te.Errorf("registry box not returned verbatim: %v", b)
	}
}

func TestReceptorBoxLigand(Te *testing.T) {
	b := ReceptorBox("liganded", ligandedMol(), Registry{}, "", DefaultExcluded, nil)
	//STI centroid, fixed 25 A cube
	if !close3(b.Center, [3]float64{62.0 / 3, 10, 5}) {
		Te.Errorf("wrong center: %v", b.Center)
	}
	if !close3(b.Size, [3]float64{25, 25, 25}) {
		Te.Errorf("wrong size: %v", b.Size)
	}
}

func TestReceptorBoxWholeReceptor(Te *testing.T) {
	mol := testMol("apo", []testAtom{
		{"ALA", "A", 1, false, "CA", 0, 0, 0},
		{"GLY", "A", 2, false, "CA", 10, 10, 10},
		{"GLY", "A", 2, false, "HA", 100, 100, 100}, //hydrogens don't count
	})
	b := ReceptorBox("apo", mol, Registry{}, "", DefaultExcluded, nil)
	if !close3(b.Center, [3]float64{5, 5, 5}) {
		Te.Errorf("wrong center: %v", b.Center)
	}
	//extent 10 + 6 padding, below the whole-receptor 25 A floor
	if !close3(b.Size, [3]float64{25, 25, 25}) {
		Te.Errorf("wrong size: %v", b.Size)
	}
	if b.NPoints != 2 {
		Te.Errorf("wrong point count: %d", b.NPoints)
	}
}

func TestReceptorBoxDegenerate(Te *testing.T) {
	b := ReceptorBox("empty", &Molecule{Name: "empty"}, Registry{}, "", DefaultExcluded, nil)
	if !close3(b.Center, [3]float64{0, 0, 0}) || !close3(b.Size, [3]float64{25, 25, 25}) {
		Te.Errorf("wrong default box: %v", b)
	}
	if b.NPoints != 0 {
		Te.Errorf("default box claims backing points: %d", b.NPoints)
	}
}
