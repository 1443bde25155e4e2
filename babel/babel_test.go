/*
 * babel_test.go, part of AutodockScript.
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

package babel

import (
	"reflect"
	"testing"
)

func TestOBabelArgs(Te *testing.T) {
	O := NewOBabel()
	args := O.Args("ligand_sdf/cid_2244.sdf", "ligand_pdb/cid_2244.pdb")
	want := []string{"-isdf", "ligand_sdf/cid_2244.sdf", "-opdb", "-O", "ligand_pdb/cid_2244.pdb"}
	if !reflect.DeepEqual(args, want) {
		Te.Errorf("wrong arguments: %v", args)
	}
	O.SetGen3D(true)
	args = O.Args("a.sdf", "a.pdb")
	if args[len(args)-1] != "--gen3d" {
		Te.Errorf("3D generation flag missing: %v", args)
	}
}

func TestADTPrepArgs(Te *testing.T) {
	A := NewADTPrep()
	lig := A.LigandArgs("in.pdb", "out.pdbqt")
	if !reflect.DeepEqual(lig, []string{"prepare_ligand4.py", "-l", "in.pdb", "-o", "out.pdbqt", "-v"}) {
		Te.Errorf("wrong ligand arguments: %v", lig)
	}
	rec := A.ReceptorArgs("in.pdb", "out.pdbqt")
	if !reflect.DeepEqual(rec, []string{"prepare_receptor4.py", "-r", "in.pdb", "-o", "out.pdbqt", "-v"}) {
		Te.Errorf("wrong receptor arguments: %v", rec)
	}
	A.SetScripts("/opt/adt/prepare_ligand4.py", "")
	if A.LigandArgs("a", "b")[0] != "/opt/adt/prepare_ligand4.py" {
		Te.Error("ligand script override ignored")
	}
	if A.ReceptorArgs("a", "b")[0] != "prepare_receptor4.py" {
		Te.Error("empty receptor override should keep the default")
	}
}

func TestSkipExisting(Te *testing.T) {
	if !SkipExisting("babel.go") {
		Te.Error("existing file not skipped")
	}
	if SkipExisting("no_such_file.pdbqt") {
		Te.Error("missing file skipped")
	}
}

func TestConvertFailure(Te *testing.T) {
	O := NewOBabel()
	O.SetCommand("/no/such/obabel")
	err := O.Convert("a.sdf", "b.pdb")
	if err == nil {
		Te.Fatal("no error from a missing converter")
	}
	cerr, ok := err.(Error)
	if !ok {
		Te.Fatalf("wrong error type: %T", err)
	}
	if cerr.FileName() != "a.sdf" || cerr.Critical() {
		Te.Errorf("conversion failures should carry the input and be skippable: %v", cerr)
	}
}
