/*

Dockprep converts downloaded structures into the PDBQT files the docking
engine needs: ligand SDF files go through Open Babel to PDB and then
through the AutoDockTools ligand script to PDBQT; receptor PDB files go
through the receptor script directly. Already-converted files are
skipped, failures are recorded and the batch goes on.

LICENSE

Copyright 2026 The AutodockScript developers

This program, including its documentation,
is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License version 2.0 as
published by the Free Software Foundation.

This program and its documentation is distributed in the hope that
it will be useful, but WITHOUT ANY WARRANTY; without even the
implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR
PURPOSE.  See the GNU General Public License for more details.

You should have received a copy of the GNU General
Public License along with this program.  If not, see
<http://www.gnu.org/licenses/>.

*/

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	dock "github.com/kattens/AutodockScript"
	"github.com/kattens/AutodockScript/babel"
	"github.com/rmera/scu"
)

func main() {
	sdfDir := flag.String("sdf", "ligand_sdf", "directory with ligand SDF files; empty to skip ligands")
	pdbDir := flag.String("pdb", "receptor_pdb", "directory with receptor PDB files; empty to skip receptors")
	ligOut := flag.String("ligout", "ligand_pdbqt", "directory for ligand PDBQT files")
	recOut := flag.String("recout", "receptor_pdbqt", "directory for receptor PDBQT files")
	tmpDir := flag.String("tmp", "ligand_pdb", "directory for the intermediate ligand PDB files")
	obabelExe := flag.String("obabel", "obabel", "Open Babel executable")
	gen3D := flag.Bool("gen3d", false, "have obabel generate 3D coordinates (for 2D SDF inputs)")
	python := flag.String("python", "python", "interpreter for the AutoDockTools scripts")
	ligScript := flag.String("ligscript", "prepare_ligand4.py", "ligand preparation script")
	recScript := flag.String("recscript", "prepare_receptor4.py", "receptor preparation script")
	failLog := flag.String("faillog", "failed_conversions.txt", "file listing failed conversions")
	flag.Parse()

	O := babel.NewOBabel()
	O.SetCommand(*obabelExe)
	O.SetGen3D(*gen3D)
	A := babel.NewADTPrep()
	A.SetPython(*python)
	A.SetScripts(*ligScript, *recScript)

	converted, skipped := 0, 0
	var failed []string

	for _, sdf := range glob(*sdfDir, "*.sdf") {
		stem := dock.Stem(sdf)
		out := filepath.Join(*ligOut, stem+".pdbqt")
		if babel.SkipExisting(out) {
			skipped++
			continue
		}
		pdb := filepath.Join(*tmpDir, stem+".pdb")
		mkdir(*tmpDir)
		mkdir(*ligOut)
		if !babel.SkipExisting(pdb) {
			if err := O.Convert(sdf, pdb); err != nil {
				log.Printf("[error] %v", err)
				failed = append(failed, sdf)
				continue
			}
		}
		if err := A.PrepareLigand(pdb, out); err != nil {
			log.Printf("[error] %v", err)
			failed = append(failed, pdb)
			continue
		}
		log.Printf("[ok] %s", out)
		converted++
	}

	for _, pdb := range glob(*pdbDir, "*.pdb") {
		out := filepath.Join(*recOut, dock.Stem(pdb)+".pdbqt")
		if babel.SkipExisting(out) {
			skipped++
			continue
		}
		mkdir(*recOut)
		if err := A.PrepareReceptor(pdb, out); err != nil {
			log.Printf("[error] %v", err)
			failed = append(failed, pdb)
			continue
		}
		log.Printf("[ok] %s", out)
		converted++
	}

	if len(failed) > 0 {
		f, err := os.Create(*failLog)
		scu.QErr(err)
		fmt.Fprintln(f, "Failed conversions:")
		for _, name := range failed {
			fmt.Fprintln(f, name)
		}
		f.Close()
		log.Printf("[info] logged %d failure(s) to %s", len(failed), *failLog)
	}
	fmt.Printf("\nDone. Converted: %d | Skipped: %d | Failed: %d\n", converted, skipped, len(failed))
}

// glob returns the matching files in dir, sorted, or nothing when dir is
// empty or absent; a missing input directory just means that stage has
// nothing to do.
func glob(dir, pattern string) []string {
	if dir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	scu.QErr(err)
	sort.Strings(files)
	return files
}

func mkdir(dir string) {
	scu.QErr(os.MkdirAll(dir, 0755))
}
