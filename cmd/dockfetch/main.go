/*

Dockfetch downloads the structures a dataset refers to: receptor PDB
files from the RCSB and ligand 3D SDF files from PubChem, given a CSV
with an ID column for each. Files already on disk are not downloaded
again, so an interrupted run can simply be repeated.

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
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kattens/AutodockScript/fetch"
	"github.com/rmera/scu"
)

func main() {
	csvPath := flag.String("csv", "dataset.csv", "dataset CSV with the ID columns")
	pdbCol := flag.String("pdbcol", "pdb_id", "column with RCSB PDB IDs; empty to skip receptors")
	cidCol := flag.String("cidcol", "pubchem_cid", "column with PubChem CIDs; empty to skip ligands")
	pdbDir := flag.String("pdbdir", "receptor_pdb", "directory for downloaded PDB files")
	sdfDir := flag.String("sdfdir", "ligand_sdf", "directory for downloaded SDF files")
	gz := flag.Bool("gz", false, "download receptors gzipped and decompress locally")
	flag.Parse()

	f, err := os.Open(*csvPath)
	scu.QErr(err)
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	f.Close()
	scu.QErr(err)
	if len(rows) < 2 {
		log.Fatalf("[fatal] %s: no data rows", *csvPath)
	}

	pdbIDs := column(rows, *pdbCol)
	cids := column(rows, *cidCol)
	log.Printf("[plan] %d PDB ID(s), %d PubChem CID(s)", len(pdbIDs), len(cids))

	fetched, errors := 0, 0
	for _, id := range pdbIDs {
		path, err := fetch.RCSB(id, *pdbDir, *gz)
		if err != nil {
			log.Printf("[error] PDB %s: %v", id, err)
			errors++
			continue
		}
		log.Printf("[ok] %s", path)
		fetched++
	}
	for _, cid := range cids {
		path, err := fetch.PubChemSDF(cid, *sdfDir)
		if err != nil {
			log.Printf("[error] CID %s: %v", cid, err)
			errors++
			continue
		}
		log.Printf("[ok] %s", path)
		fetched++
	}
	fmt.Printf("\nDone. Fetched: %d | Errors: %d\n", fetched, errors)
	if errors > 0 {
		os.Exit(1)
	}
}

// column returns the unique, non-empty values of the named column, in
// first-appearance order. A missing or empty column name yields nil.
func column(rows [][]string, name string) []string {
	if name == "" {
		return nil
	}
	col := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == name {
			col = i
			break
		}
	}
	if col < 0 {
		log.Printf("[warn] no column %q, skipping it", name)
		return nil
	}
	var vals []string
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		vals = append(vals, v)
	}
	return vals
}
