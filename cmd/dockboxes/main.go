/*

Dockboxes builds a docking-box registry from protein-ligand contact maps.

For every receptor structure it looks for the matching contact CSV, reads
the receptor-side coordinates of the recorded contacts, estimates a box
enclosing them and stores it in a JSON registry keyed by the receptor's
file stem. The registry is what dockrun consults before falling back to
automatic whole-receptor boxes.

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
	"strings"

	dock "github.com/kattens/AutodockScript"
	"github.com/rmera/scu"
)

func main() {
	contactsDir := flag.String("contacts", "contact_output", "directory with per-receptor contact CSVs")
	receptorsDir := flag.String("receptors", "", "directory with receptor structures; empty to key boxes by CSV stem")
	out := flag.String("out", "Center_boxes.json", "registry file to write")
	column := flag.String("column", "protein_coord", "contact CSV column holding the receptor-side coordinates")
	suffix := flag.String("suffix", "", "receptor-stem suffix absent from the CSV names, e.g. _malaria")
	pad := flag.Float64("pad", 3.0, "padding added to both sides of every box axis")
	minSize := flag.Float64("minsize", 16.0, "minimum box edge")
	cube := flag.Bool("cube", true, "force cubic boxes")
	dedup := flag.Bool("dedup", false, "round coordinates to 3 decimals and deduplicate before estimating")
	flag.Parse()

	opts := dock.DefaultBoxOptions()
	opts.Pad = *pad
	opts.MinSize = *minSize
	opts.ForceCube = *cube
	opts.Dedup = *dedup

	reg := dock.Registry{}
	for _, stem := range receptorStems(*receptorsDir, *contactsDir, *suffix) {
		csvPath := filepath.Join(*contactsDir, strings.TrimSuffix(stem, *suffix)+".csv")
		if _, err := os.Stat(csvPath); err != nil {
			log.Printf("[warn] %s: no contact CSV (expected %s)", stem, filepath.Base(csvPath))
			continue
		}
		points, skipped, err := dock.ContactCoordsFile(csvPath, *column)
		if skipped > 0 {
			log.Printf("[warn] %s: skipped %d bad coordinate cell(s)", filepath.Base(csvPath), skipped)
		}
		if err != nil {
			log.Printf("[warn] %s: %v", filepath.Base(csvPath), err)
			continue
		}
		box, err := dock.BoxFromPoints(points, opts)
		if err != nil {
			log.Printf("[warn] %s: %v", stem, err)
			continue
		}
		reg[stem] = box
		log.Printf("[ok] %s: center=%v size=%v (N=%d)", stem, box.Center, box.Size, box.NPoints)
	}
	err := reg.Write(*out)
	scu.QErr(err)
	fmt.Printf("Done. Wrote %s with %d entries.\n", *out, len(reg))
}

// receptorStems lists the registry keys to build boxes for: the structure
// stems under receptorsDir if given, otherwise the contact CSV stems with
// the suffix re-attached.
func receptorStems(receptorsDir, contactsDir, suffix string) []string {
	var stems []string
	if receptorsDir != "" {
		for _, pattern := range []string{"*.pdb", "*.pdbqt", "*.pdb.gz"} {
			files, err := filepath.Glob(filepath.Join(receptorsDir, pattern))
			scu.QErr(err)
			for _, f := range files {
				stems = append(stems, dock.Stem(f))
			}
		}
	} else {
		files, err := filepath.Glob(filepath.Join(contactsDir, "*.csv"))
		scu.QErr(err)
		for _, f := range files {
			stems = append(stems, dock.Stem(f)+suffix)
		}
	}
	sort.Strings(stems)
	return stems
}
