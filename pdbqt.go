/*
 * pdbqt.go, part of AutodockScript.
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
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

//PDBQT reading. PDBQT shares the fixed-column ATOM/HETATM layout with PDB,
//with extra fields past column 66 that we don't need, so the same reader
//handles both formats.

// Parses one ATOM/HETATM line. Only the fields the pipeline uses are read;
// anything else in the record is ignored.
func readAtomLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	if len(line) < 54 {
		return nil, coords, Error{"Truncated ATOM/HETATM record", "", []string{"readAtomLine"}, false}
	}
	at := new(Atom)
	at.Het = strings.HasPrefix(line, "HETATM")
	at.Name = strings.TrimSpace(line[12:16])
	at.Molname = strings.TrimSpace(line[17:20])
	at.Chain = strings.TrimSpace(line[21:22])
	at.Molid, _ = strconv.Atoi(strings.TrimSpace(line[22:26])) //missing resseq is tolerable, left at 0
	err := make([]error, 3)
	coords[0], err[0] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[1] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[2] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range err {
		if e != nil {
			return nil, coords, Error{"Malformed coordinates: " + e.Error(), "", []string{"readAtomLine"}, false}
		}
	}
	return at, coords, nil
}

// PDBQTReaderRead reads ATOM/HETATM records from in. Records that fail to
// parse as coordinates are skipped, not fatal: structure files in the wild
// carry the occasional mangled line and losing one atom does not change a
// bounding box much. The number of skipped records is returned so callers
// can log it. name becomes the Molecule's identifier.
func PDBQTReaderRead(in io.Reader, name string) (*Molecule, int, error) {
	mol := &Molecule{Name: name}
	data := make([]float64, 0, 3000)
	skipped := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		at, coords, err := readAtomLine(line)
		if err != nil {
			skipped++
			continue
		}
		mol.Atoms = append(mol.Atoms, at)
		data = append(data, coords[0], coords[1], coords[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, Error{err.Error(), name, []string{"PDBQTReaderRead"}, true}
	}
	if len(mol.Atoms) == 0 {
		return mol, skipped, Error{ErrNoAtomRecords, name, []string{"PDBQTReaderRead"}, false}
	}
	mol.Coords = mat.NewDense(len(mol.Atoms), 3, data)
	return mol, skipped, nil
}

// PDBQTRead reads a PDB or PDBQT file. A ".gz" suffix triggers transparent
// decompression. The molecule's name is the file stem (extension stripped,
// including a trailing ".gz"). Skipped malformed records are logged.
func PDBQTRead(path string) (*Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{ErrCantOpen, path, []string{"PDBQTRead"}, true}
	}
	defer f.Close()
	var in io.Reader = f
	name := path
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{"Not a valid gzip file: " + err.Error(), path, []string{"PDBQTRead"}, true}
		}
		defer gz.Close()
		in = gz
		name = strings.TrimSuffix(name, ".gz")
	}
	name = Stem(name)
	mol, skipped, err := PDBQTReaderRead(in, name)
	if skipped > 0 {
		log.Printf("[warn] %s: skipped %d malformed ATOM/HETATM record(s)", path, skipped)
	}
	if err != nil {
		return mol, errDecorate(err, "PDBQTRead")
	}
	return mol, nil
}

// Stem returns the base name of path with the extension removed. Double
// extensions produced by the pipeline (.pdb.gz, .pdbqt.csv and the like)
// are stripped completely, so the stem is stable across formats and can be
// used as the receptor/ligand identifier everywhere.
func Stem(path string) string {
	s := filepath.Base(path)
	for {
		ext := filepath.Ext(s)
		switch ext {
		case ".pdb", ".pdbqt", ".sdf", ".csv", ".log", ".out", ".json", ".gz":
			s = strings.TrimSuffix(s, ext)
		default:
			return s
		}
	}
}
