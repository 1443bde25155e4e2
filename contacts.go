/*
 * contacts.go, part of AutodockScript.
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
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Contact-map CSVs list receptor atoms at a protein-ligand interface, with
//the coordinates of each contact atom serialized as one "(x, y, z)" cell.
//Boxes built from these points enclose the known binding site instead of
//the whole receptor.

// ParseCoordTriple parses a coordinate cell of a contact CSV: three
// comma-separated floats, optionally wrapped in parentheses or brackets.
func ParseCoordTriple(s string) ([3]float64, error) {
	var xyz [3]float64
	v := strings.TrimSpace(s)
	if len(v) >= 2 && ((v[0] == '(' && v[len(v)-1] == ')') || (v[0] == '[' && v[len(v)-1] == ']')) {
		v = v[1 : len(v)-1]
	}
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return xyz, Error{"Can't parse coordinate triple: " + s, "", []string{"ParseCoordTriple"}, false}
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return xyz, Error{"Can't parse coordinate triple: " + s, "", []string{"ParseCoordTriple"}, false}
		}
		xyz[i] = f
	}
	return xyz, nil
}

// ContactCoordsRead extracts the coordinates in the given column of a
// contact CSV read from in. Cells and records that fail to parse are
// skipped and counted, following the same recover-by-skipping policy as
// the structure reader; errors from the underlying reader are returned.
// A missing column is an error with the ErrMissingColumn message.
func ContactCoordsRead(in io.Reader, column string) (*mat.Dense, int, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, 0, Error{"Can't read CSV header: " + err.Error(), "", []string{"ContactCoordsRead"}, true}
	}
	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, 0, Error{ErrMissingColumn + ": " + column, "", []string{"ContactCoordsRead"}, true}
	}
	data := make([]float64, 0, 300)
	n := 0
	skipped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			//only malformed records are skippable; an I/O error repeats
			//on every Read and would loop forever
			if _, ok := err.(*csv.ParseError); ok {
				skipped++
				continue
			}
			return nil, skipped, Error{"Can't read contact CSV: " + err.Error(), "", []string{"ContactCoordsRead"}, true}
		}
		if col >= len(rec) {
			skipped++
			continue
		}
		xyz, err := ParseCoordTriple(rec[col])
		if err != nil {
			skipped++
			continue
		}
		data = append(data, xyz[0], xyz[1], xyz[2])
		n++
	}
	if n == 0 {
		return nil, skipped, Error{ErrEmptyInput, "", []string{"ContactCoordsRead"}, true}
	}
	return mat.NewDense(n, 3, data), skipped, nil
}

// ContactCoordsFile is ContactCoordsRead on a file path.
func ContactCoordsFile(path, column string) (*mat.Dense, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, Error{ErrCantOpen, path, []string{"ContactCoordsFile"}, true}
	}
	defer f.Close()
	points, skipped, err := ContactCoordsRead(f, column)
	if err != nil {
		return nil, skipped, errDecorate(err, "ContactCoordsFile")
	}
	return points, skipped, nil
}
