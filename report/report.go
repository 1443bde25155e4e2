/*
 * report.go, part of AutodockScript.
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

/*
Package report aggregates docking results into tabular form: one small CSV
of ranked affinities per receptor/ligand pair, merged tables across a
batch, and affinity back-fill into a master dataset keyed by structure
name. Nothing here is chemistry; it is the bookkeeping that makes a
thousand-pair run usable as one spreadsheet.
*/
package report

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	dock "github.com/kattens/AutodockScript"
	"gonum.org/v1/gonum/stat"
)

// AffinityCol is the header under which binding affinities are written and
// looked up. Older result files may use the unitless variant, so readers
// accept both.
const (
	AffinityCol    = "Binding_Affinity_kcal/mol"
	AffinityColOld = "Binding_Affinity"
)

// WriteAffinities writes one pair's ranked affinities (best first, as
// returned by the engine) as a Rank/affinity CSV.
func WriteAffinities(path string, affinities []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"Rank", AffinityCol}); err != nil {
		return err
	}
	for i, a := range affinities {
		if err := w.Write([]string{strconv.Itoa(i + 1), fmt.Sprintf("%.1f", a)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadAffinities reads back a Rank/affinity CSV, in rank order.
func ReadAffinities(path string) ([]float64, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	col := findColumn(header, AffinityCol, AffinityColOld)
	if col < 0 {
		return nil, fmt.Errorf("report: %s: no affinity column", path)
	}
	affinities := make([]float64, 0, len(rows))
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		a, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			continue
		}
		affinities = append(affinities, a)
	}
	return affinities, nil
}

// TopAffinity returns the first-ranked affinity in a result CSV.
func TopAffinity(path string) (float64, error) {
	affinities, err := ReadAffinities(path)
	if err != nil {
		return 0, err
	}
	if len(affinities) == 0 {
		return 0, fmt.Errorf("report: %s: empty result file", path)
	}
	return affinities[0], nil
}

// Merge concatenates every CSV in dir into one table at out, adding a
// Source_File column so rows stay traceable to their pair. Files that fail
// to read are skipped and counted in the second return value, not fatal.
func Merge(dir, out string) (merged, skipped int, err error) {
	files, err := csvFiles(dir)
	if err != nil {
		return 0, 0, err
	}
	f, err := os.Create(out)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	wroteHeader := false
	for _, file := range files {
		rows, header, err := readCSV(file)
		if err != nil {
			skipped++
			continue
		}
		if !wroteHeader {
			if err := w.Write(append(header, "Source_File")); err != nil {
				return merged, skipped, err
			}
			wroteHeader = true
		}
		base := filepath.Base(file)
		for _, row := range rows {
			if err := w.Write(append(row, base)); err != nil {
				return merged, skipped, err
			}
		}
		merged++
	}
	w.Flush()
	return merged, skipped, w.Error()
}

// Backfill reads the master table at masterIn, and for every row whose
// keyCol value has a matching result CSV in resultsDir writes that file's
// top affinity into outCol, creating the column if needed. The updated
// table goes to masterOut. Matching is by normalized stem: extensions
// stripped on both sides, equality or containment either way, since result
// files are named <ligand>_vs_<receptor> while master keys are often just
// one of the two. Returns how many rows were filled.
func Backfill(masterIn, masterOut, resultsDir, keyCol, outCol string) (int, error) {
	rows, header, err := readCSV(masterIn)
	if err != nil {
		return 0, err
	}
	key := findColumn(header, keyCol)
	if key < 0 {
		return 0, fmt.Errorf("report: %s: no column %q", masterIn, keyCol)
	}
	out := findColumn(header, outCol)
	if out < 0 {
		header = append(header, outCol)
		out = len(header) - 1
	}
	files, err := csvFiles(resultsDir)
	if err != nil {
		return 0, err
	}
	filled := 0
	for i, row := range rows {
		for out >= len(row) {
			row = append(row, "")
		}
		target := dock.Stem(row[key])
		if target == "" {
			rows[i] = row
			continue
		}
		for _, file := range files {
			if !stemsMatch(target, dock.Stem(file)) {
				continue
			}
			a, err := TopAffinity(file)
			if err != nil {
				continue
			}
			row[out] = fmt.Sprintf("%.1f", a)
			filled++
			break
		}
		rows[i] = row
	}
	return filled, writeCSV(masterOut, header, rows)
}

// FilterAffinity copies the table at in to out keeping only the rows whose
// col value is strictly below max. Rows with a missing or unparseable
// value are dropped too: a row without a usable affinity cannot pass a
// numeric cutoff. Returns how many rows were kept.
func FilterAffinity(in, out, col string, max float64) (int, error) {
	rows, header, err := readCSV(in)
	if err != nil {
		return 0, err
	}
	c := findColumn(header, col)
	if c < 0 {
		return 0, fmt.Errorf("report: %s: no column %q", in, col)
	}
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if c >= len(row) {
			continue
		}
		a, err := strconv.ParseFloat(row[c], 64)
		if err != nil || a >= max {
			continue
		}
		kept = append(kept, row)
	}
	return len(kept), writeCSV(out, header, kept)
}

// Column extracts the numeric values of one column of a CSV table,
// skipping rows without a parseable value.
func Column(path, col string) ([]float64, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	c := findColumn(header, col)
	if c < 0 {
		return nil, fmt.Errorf("report: %s: no column %q", path, col)
	}
	vals := make([]float64, 0, len(rows))
	for _, row := range rows {
		if c >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(row[c], 64)
		if err != nil || math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Summary holds descriptive statistics for one affinity column.
type Summary struct {
	N                        int
	Mean, Std                float64
	Min, Q1, Median, Q3, Max float64
}

// Summarize computes descriptive statistics over vals. It returns the zero
// Summary for an empty input.
func Summarize(vals []float64) Summary {
	var s Summary
	s.N = len(vals)
	if s.N == 0 {
		return s
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Mean = stat.Mean(sorted, nil)
	if s.N > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.2f std=%.2f min=%.2f q1=%.2f median=%.2f q3=%.2f max=%.2f",
		s.N, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
}

// stemsMatch implements the loose matching used across the pipeline's file
// bookkeeping: equal stems match, and so does either stem containing the
// other, which covers <ligand>_vs_<receptor> composites.
func stemsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// csvFiles lists every .csv under dir, recursively and sorted, so result
// trees organized into one directory per receptor need no flattening.
func csvFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("report: %s: empty file", path)
	}
	return all[1:], all[0], nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// findColumn returns the index of the first of the given names present in
// header, or -1.
func findColumn(header []string, names ...string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
	}
	return -1
}
