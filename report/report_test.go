/*
 * report_test.go, part of AutodockScript.
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

package report

import (
	"fmt"
	"math"
	"os"
	"testing"
)

//The test/results tree mimics a small docking run: one readable result
//CSV per receptor folder plus one empty, unreadable file.

func TestAffinityRoundtrip(Te *testing.T) {
	affinities := []float64{-7.541, -7.301, -6.918}
	if err := WriteAffinities("test/roundtrip.csv", affinities); err != nil {
		Te.Fatal(err)
	}
	back, err := ReadAffinities("test/roundtrip.csv")
	if err != nil {
		Te.Fatal(err)
	}
	//affinities are written with one decimal, like the engine reports them
	want := []float64{-7.5, -7.3, -6.9}
	if len(back) != len(want) {
		Te.Fatalf("wrong value count: %d", len(back))
	}
	for i := range want {
		if back[i] != want[i] {
			Te.Errorf("wrong value %d: %v", i, back[i])
		}
	}
	top, err := TopAffinity("test/roundtrip.csv")
	if err != nil || top != -7.5 {
		Te.Errorf("wrong top affinity: %v, %v", top, err)
	}
}

func TestMerge(Te *testing.T) {
	merged, skipped, err := Merge("test/results", "test/merged.csv")
	if err != nil {
		Te.Fatal(err)
	}
	if merged != 2 || skipped != 1 {
		Te.Errorf("wrong counts: merged %d, skipped %d", merged, skipped)
	}
	vals, err := Column("test/merged.csv", AffinityCol)
	if err != nil {
		Te.Fatal(err)
	}
	if len(vals) != 3 {
		Te.Errorf("wrong merged row count: %d", len(vals))
	}
	//traceability column present
	rows, header, err := readCSV("test/merged.csv")
	if err != nil {
		Te.Fatal(err)
	}
	src := findColumn(header, "Source_File")
	if src < 0 {
		Te.Fatal("no Source_File column")
	}
	if rows[0][src] != "aspirin_ligand_vs_1abc.csv" {
		Te.Errorf("wrong source file: %s", rows[0][src])
	}
}

func TestBackfill(Te *testing.T) {
	filled, err := Backfill("test/master.csv", "test/master_filled.csv", "test/results", "dock_helper", AffinityCol)
	if err != nil {
		Te.Fatal(err)
	}
	if filled != 2 {
		Te.Errorf("wrong filled count: %d", filled)
	}
	rows, header, err := readCSV("test/master_filled.csv")
	if err != nil {
		Te.Fatal(err)
	}
	col := findColumn(header, AffinityCol)
	if col < 0 {
		Te.Fatal("affinity column not created")
	}
	if rows[0][col] != "-7.5" || rows[1][col] != "-6.2" {
		Te.Errorf("wrong backfilled values: %v, %v", rows[0][col], rows[1][col])
	}
	if rows[2][col] != "" {
		Te.Errorf("unmatched row got a value: %v", rows[2][col])
	}
}

func TestFilterAffinity(Te *testing.T) {
	if _, _, err := Merge("test/results", "test/merged.csv"); err != nil {
		Te.Fatal(err)
	}
	kept, err := FilterAffinity("test/merged.csv", "test/filtered.csv", AffinityCol, -7.0)
	if err != nil {
		Te.Fatal(err)
	}
	//only the two 1abc poses are below -7.0; the filter is strict
	if kept != 2 {
		Te.Errorf("wrong kept count: %d", kept)
	}
	vals, err := Column("test/filtered.csv", AffinityCol)
	if err != nil {
		Te.Fatal(err)
	}
	for _, v := range vals {
		if v >= -7.0 {
			Te.Errorf("value %v passed the cutoff", v)
		}
	}
}

func TestSummarize(Te *testing.T) {
	s := Summarize([]float64{-7.5, -7.3, -6.2})
	fmt.Println(s)
	if s.N != 3 {
		Te.Errorf("wrong count: %d", s.N)
	}
	if math.Abs(s.Mean+7.0) > 1e-9 {
		Te.Errorf("wrong mean: %v", s.Mean)
	}
	if s.Min != -7.5 || s.Max != -6.2 || s.Median != -7.3 {
		Te.Errorf("wrong order statistics: %+v", s)
	}
	if math.Abs(s.Std-0.7) > 1e-9 {
		Te.Errorf("wrong standard deviation: %v", s.Std)
	}
	empty := Summarize(nil)
	if empty.N != 0 || empty.Mean != 0 {
		Te.Errorf("nonzero summary for empty input: %+v", empty)
	}
}

func TestBoxPlot(Te *testing.T) {
	err := BoxPlot("test/affinities.png", "Binding affinities",
		[]string{"set A", "set B"},
		[][]float64{{-7.5, -7.3, -6.9, -6.5, -5.9}, {-6.2, -6.0, -5.5}})
	if err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat("test/affinities.png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty plot file")
	}
}

func TestCollect(Te *testing.T) {
	os.RemoveAll("test/collected")
	copied, unmatched, err := Collect([]string{"test/results"}, "test/collected", []string{"1abc", "no_such_pair"})
	if err != nil {
		Te.Fatal(err)
	}
	if copied != 1 {
		Te.Errorf("wrong copied count: %d", copied)
	}
	if len(unmatched) != 1 || unmatched[0] != "no_such_pair" {
		Te.Errorf("wrong unmatched targets: %v", unmatched)
	}
	if _, err := os.Stat("test/collected/aspirin_ligand_vs_1abc.csv"); err != nil {
		Te.Error("matched file not copied")
	}
}

func TestStemsMatch(Te *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1abc", "1abc", true},
		{"1abc", "aspirin_ligand_vs_1abc", true},
		{"aspirin_ligand_vs_1abc", "1abc", true},
		{"1abc", "2xyz", false},
		{"", "1abc", false},
	}
	for _, c := range cases {
		if got := stemsMatch(c.a, c.b); got != c.want {
			Te.Errorf("stemsMatch(%q, %q) = %v", c.a, c.b, got)
		}
	}
}
