/*

Dockresults works over the CSV files a docking batch leaves behind:
merging the per-pair affinity tables, backfilling scores into a master
dataset, filtering by affinity threshold, printing summary statistics,
plotting affinity distributions and collecting result files by name.

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
	"strings"

	"github.com/kattens/AutodockScript/report"
	"github.com/rmera/scu"
)

func main() {
	mode := flag.String("mode", "merge", "merge|backfill|filter|summary|boxplot|collect")
	dir := flag.String("dir", "results", "directory with per-pair affinity CSVs (merge, backfill, summary, boxplot)")
	out := flag.String("out", "", "output file or directory; each mode has a sensible default")
	master := flag.String("master", "dataset.csv", "master dataset CSV (backfill)")
	keyCol := flag.String("keycol", "dock_helper", "master column whose values name the result files (backfill)")
	affCol := flag.String("affcol", report.AffinityCol, "affinity column to fill or filter on")
	affCol2 := flag.String("affcol2", "", "second column to plot beside the first, e.g. native vs non-native (boxplot)")
	max := flag.Float64("max", -6.0, "keep rows with affinity strictly below this (filter)")
	in := flag.String("in", "", "input CSV (filter, summary, boxplot); empty means merge -dir first")
	in2 := flag.String("in2", "", "CSV holding -affcol2; empty means the same table as -affcol (boxplot)")
	title := flag.String("title", "Binding affinities", "plot title (boxplot)")
	srcs := flag.String("srcs", "results", "comma-separated source directories (collect)")
	targets := flag.String("targets", "", "comma-separated stems to collect (collect)")
	flag.Parse()

	switch *mode {
	case "merge":
		output := orDefault(*out, "merged_results.csv")
		merged, skipped, err := report.Merge(*dir, output)
		scu.QErr(err)
		fmt.Printf("Merged %d file(s) into %s (%d skipped)\n", merged, output, skipped)
	case "backfill":
		output := orDefault(*out, "dataset_filled.csv")
		n, err := report.Backfill(*master, output, *dir, *keyCol, *affCol)
		scu.QErr(err)
		fmt.Printf("Backfilled %d row(s) into %s\n", n, output)
	case "filter":
		if *in == "" {
			log.Fatal("[fatal] filter needs -in")
		}
		output := orDefault(*out, "filtered_results.csv")
		n, err := report.FilterAffinity(*in, output, *affCol, *max)
		scu.QErr(err)
		fmt.Printf("Kept %d row(s) below %.1f in %s\n", n, *max, output)
	case "summary":
		vals, err := report.Column(resolveInput(*in, *dir), *affCol)
		scu.QErr(err)
		fmt.Println(report.Summarize(vals))
	case "boxplot":
		src := resolveInput(*in, *dir)
		vals, err := report.Column(src, *affCol)
		scu.QErr(err)
		labels := []string{*affCol}
		series := [][]float64{vals}
		if *affCol2 != "" {
			src2 := src
			if *in2 != "" {
				src2 = *in2
			}
			vals2, err := report.Column(src2, *affCol2)
			scu.QErr(err)
			labels = append(labels, *affCol2)
			series = append(series, vals2)
		}
		output := orDefault(*out, "affinities_boxplot.png")
		scu.QErr(report.BoxPlot(output, *title, labels, series))
		fmt.Printf("Wrote %s (%d series)\n", output, len(series))
	case "collect":
		if *targets == "" {
			log.Fatal("[fatal] collect needs -targets")
		}
		output := orDefault(*out, "collected")
		copied, unmatched, err := report.Collect(splitList(*srcs), output, splitList(*targets))
		scu.QErr(err)
		for _, t := range unmatched {
			log.Printf("[warn] nothing found for %s", t)
		}
		fmt.Printf("Copied %d file(s) into %s\n", copied, output)
	default:
		log.Fatalf("[fatal] unknown mode %q", *mode)
	}
}

// resolveInput returns the table to read: in itself, or, when no input
// file is given, the per-pair CSVs under dir merged into one.
func resolveInput(in, dir string) string {
	if in != "" {
		return in
	}
	merged := "merged_results.csv"
	_, _, err := report.Merge(dir, merged)
	scu.QErr(err)
	return merged
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
