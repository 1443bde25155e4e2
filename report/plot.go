/*
 * plot.go, part of AutodockScript.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxPlot draws side-by-side box plots of the given affinity columns (one
// labeled series per column, typically native vs. non-native pairings) and
// saves them to path; the extension picks the format, as usual with the
// plotting library. Any statistical reading of the comparison is left to
// dedicated tools; this is just the standard visual check of a batch.
func BoxPlot(path, title string, labels []string, series [][]float64) error {
	if len(labels) != len(series) || len(series) == 0 {
		return fmt.Errorf("report: need one label per series")
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Binding Affinity (kcal/mol)"
	for i, vals := range series {
		if len(vals) == 0 {
			return fmt.Errorf("report: series %q is empty", labels[i])
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		p.Add(b)
	}
	p.NominalX(labels...)
	return p.Save(5*vg.Inch, 4*vg.Inch, path)
}
