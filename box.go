/*
 * box.go, part of AutodockScript.
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
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Box is a docking search region: a center point and per-axis edge lengths,
// in the same distance units as the coordinates it was computed from
// (Angstroms, for structures from the PDB). NPoints records how many
// coordinates contributed to the estimate; it is zero only for the
// degenerate default box.
type Box struct {
	Center  [3]float64 `json:"center"`
	Size    [3]float64 `json:"size"`
	NPoints int        `json:"n_points"`
}

// BoxOptions collects every policy knob for box estimation. The zero value
// is NOT useful; start from DefaultBoxOptions.
type BoxOptions struct {
	Pad       float64 //added to BOTH sides of every axis
	MinSize   float64 //floor for each axis of the computed size
	ForceCube bool    //make all three axes equal to the largest one
	//FixedEdge is the edge used for ligand-centered boxes and for the
	//degenerate default box, where the bounding-box math doesn't apply.
	FixedEdge float64
	//Dedup rounds coordinates to DedupDecimals places and removes exact
	//duplicates before computing statistics. Duplicated points otherwise
	//shift the mean. Off by default: contact maps legitimately repeat a
	//receptor atom that touches several ligand atoms.
	Dedup         bool
	DedupDecimals int
}

// DefaultBoxOptions returns the documented defaults: 3 A padding, 16 A
// minimum edge, cube-forcing on, 25 A fixed edge, no deduplication.
func DefaultBoxOptions() *BoxOptions {
	return &BoxOptions{
		Pad:           3.0,
		MinSize:       16.0,
		ForceCube:     true,
		FixedEdge:     25.0,
		Dedup:         false,
		DedupDecimals: 3,
	}
}

// BoxFromPoints estimates a docking box from a set of 3D points (one per
// row). The center is the arithmetic mean of the points. Each axis of the
// size is the bounding-box extent plus padding on both sides, raised to
// MinSize if smaller; with ForceCube set, all axes are then replaced by the
// largest one. The result depends only on the point set and the options,
// not on point order. An empty (or nil) input is an error with the
// ErrEmptyInput message.
func BoxFromPoints(points *mat.Dense, o *BoxOptions) (*Box, error) {
	if o == nil {
		o = DefaultBoxOptions()
	}
	if points == nil {
		return nil, Error{ErrEmptyInput, "", []string{"BoxFromPoints"}, true}
	}
	if o.Dedup {
		points = DedupPoints(points, o.DedupDecimals)
	}
	n, _ := points.Dims()
	if n == 0 {
		return nil, Error{ErrEmptyInput, "", []string{"BoxFromPoints"}, true}
	}
	b := &Box{NPoints: n}
	var col []float64
	for j := 0; j < 3; j++ {
		col = mat.Col(col, j, points)
		b.Center[j] = stat.Mean(col, nil)
		b.Size[j] = floats.Max(col) - floats.Min(col) + 2*o.Pad
		if b.Size[j] < o.MinSize {
			b.Size[j] = o.MinSize
		}
	}
	if o.ForceCube {
		m := floats.Max(b.Size[:])
		b.Size[0], b.Size[1], b.Size[2] = m, m, m
	}
	return b, nil
}

// DedupPoints rounds every coordinate to the given number of decimal places
// and removes duplicated points, keeping first occurrences in their
// original order. The returned matrix is always a copy.
func DedupPoints(points *mat.Dense, decimals int) *mat.Dense {
	p := math.Pow(10, float64(decimals))
	n, _ := points.Dims()
	seen := make(map[[3]float64]bool, n)
	rows := make([]float64, 0, 3*n)
	kept := 0
	for i := 0; i < n; i++ {
		var r [3]float64
		for j := 0; j < 3; j++ {
			r[j] = math.Round(points.At(i, j)*p) / p
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		rows = append(rows, r[0], r[1], r[2])
		kept++
	}
	return mat.NewDense(kept, 3, rows)
}

// FixedBox returns a cube of the given edge centered on the mean of the
// points. This is the policy for ligand-centered boxes: the known binding
// site fixes the center, and a fixed edge is simpler downstream than a
// per-site extent.
func FixedBox(points *mat.Dense, edge float64) (*Box, error) {
	n, _ := points.Dims()
	if n == 0 {
		return nil, Error{ErrEmptyInput, "", []string{"FixedBox"}, true}
	}
	b := &Box{NPoints: n, Size: [3]float64{edge, edge, edge}}
	var col []float64
	for j := 0; j < 3; j++ {
		col = mat.Col(col, j, points)
		b.Center[j] = stat.Mean(col, nil)
	}
	return b, nil
}

// DefaultBox returns the degenerate last-resort box: a FixedEdge cube at
// the origin. NPoints is zero to mark that no coordinates backed it.
func DefaultBox(o *BoxOptions) *Box {
	if o == nil {
		o = DefaultBoxOptions()
	}
	return &Box{Size: [3]float64{o.FixedEdge, o.FixedEdge, o.FixedEdge}}
}

// ReceptorBox resolves the docking box for one receptor, trying, in order:
//
//  1. a precomputed box stored in reg under the receptor's name, returned
//     verbatim (curated boxes beat anything recomputed);
//  2. a ligand-centered box around the hetero group selected by
//     SelectGroup with the given target/exclusions, with a FixedEdge cube;
//  3. the whole-receptor heavy-atom bounding box via BoxFromPoints;
//  4. the degenerate default box, if the structure yielded no heavy-atom
//     coordinates at all.
//
// Precision degrades down the list but the function always produces a box,
// so one bad receptor never stops a batch. Tiers 2-4 log which policy won.
func ReceptorBox(name string, mol *Molecule, reg Registry, target string, excluded []string, o *BoxOptions) *Box {
	if o == nil {
		o = DefaultBoxOptions()
	}
	if b, ok := reg[name]; ok {
		log.Printf("[site-box] %s: center=%v size=%v", name, b.Center, b.Size)
		return b
	}
	if mol.Len() > 0 {
		if k, points, err := mol.SelectGroup(target, excluded); err == nil {
			if b, err := FixedBox(points, o.FixedEdge); err == nil {
				log.Printf("[ligand-box] %s: %s %s%d center=%v", name, k.Molname, k.Chain, k.Molid, b.Center)
				return b
			}
		}
	}
	heavy := mol.HeavyCoords()
	if heavy != nil {
		wholeOpts := *o
		wholeOpts.MinSize = o.FixedEdge //a docking run needs room for poses past the atom extent
		if b, err := BoxFromPoints(heavy, &wholeOpts); err == nil {
			log.Printf("[auto-box] %s: center=%v size=%v", name, b.Center, b.Size)
			return b
		}
	}
	log.Printf("[warn] %s: no heavy-atom coordinates parsed, using default %.0f A box at origin", name, o.FixedEdge)
	return DefaultBox(o)
}
