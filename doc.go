/*
 * doc.go, part of AutodockScript.
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
Package dock automates receptor/ligand docking with AutoDock Vina.

The package itself contains the parts of the workflow that are ours to
compute: reading coordinates from PDB/PDBQT structure files and contact-map
CSVs, estimating the 3D search region ("docking box") for each receptor,
and keeping a registry of precomputed boxes. The numerically hard work, the
docking search and the chemistry format conversions, stays in the external
programs driven by the vina and babel subpackages.

Box estimation follows a fixed fallback order per receptor: a curated box
from the registry, then a box centered on a detected bound ligand, then the
whole-receptor heavy-atom bounding box, and as a last resort a default cube
at the origin. A batch therefore never stops because one receptor lacks
data; it just gets a less precise box.

Coordinates are kept in gonum matrices with one row per atom. All
estimation functions are pure; receptors can be processed concurrently
without coordination as long as the registry is loaded first.

The cmd directory holds the pipeline front-ends: dockfetch (structure
retrieval), dockprep (format conversion), dockboxes (box registry
construction from contact maps), dockrun (batch docking) and dockresults
(report aggregation).
*/
package dock
