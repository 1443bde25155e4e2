/*
 * babel.go, part of AutodockScript.
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
//This package requires Open Babel (the obabel binary) and, for PDBQT
//preparation, the AutoDockTools prepare_ligand4.py/prepare_receptor4.py
//scripts with a Python interpreter able to run them.

/*
Package babel drives the external chemistry format converters: Open Babel
for SDF/PDB interconversion and the AutoDockTools preparation scripts for
PDBQT generation. The conversions themselves (3D coordinate generation,
protonation, charge assignment, torsion-tree setup) are entirely the
external programs' work; this package only builds command lines, runs them
and reports failures in a form batch loops can record and skip.
*/
package babel

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// SkipExisting reports whether the conversion to out can be skipped
// because the output already exists. Batch conversions are restartable by
// policy: an interrupted run is simply started again.
func SkipExisting(out string) bool {
	_, err := os.Stat(out)
	return err == nil
}

// OBabel is a handle for the obabel converter.
type OBabel struct {
	command string
	gen3D   bool //generate 3D coordinates when the input has none
}

// NewOBabel returns an OBabel handle using the obabel binary from PATH.
func NewOBabel() *OBabel {
	return &OBabel{command: "obabel"}
}

// SetCommand sets the path to the obabel executable.
func (O *OBabel) SetCommand(name string) {
	O.command = name
}

// SetGen3D makes conversions request 3D coordinate generation. Needed for
// SDF inputs that carry only 2D connection tables.
func (O *OBabel) SetGen3D(b bool) {
	O.gen3D = b
}

// Args returns the argument list for converting in to out. Formats are
// taken from the file extensions, the way obabel itself resolves them with
// -i/-o flags.
func (O *OBabel) Args(in, out string) []string {
	args := []string{"-i" + ext(in), in, "-o" + ext(out), "-O", out}
	if O.gen3D {
		args = append(args, "--gen3d")
	}
	return args
}

// Convert runs obabel to convert in to out. The converter's combined
// output is included in the error on failure, since obabel reports the
// actual problem (bad valence, unreadable record) only there.
func (O *OBabel) Convert(in, out string) error {
	cmd := exec.Command(O.command, O.Args(in, out)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Error{ErrConversion, in, string(output), []string{"Convert"}, false}
	}
	return nil
}

// ADTPrep is a handle for the AutoDockTools preparation scripts, which
// turn PDB files into the PDBQT files Vina consumes.
type ADTPrep struct {
	python         string
	ligandScript   string
	receptorScript string
}

// NewADTPrep returns an ADTPrep handle with the conventional script names,
// resolved relative to the working directory unless overridden.
func NewADTPrep() *ADTPrep {
	return &ADTPrep{
		python:         "python",
		ligandScript:   "prepare_ligand4.py",
		receptorScript: "prepare_receptor4.py",
	}
}

// SetPython sets the interpreter used to run the scripts.
func (A *ADTPrep) SetPython(name string) {
	A.python = name
}

// SetScripts sets the paths of the ligand and receptor preparation
// scripts. Empty strings leave the current value.
func (A *ADTPrep) SetScripts(ligand, receptor string) {
	if ligand != "" {
		A.ligandScript = ligand
	}
	if receptor != "" {
		A.receptorScript = receptor
	}
}

// LigandArgs returns the argument list for preparing a ligand PDBQT.
func (A *ADTPrep) LigandArgs(in, out string) []string {
	return []string{A.ligandScript, "-l", in, "-o", out, "-v"}
}

// ReceptorArgs returns the argument list for preparing a receptor PDBQT.
func (A *ADTPrep) ReceptorArgs(in, out string) []string {
	return []string{A.receptorScript, "-r", in, "-o", out, "-v"}
}

// PrepareLigand converts a ligand PDB file to PDBQT.
func (A *ADTPrep) PrepareLigand(in, out string) error {
	return A.run(A.LigandArgs(in, out), in)
}

// PrepareReceptor converts a receptor PDB file to PDBQT.
func (A *ADTPrep) PrepareReceptor(in, out string) error {
	return A.run(A.ReceptorArgs(in, out), in)
}

func (A *ADTPrep) run(args []string, in string) error {
	cmd := exec.Command(A.python, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Error{ErrConversion, in, string(output), []string{"run"}, false}
	}
	return nil
}

// ext returns the lower-cased file extension without the dot.
func ext(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 || i == len(path)-1 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}

//Errors

const (
	ErrConversion = "Converter exited with an error"
)

// Error is the error type for conversion failures. The converter's own
// output is carried along, as it is usually the only useful diagnostic.
type Error struct {
	message  string
	filename string
	output   string //what the converter printed
	deco     []string
	critical bool
}

func (err Error) Error() string {
	s := fmt.Sprintf("babel error converting %s: %s", err.filename, err.message)
	if err.output != "" {
		s += "\n" + strings.TrimSpace(err.output)
	}
	return s
}

// Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the input file associated to the error.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
