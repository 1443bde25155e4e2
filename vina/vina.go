/*
 * vina.go, part of AutodockScript.
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
//In order to use this package you need the AutoDock Vina program, which
//must be obtained from the Center for Computational Structural Biology.
//Please cite the Vina references if you use it.

package vina

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	dock "github.com/kattens/AutodockScript"
)

// Handle sets up and runs AutoDock Vina dockings, one receptor/ligand pair
// per prepared input. The zero value is not usable; start from NewHandle.
// Note that Vina 1.2 dropped the --log flag, so the pose table is taken
// from the captured stdout instead.
type Handle struct {
	command        string
	workdir        string
	name           string
	nCPU           int
	exhaustiveness int
	nPoses         int
	seed           int
}

// NewHandle returns a Handle with the defaults: the "vina" binary from
// PATH, one CPU (batches parallelize across pairs, not inside the engine)
// and up to 10 reported poses.
func NewHandle() *Handle {
	H := new(Handle)
	H.SetDefaults()
	return H
}

func (H *Handle) SetDefaults() {
	H.command = "vina"
	H.nCPU = 1
	H.nPoses = 10
}

//Handle methods

// SetName sets the job name, used for the input, output and docked-pose
// file names.
func (H *Handle) SetName(name string) {
	H.name = name
}

// SetCommand sets the path to the Vina executable.
func (H *Handle) SetCommand(name string) {
	H.command = name
}

// SetWorkDir sets the directory where input and output files are placed.
func (H *Handle) SetWorkDir(dir string) {
	H.workdir = dir
}

// SetnCPU sets the number of CPUs Vina may use.
func (H *Handle) SetnCPU(cpu int) {
	H.nCPU = cpu
}

// SetExhaustiveness sets the search exhaustiveness (Vina's default is 8).
// Zero means leave it to the engine.
func (H *Handle) SetExhaustiveness(e int) {
	H.exhaustiveness = e
}

// SetnPoses caps how many poses Affinities returns.
func (H *Handle) SetnPoses(n int) {
	H.nPoses = n
}

// SetSeed fixes the engine's random seed, for reproducible runs. Zero
// means let the engine pick one.
func (H *Handle) SetSeed(s int) {
	H.seed = s
}

func (H *Handle) path(suffix string) string {
	return filepath.Join(H.workdir, H.name+suffix)
}

// ConfFile returns the path of the generated configuration file.
func (H *Handle) ConfFile() string { return H.path("_conf.txt") }

// OutFile returns the path of the captured engine output.
func (H *Handle) OutFile() string { return H.path(".out") }

// PosesFile returns the path of the docked poses PDBQT.
func (H *Handle) PosesFile() string { return H.path(".pdbqt") }

// BuildInput writes the Vina configuration file for docking ligand against
// receptor inside box. Paths go into the configuration verbatim, so they
// must be valid from the process's working directory, not from H's workdir.
func (H *Handle) BuildInput(receptor, ligand string, box *dock.Box) error {
	if H.name == "" {
		H.name = dock.Stem(ligand) + "_vs_" + dock.Stem(receptor)
	}
	if receptor == "" || ligand == "" || box == nil {
		return Error{ErrMissingInput, H.name, []string{"BuildInput"}, true}
	}
	if H.workdir != "" {
		if err := os.MkdirAll(H.workdir, 0755); err != nil {
			return Error{ErrCantInput + ": " + err.Error(), H.name, []string{"BuildInput"}, true}
		}
	}
	f, err := os.Create(H.ConfFile())
	if err != nil {
		return Error{ErrCantInput + ": " + err.Error(), H.name, []string{"BuildInput"}, true}
	}
	defer f.Close()
	fmt.Fprintf(f, "receptor = %s\n", receptor)
	fmt.Fprintf(f, "ligand = %s\n", ligand)
	fmt.Fprintf(f, "center_x = %.3f\n", box.Center[0])
	fmt.Fprintf(f, "center_y = %.3f\n", box.Center[1])
	fmt.Fprintf(f, "center_z = %.3f\n", box.Center[2])
	fmt.Fprintf(f, "size_x = %.3f\n", box.Size[0])
	fmt.Fprintf(f, "size_y = %.3f\n", box.Size[1])
	fmt.Fprintf(f, "size_z = %.3f\n", box.Size[2])
	fmt.Fprintf(f, "out = %s\n", H.PosesFile())
	fmt.Fprintf(f, "cpu = %d\n", H.nCPU)
	if H.exhaustiveness > 0 {
		fmt.Fprintf(f, "exhaustiveness = %d\n", H.exhaustiveness)
	}
	if H.seed != 0 {
		fmt.Fprintf(f, "seed = %d\n", H.seed)
	}
	return nil
}

// Run runs the docking previously set up with BuildInput, waiting for it
// or not depending on wait. Not waiting only works on unix-compatible
// systems, as it uses sh and nohup. Stdout and stderr are captured into
// OutFile; Vina prints the pose table there.
func (H *Handle) Run(wait bool) error {
	com := fmt.Sprintf(" --config %s > %s 2>&1", H.ConfFile(), H.OutFile())
	var err error
	if wait {
		command := exec.Command("sh", "-c", H.command+com)
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+H.command+com)
		err = command.Start()
	}
	if err != nil {
		return Error{ErrNotRunning + ": " + err.Error(), H.name, []string{"exec.Run/Start", "Run"}, true}
	}
	return nil
}

// NormalTermination reports whether the captured output contains the
// engine's pose table, meaning the search ran to completion instead of
// dying on a bad input. Useful for async runs, where Run cannot tell.
func (H *Handle) NormalTermination() bool {
	f, err := os.Open(H.OutFile())
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "-----+") {
			return true
		}
	}
	return false
}

// Affinities parses the binding affinities (kcal/mol, best first) from the
// captured engine output, at most nPoses of them. Table rows are the lines
// whose first field is the integer pose rank and whose second field parses
// as a float; everything else in the log is ignored.
func (H *Handle) Affinities() ([]float64, error) {
	f, err := os.Open(H.OutFile())
	if err != nil {
		return nil, Error{ErrNoOutput + ": " + err.Error(), H.name, []string{"Affinities"}, true}
	}
	defer f.Close()
	affinities := make([]float64, 0, H.nPoses)
	want := 1 //next expected rank, so stray numeric lines don't sneak in
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		rank, err := strconv.Atoi(fields[0])
		if err != nil || rank != want {
			continue
		}
		aff, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		affinities = append(affinities, aff)
		want++
		if len(affinities) >= H.nPoses {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), H.name, []string{"Affinities"}, true}
	}
	if len(affinities) == 0 {
		return nil, Error{ErrNoAffinities, H.name, []string{"Affinities"}, false}
	}
	return affinities, nil
}
