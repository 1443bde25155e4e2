/*
 * errors.go, part of AutodockScript.
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

package vina

import "fmt"

const (
	ErrMissingInput = "Missing receptor, ligand or box"
	ErrCantInput    = "Can't write engine input"
	ErrNotRunning   = "Can't run docking engine"
	ErrNoOutput     = "Can't read engine output"
	ErrNoAffinities = "No affinities found in engine output"
)

// Error is the error type for docking-engine invocations. It fulfills
// dock.DecoratedError, so per-pair failures carry the job name with them
// through a batch.
type Error struct {
	message  string
	jobname  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("vina job %s error: %s", err.jobname, err.message)
}

// Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// JobName returns the name of the docking job associated to the error.
func (err Error) JobName() string { return err.jobname }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
