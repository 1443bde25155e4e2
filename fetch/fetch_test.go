/*
 * fetch_test.go, part of AutodockScript.
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

package fetch

import (
	"os"
	"path/filepath"
	"testing"
)

// The live tests hit the actual archives, so they only run when
// FETCH_LIVE_TESTS is set in the environment.
func liveOnly(Te *testing.T) {
	if os.Getenv("FETCH_LIVE_TESTS") == "" {
		Te.Skip("set FETCH_LIVE_TESTS to run tests against the live archives")
	}
}

func TestRCSBLive(Te *testing.T) {
	liveOnly(Te)
	dir := Te.TempDir()
	path, err := RCSB("1crn", dir, false) //crambin, small and stable
	if err != nil {
		Te.Fatal(err)
	}
	if path != filepath.Join(dir, "1CRN.pdb") {
		Te.Errorf("wrong path: %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty download")
	}
	//a second call must not re-download
	again, err := RCSB("1CRN", dir, false)
	if err != nil || again != path {
		Te.Errorf("existing file not reused: %s, %v", again, err)
	}
}

func TestRCSBGzLive(Te *testing.T) {
	liveOnly(Te)
	dir := Te.TempDir()
	path, err := RCSB("1crn", dir, true)
	if err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(data) < 6 || string(data[:6]) != "HEADER" {
		Te.Error("decompressed file doesn't look like a PDB entry")
	}
}

func TestPubChemSDFLive(Te *testing.T) {
	liveOnly(Te)
	dir := Te.TempDir()
	path, err := PubChemSDF("2244", dir) //aspirin
	if err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty download")
	}
}

func TestNoPartialFiles(Te *testing.T) {
	liveOnly(Te)
	dir := Te.TempDir()
	if _, err := RCSB("0xxx", dir, false); err == nil { //not a real entry
		Te.Fatal("no error for a nonexistent entry")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 0 {
		Te.Errorf("failed download left files behind: %v", entries)
	}
}
