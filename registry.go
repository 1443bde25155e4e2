/*
 * registry.go, part of AutodockScript.
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
	"encoding/json"
	"os"
	"sort"
)

// Registry maps receptor identifiers to precomputed docking boxes. It is
// loaded once before a batch and read-only afterwards; ReceptorBox consults
// it before any live estimation, so a registry doubles as a mechanism for
// curated, hand-placed boxes. The JSON file written by one run can be the
// registry of a later one.
type Registry map[string]*Box

// ReadRegistry loads a registry from a JSON file. A missing file is not an
// error: docking without precomputed boxes is a normal, if less precise,
// mode of operation, so an empty registry is returned instead.
func ReadRegistry(path string) (Registry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Registry{}, nil
	}
	if err != nil {
		return nil, Error{ErrCantOpen, path, []string{"ReadRegistry"}, true}
	}
	defer f.Close()
	reg := Registry{}
	if err := json.NewDecoder(f).Decode(&reg); err != nil {
		return nil, Error{"Malformed registry: " + err.Error(), path, []string{"ReadRegistry"}, true}
	}
	return reg, nil
}

// Write serializes the registry to a JSON file, indented, with one entry
// per receptor identifier.
func (R Registry) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(R)
}

// Names returns the receptor identifiers in the registry, sorted.
func (R Registry) Names() []string {
	names := make([]string, 0, len(R))
	for k := range R {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
