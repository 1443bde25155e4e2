/*
 * collect.go, part of AutodockScript.
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
	"io"
	"io/fs"
	"os"
	"path/filepath"

	dock "github.com/kattens/AutodockScript"
)

// Collect copies, from every directory in srcDirs, each file whose stem
// loosely matches one of targets into outDir. Docking scatters each
// pair's artifacts (poses, log, affinity CSV) across per-kind folders;
// this pulls everything belonging to a selection of pairs back together
// for hand-off. All matches are kept, with numeric suffixes on name
// collisions. It returns how many files were copied and which targets
// never matched anything.
func Collect(srcDirs []string, outDir string, targets []string) (copied int, unmatched []string, err error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, nil, err
	}
	norm := make([]string, 0, len(targets))
	for _, t := range targets {
		if s := dock.Stem(t); s != "" {
			norm = append(norm, s)
		}
	}
	matched := make(map[string]bool, len(norm))
	for _, dir := range srcDirs {
		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			stem := dock.Stem(path)
			hit := false
			//a composite <ligand>_vs_<receptor> file can satisfy
			//several targets, so all of them are checked
			for _, t := range norm {
				if stemsMatch(t, stem) {
					matched[t] = true
					hit = true
				}
			}
			if !hit {
				return nil
			}
			if err := safeCopy(path, outDir); err != nil {
				return err
			}
			copied++
			return nil
		})
		if walkErr != nil {
			return copied, nil, walkErr
		}
	}
	for _, t := range norm {
		if !matched[t] {
			unmatched = append(unmatched, t)
		}
	}
	return copied, unmatched, nil
}

// safeCopy copies src into dir without clobbering: on a name collision the
// copy gets a _1, _2... suffix before the extension.
func safeCopy(src, dir string) error {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	dst := filepath.Join(dir, base)
	for i := 1; ; i++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
