/*
 * fetch.go, part of AutodockScript.
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
Package fetch downloads the structures a docking batch starts from:
receptor PDB files from the RCSB archive and 3D ligand SDF files from
PubChem. Existing files are never re-downloaded, so interrupted batches can
simply be restarted.
*/
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

const (
	rcsbURL    = "https://files.rcsb.org/download/%s.pdb"
	rcsbGzURL  = "https://files.rcsb.org/download/%s.pdb.gz"
	pubchemURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug/compound/cid/%s/record/SDF?record_type=3d"
)

// Client is the HTTP client used for all downloads. Exposed so callers can
// shorten the timeout or add a transport; the default gives slow archive
// mirrors a fair chance.
var Client = &http.Client{Timeout: 60 * time.Second}

// RCSB downloads the PDB entry with the given 4-character id into dir and
// returns the path of the written file. With gz set the gzipped archive
// file is fetched and decompressed on the fly, which is considerably
// smaller for large structures. If the target file already exists it is
// returned as is.
func RCSB(id, dir string, gz bool) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	path := filepath.Join(dir, id+".pdb")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	url := fmt.Sprintf(rcsbURL, id)
	if gz {
		url = fmt.Sprintf(rcsbGzURL, id)
	}
	resp, err := Client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch: RCSB %s: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch: RCSB %s: HTTP %d", id, resp.StatusCode)
	}
	var body io.Reader = resp.Body
	if gz {
		gzr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("fetch: RCSB %s: %w", id, err)
		}
		defer gzr.Close()
		body = gzr
	}
	if err := writeFile(path, body); err != nil {
		return "", fmt.Errorf("fetch: RCSB %s: %w", id, err)
	}
	return path, nil
}

// PubChemSDF downloads the 3D conformer SDF for a PubChem compound id into
// dir and returns the path of the written file. Not every compound has a
// precomputed 3D record; those requests come back as an HTTP error and the
// caller decides whether to generate coordinates locally instead (see the
// babel package's gen3d option). Existing files are returned as is.
func PubChemSDF(cid, dir string) (string, error) {
	cid = strings.TrimSpace(cid)
	path := filepath.Join(dir, cid+".sdf")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	resp, err := Client.Get(fmt.Sprintf(pubchemURL, cid))
	if err != nil {
		return "", fmt.Errorf("fetch: PubChem CID %s: %w", cid, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch: PubChem CID %s: HTTP %d (no 3D record?)", cid, resp.StatusCode)
	}
	if err := writeFile(path, resp.Body); err != nil {
		return "", fmt.Errorf("fetch: PubChem CID %s: %w", cid, err)
	}
	return path, nil
}

// writeFile streams body into path through a temporary file, so a download
// cut short doesn't leave a half-written structure that a later run would
// skip as already present.
func writeFile(path string, body io.Reader) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
