/*

Dockrun docks batches of receptor/ligand pairs with AutoDock Vina.

Pairs come from one of three sources: a pairing column in a dataset CSV
(one prefix naming both files), explicit stem-list files, or a seeded
random sample of the available structures. For each pair the docking box
is resolved through the standard fallback (registry, bound-ligand group,
whole-receptor, default), the engine is run, and the ranked affinities are
written as a per-pair CSV. A failing pair is logged and skipped; a batch
never dies because of one bad structure.

LICENSE

Copyright 2026 The AutodockScript developers

This program, including its documentation,
is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License version 2.0 as
published by the Free Software Foundation.

This program and its documentation is distributed in the hope that
it will be useful, but WITHOUT ANY WARRANTY; without even the
implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR
PURPOSE.  See the GNU General Public License for more details.

You should have received a copy of the GNU General
Public License along with this program.  If not, see
<http://www.gnu.org/licenses/>.

*/

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	dock "github.com/kattens/AutodockScript"
	"github.com/kattens/AutodockScript/report"
	"github.com/kattens/AutodockScript/vina"
	"github.com/rmera/scu"
)

type config struct {
	vinaExe        string
	resultsDir     string
	boxTarget      string
	cpu            int
	exhaustiveness int
	opts           *dock.BoxOptions
	reg            dock.Registry
}

type pair struct {
	receptor string //path to the receptor PDBQT
	ligand   string //path to the ligand PDBQT
}

func (p pair) name() string {
	return dock.Stem(p.ligand) + "_vs_" + dock.Stem(p.receptor)
}

func main() {
	ligDir := flag.String("ligands", "ligand_pdbqt", "directory with ligand PDBQT files")
	recDir := flag.String("receptors", "receptor_pdbqt", "directory with receptor PDBQT files")
	boxesPath := flag.String("boxes", "Center_boxes.json", "precomputed box registry (absent is fine)")
	vinaExe := flag.String("vina", "vina", "AutoDock Vina executable")
	resultsDir := flag.String("results", "results", "root directory for outputs")
	pairsCSV := flag.String("pairs", "", "dataset CSV with a pairing column; overrides random pairing")
	pairCol := flag.String("paircol", "dock_helper", "pairing column in -pairs")
	ligSuffix := flag.String("ligsuffix", "_ligand", "suffix turning a pair prefix into the ligand stem")
	recSuffix := flag.String("recsuffix", "", "suffix turning a pair prefix into the receptor stem")
	recStems := flag.String("recstems", "", "file with explicit receptor stems, one per line")
	ligStems := flag.String("ligstems", "", "file with explicit ligand stems, one per line")
	nRec := flag.Int("nrec", 20, "random receptors to pick when no -pairs/-recstems given")
	nLig := flag.Int("nlig", 2, "random ligands per receptor")
	seed := flag.Int64("seed", 42, "seed for the random pair selection; 0 for non-deterministic")
	cpu := flag.Int("cpu", 1, "CPUs per engine invocation")
	exhaustiveness := flag.Int("exhaustiveness", 0, "engine exhaustiveness; 0 for the engine default")
	workers := flag.Int("workers", 1, "pairs docked concurrently")
	boxTarget := flag.String("ligname", "", "residue name of a known bound ligand to center automatic boxes on")
	flag.Parse()

	reg, err := dock.ReadRegistry(*boxesPath)
	scu.QErr(err)
	if len(reg) > 0 {
		log.Printf("[info] loaded %d precomputed boxes from %s", len(reg), *boxesPath)
	} else {
		log.Printf("[info] no precomputed boxes, automatic boxes only")
	}

	conf := &config{
		vinaExe:        *vinaExe,
		resultsDir:     *resultsDir,
		boxTarget:      *boxTarget,
		cpu:            *cpu,
		exhaustiveness: *exhaustiveness,
		opts:           dock.DefaultBoxOptions(),
		reg:            reg,
	}

	var pairs []pair
	switch {
	case *pairsCSV != "":
		pairs = pairsFromCSV(*pairsCSV, *pairCol, *ligDir, *recDir, *ligSuffix, *recSuffix)
	case *recStems != "" || *ligStems != "":
		pairs = pairsFromStems(*recStems, *ligStems, *ligDir, *recDir)
	default:
		pairs = randomPairs(*ligDir, *recDir, *nRec, *nLig, *seed)
	}
	if len(pairs) == 0 {
		log.Fatal("[fatal] no receptor/ligand pairs to dock")
	}
	log.Printf("[plan] %d pair(s) to dock", len(pairs))

	var wg sync.WaitGroup
	var mu sync.Mutex
	jobs := make(chan pair)
	processed, errors := 0, 0
	var failed []string
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				err := dockPair(p, conf)
				mu.Lock()
				if err != nil {
					log.Printf("[error] %s: %v", p.name(), err)
					failed = append(failed, p.name())
					errors++
				} else {
					processed++
				}
				mu.Unlock()
			}
		}()
	}
	for _, p := range pairs {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	if len(failed) > 0 {
		writeFailed(filepath.Join(*resultsDir, "failed_dockings.txt"), failed)
	}
	fmt.Printf("\nDone. Processed: %d | Errors: %d\n", processed, errors)
}

// dockPair docks one pair: box resolution, engine run, affinity CSV.
// Results land under <results>/<receptor stem>/.
func dockPair(p pair, conf *config) error {
	recStem := dock.Stem(p.receptor)
	workdir := filepath.Join(conf.resultsDir, recStem)
	name := p.name()
	if _, err := os.Stat(filepath.Join(workdir, name+".pdbqt")); err == nil {
		log.Printf("[skip] %s: poses already present", name)
		return nil
	}
	//A parse failure still yields a usable (possibly empty) molecule;
	//ReceptorBox degrades to the default box rather than giving up.
	rec, err := dock.PDBQTRead(p.receptor)
	if err != nil {
		log.Printf("[warn] %s: %v", name, err)
	}
	box := dock.ReceptorBox(recStem, rec, conf.reg, conf.boxTarget, dock.DefaultExcluded, conf.opts)

	H := vina.NewHandle()
	H.SetName(name)
	H.SetCommand(conf.vinaExe)
	H.SetWorkDir(workdir)
	H.SetnCPU(conf.cpu)
	if conf.exhaustiveness > 0 {
		H.SetExhaustiveness(conf.exhaustiveness)
	}
	if err := H.BuildInput(p.receptor, p.ligand, box); err != nil {
		return err
	}
	if err := H.Run(true); err != nil {
		return err
	}
	if !H.NormalTermination() {
		return fmt.Errorf("%s: engine did not produce a pose table, see %s", name, H.OutFile())
	}
	affinities, err := H.Affinities()
	if err != nil {
		return err
	}
	if err := report.WriteAffinities(filepath.Join(workdir, name+".csv"), affinities); err != nil {
		return err
	}
	log.Printf("[ok] %s: best affinity %.1f kcal/mol (%d poses)", name, affinities[0], len(affinities))
	return nil
}

// pairsFromCSV pairs files named after a shared prefix listed in a dataset
// column: <prefix><ligsuffix>.pdbqt docks against <prefix><recsuffix>.pdbqt.
// Prefixes with either file missing are logged and skipped.
func pairsFromCSV(path, column, ligDir, recDir, ligSuffix, recSuffix string) []pair {
	f, err := os.Open(path)
	scu.QErr(err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	scu.QErr(err)
	if len(rows) == 0 {
		return nil
	}
	col := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == column {
			col = i
			break
		}
	}
	if col < 0 {
		log.Fatalf("[fatal] %s: no column %q", path, column)
	}
	var pairs []pair
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		prefix := strings.TrimSpace(row[col])
		if prefix == "" || seen[prefix] {
			continue
		}
		seen[prefix] = true
		p := pair{
			ligand:   filepath.Join(ligDir, prefix+ligSuffix+".pdbqt"),
			receptor: filepath.Join(recDir, prefix+recSuffix+".pdbqt"),
		}
		if !exists(p.ligand) || !exists(p.receptor) {
			log.Printf("[warn] missing file(s) for %s", prefix)
			continue
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// pairsFromStems docks every listed ligand against every listed receptor.
// An empty list file name means "all available files of that kind".
func pairsFromStems(recStems, ligStems, ligDir, recDir string) []pair {
	receptors := resolveStems(recDir, readStems(recStems))
	ligands := resolveStems(ligDir, readStems(ligStems))
	var pairs []pair
	for _, r := range receptors {
		for _, l := range ligands {
			pairs = append(pairs, pair{receptor: r, ligand: l})
		}
	}
	return pairs
}

// readStems reads one stem per line; empty lines are skipped. An empty
// file name yields nil, which resolveStems treats as "everything".
func readStems(path string) []string {
	if path == "" {
		return nil
	}
	f, err := scu.NewMustReadFile(path)
	scu.QErr(err)
	var stems []string
	for line := f.Next(); line != "EOF"; line = f.Next() {
		if s := strings.TrimSpace(line); s != "" {
			stems = append(stems, s)
		}
	}
	return stems
}

// resolveStems maps stems to existing .pdbqt paths in dir, aborting on
// missing ones: an explicit selection with a typo should not silently
// shrink. With no stems it returns every .pdbqt in dir, sorted.
func resolveStems(dir string, stems []string) []string {
	all, err := filepath.Glob(filepath.Join(dir, "*.pdbqt"))
	scu.QErr(err)
	sort.Strings(all)
	if stems == nil {
		return all
	}
	available := make(map[string]string, len(all))
	for _, f := range all {
		available[dock.Stem(f)] = f
	}
	var paths []string
	var missing []string
	for _, s := range stems {
		if p, ok := available[s]; ok {
			paths = append(paths, p)
		} else {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		log.Fatalf("[fatal] stems not found as .pdbqt in %s: %s", dir, strings.Join(missing, ", "))
	}
	return paths
}

// randomPairs picks up to nRec random receptors and nLig random ligands
// for each, seeded for reproducibility unless seed is zero.
func randomPairs(ligDir, recDir string, nRec, nLig int, seed int64) []pair {
	ligands := resolveStems(ligDir, nil)
	receptors := resolveStems(recDir, nil)
	log.Printf("[inventory] ligands: %d | receptors: %d", len(ligands), len(receptors))
	if len(ligands) == 0 || len(receptors) == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	if seed == 0 {
		rng = rand.New(rand.NewSource(int64(os.Getpid())))
	}
	var pairs []pair
	for _, r := range pickRandom(rng, receptors, nRec) {
		for _, l := range pickRandom(rng, ligands, nLig) {
			pairs = append(pairs, pair{receptor: r, ligand: l})
		}
	}
	return pairs
}

func pickRandom(rng *rand.Rand, paths []string, k int) []string {
	if k <= 0 {
		return nil
	}
	if len(paths) <= k {
		return paths
	}
	picked := make([]string, len(paths))
	copy(picked, paths)
	rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:k]
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeFailed(path string, failed []string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("[warn] can't write failure log: %v", err)
		return
	}
	defer f.Close()
	fmt.Fprintln(f, "Failed dockings:")
	for _, name := range failed {
		fmt.Fprintln(f, name)
	}
	log.Printf("[info] logged %d failure(s) to %s", len(failed), path)
}
