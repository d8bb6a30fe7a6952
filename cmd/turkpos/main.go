// Command turkpos tags Turkish sentences and compares tagger backends.
//
// Tag sentences with one backend:
//
//	turkpos -model fine_tuned "Bu kitap güzel ."
//	echo "Ali okula gitti ." | turkpos
//
// Compare every constructible backend over the bundled corpus:
//
//	turkpos -compare -db results.db
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/turknlp/turkpos/internal/store"
	"github.com/turknlp/turkpos/pkg/config"
	"github.com/turknlp/turkpos/pkg/eval"
	"github.com/turknlp/turkpos/pkg/tagger"
)

func main() {
	var (
		modelName  = flag.String("model", "legacy", "backend: legacy, fine_tuned or berturk")
		configPath = flag.String("config", "", "YAML configuration file")
		compare    = flag.Bool("compare", false, "evaluate all backends over the bundled corpus")
		dbPath     = flag.String("db", "", "SQLite file to persist comparison results")
		info       = flag.Bool("info", false, "print backend metadata and exit")
		workers    = flag.Int("workers", 4, "parallel evaluation workers")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	if *compare {
		if err := runComparison(cfg, *workers, *dbPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	t, err := tagger.NewFromName(*modelName, &cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *info {
		printInfo(t.ModelInfo())
		return
	}

	sentences := flag.Args()
	if len(sentences) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			sentences = append(sentences, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
	}

	for _, tagged := range t.TagBatch(sentences) {
		for i, tt := range tagged {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%s/%s", tt.Word, tt.Tag)
		}
		fmt.Println()
	}
}

func printInfo(mi tagger.ModelInfo) {
	fmt.Printf("model:     %s\n", mi.Type)
	fmt.Printf("tag count: %d\n", mi.TagCount)
	fmt.Printf("init cost: %s\n", mi.InitCost)
	if mi.Metrics != nil {
		fmt.Printf("accuracy:  %.4f  f1: %.4f  precision: %.4f  recall: %.4f\n",
			mi.Metrics.Accuracy, mi.Metrics.F1, mi.Metrics.Precision, mi.Metrics.Recall)
	}
}

// runComparison evaluates every backend that can be constructed with
// the current configuration. An unavailable transformer artifact skips
// that backend instead of aborting the comparison.
func runComparison(cfg config.Config, workers int, dbPath string) error {
	var entries []eval.Entry
	for _, mt := range []tagger.ModelType{tagger.Legacy, tagger.FineTuned, tagger.BERTurk} {
		t, err := tagger.New(mt, &cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", mt, err)
			continue
		}
		entries = append(entries, eval.Entry{Name: mt.String(), Tagger: t})
	}
	if len(entries) == 0 {
		return fmt.Errorf("no backend could be constructed")
	}

	matrix := eval.Evaluate(entries, eval.BuiltinScenarios(), workers)
	printMatrix(matrix)

	if dbPath != "" {
		s, err := store.NewSQLiteStoreWithDSN(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, scen := range eval.BuiltinScenarios() {
			if err := s.SaveScenario(scen); err != nil {
				return err
			}
		}
		runID, err := s.SaveRun("cli comparison", matrix.Results)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved run %d to %s\n", runID, dbPath)
	}
	return nil
}

func printMatrix(m eval.Matrix) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprint(w, "scenario")
	for _, b := range m.Backends {
		fmt.Fprintf(w, "\t%s", b)
	}
	fmt.Fprintln(w)

	scenarios := append([]string(nil), m.Scenarios...)
	sort.Strings(scenarios)
	for _, scen := range scenarios {
		fmt.Fprint(w, scen)
		for _, b := range m.Backends {
			cell := m.Cells[scen][b]
			fmt.Fprintf(w, "\t%.3f (#%d)", cell.Accuracy, m.Ranks[scen][b])
		}
		fmt.Fprintln(w)
	}
}
