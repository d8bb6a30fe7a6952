// Package store provides SQLite-backed persistence for evaluation
// corpora and run results.
// Uses ncruces/go-sqlite3/driver which provides a database/sql interface.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/turknlp/turkpos/pkg/eval"
	"github.com/turknlp/turkpos/pkg/tag"
)

// SQLiteStore is the SQLite-backed data store.
// Thread-safe for concurrent evaluation workers.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema defines the tables for scenarios, their gold sentences, and
// scored evaluation runs.
const schema = `
-- Scenario groups
CREATE TABLE IF NOT EXISTS scenarios (
    name TEXT PRIMARY KEY,
    description TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

-- Gold sentences, positional within their scenario
-- gold_tags is a JSON array of tag labels
CREATE TABLE IF NOT EXISTS sentences (
    scenario TEXT NOT NULL,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    gold_tags TEXT NOT NULL,
    PRIMARY KEY (scenario, position)
);

CREATE INDEX IF NOT EXISTS idx_sentences_scenario ON sentences(scenario);

-- Evaluation runs
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    note TEXT,
    created_at INTEGER NOT NULL
);

-- Per-sentence scores of a run
CREATE TABLE IF NOT EXISTS results (
    run_id INTEGER NOT NULL,
    scenario TEXT NOT NULL,
    backend TEXT NOT NULL,
    position INTEGER NOT NULL,
    accuracy REAL NOT NULL,
    content_accuracy REAL NOT NULL,
    gold_len INTEGER NOT NULL,
    predicted TEXT NOT NULL,
    PRIMARY KEY (run_id, scenario, backend, position)
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`

// NewSQLiteStore opens an in-memory store.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:")
}

// NewSQLiteStoreWithDSN opens a store at the given DSN (a file path or
// ":memory:") and applies the schema.
func NewSQLiteStoreWithDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: applying schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveScenario upserts a scenario and replaces its sentences.
func (s *SQLiteStore) SaveScenario(scen eval.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	if _, err := tx.Exec(`
		INSERT INTO scenarios (name, description, created_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET description = excluded.description`,
		scen.Name, scen.Description, now); err != nil {
		return fmt.Errorf("store: saving scenario %q: %w", scen.Name, err)
	}
	if _, err := tx.Exec(`DELETE FROM sentences WHERE scenario = ?`, scen.Name); err != nil {
		return fmt.Errorf("store: clearing sentences of %q: %w", scen.Name, err)
	}

	for i, g := range scen.Sentences {
		gold, err := json.Marshal(g.Tags)
		if err != nil {
			return fmt.Errorf("store: encoding gold tags: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT INTO sentences (scenario, position, text, gold_tags) VALUES (?, ?, ?, ?)`,
			scen.Name, i, g.Text, string(gold)); err != nil {
			return fmt.Errorf("store: saving sentence %d of %q: %w", i, scen.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// LoadScenarios returns all stored scenarios with their sentences, in
// name order.
func (s *SQLiteStore) LoadScenarios() ([]eval.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT name, description FROM scenarios ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: loading scenarios: %w", err)
	}
	defer rows.Close()

	var out []eval.Scenario
	for rows.Next() {
		var scen eval.Scenario
		if err := rows.Scan(&scen.Name, &scen.Description); err != nil {
			return nil, fmt.Errorf("store: loading scenarios: %w", err)
		}
		out = append(out, scen)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: loading scenarios: %w", err)
	}

	for i := range out {
		sentences, err := s.loadSentences(out[i].Name)
		if err != nil {
			return nil, err
		}
		out[i].Sentences = sentences
	}
	return out, nil
}

func (s *SQLiteStore) loadSentences(scenario string) ([]eval.GoldSentence, error) {
	rows, err := s.db.Query(`
		SELECT text, gold_tags FROM sentences WHERE scenario = ? ORDER BY position`,
		scenario)
	if err != nil {
		return nil, fmt.Errorf("store: loading sentences of %q: %w", scenario, err)
	}
	defer rows.Close()

	var out []eval.GoldSentence
	for rows.Next() {
		var g eval.GoldSentence
		var gold string
		if err := rows.Scan(&g.Text, &gold); err != nil {
			return nil, fmt.Errorf("store: loading sentences of %q: %w", scenario, err)
		}
		if err := json.Unmarshal([]byte(gold), &g.Tags); err != nil {
			return nil, fmt.Errorf("store: decoding gold tags of %q: %w", scenario, err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: loading sentences of %q: %w", scenario, err)
	}
	return out, nil
}

// SaveRun persists the per-sentence results of an evaluation and
// returns the new run id.
func (s *SQLiteStore) SaveRun(note string, results []eval.SentenceResult) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (note, created_at) VALUES (?, ?)`,
		note, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("store: creating run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: creating run: %w", err)
	}

	for _, r := range results {
		predicted, err := json.Marshal(predictedLabels(r))
		if err != nil {
			return 0, fmt.Errorf("store: encoding predictions: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT INTO results
			(run_id, scenario, backend, position, accuracy, content_accuracy, gold_len, predicted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Scenario, r.Backend, r.Index,
			r.Accuracy, r.ContentAccuracy, r.GoldLen, string(predicted)); err != nil {
			return 0, fmt.Errorf("store: saving result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return runID, nil
}

// LoadRun returns all results of a run, ordered by scenario, backend
// and position.
func (s *SQLiteStore) LoadRun(runID int64) ([]RunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT scenario, backend, position, accuracy, content_accuracy, gold_len, predicted
		FROM results WHERE run_id = ?
		ORDER BY scenario, backend, position`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: loading run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []RunResult
	for rows.Next() {
		var r RunResult
		var predicted string
		if err := rows.Scan(&r.Scenario, &r.Backend, &r.Position,
			&r.Accuracy, &r.ContentAccuracy, &r.GoldLen, &predicted); err != nil {
			return nil, fmt.Errorf("store: loading run %d: %w", runID, err)
		}
		if err := json.Unmarshal([]byte(predicted), &r.Predicted); err != nil {
			return nil, fmt.Errorf("store: decoding predictions: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: loading run %d: %w", runID, err)
	}
	return out, nil
}

func predictedLabels(r eval.SentenceResult) []tag.Tag {
	out := make([]tag.Tag, len(r.Predicted))
	for i, tt := range r.Predicted {
		out[i] = tt.Tag
	}
	return out
}
