// Package modeldb reads and writes the transformer backend's model
// artifact: a SQLite database holding the sub-word vocabulary, the label
// set, per-piece label scores, and a vec0 table of per-label centroid
// embeddings used for nearest-neighbor fallback on out-of-vocabulary
// pieces.
package modeldb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/asg017/sqlite-vec-go-bindings/ncruces"
	_ "github.com/ncruces/go-sqlite3/driver"
)

// Dims is the embedding width of the centroid table.
const Dims = 64

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS labels (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS vocab (
	id    INTEGER PRIMARY KEY,
	piece TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS piece_labels (
	piece_id INTEGER NOT NULL REFERENCES vocab(id),
	label_id INTEGER NOT NULL REFERENCES labels(id),
	score    REAL NOT NULL,
	PRIMARY KEY (piece_id, label_id)
);
CREATE VIRTUAL TABLE IF NOT EXISTS label_centroids USING vec0(
	label_id INTEGER PRIMARY KEY,
	embedding FLOAT[64]
);
`

// Piece is one vocabulary entry with its label score distribution.
// Continuation pieces carry the "##" prefix.
type Piece struct {
	Text   string
	Scores map[string]float64
}

// Model is the writable artifact content.
type Model struct {
	Labels []string
	Pieces []Piece
}

// DB is a loaded read-only artifact. The vocabulary and label scores
// are resolved into memory at open time; only centroid KNN queries go
// back to SQLite. Safe for concurrent use.
type DB struct {
	db     *sql.DB
	labels map[int64]string
	pieces map[string]string // piece text -> argmax label
}

// Open loads an artifact. A missing or unreadable file is an error;
// there is no degraded mode at this layer.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("modeldb: artifact %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("modeldb: opening %s: %w", path, err)
	}

	d := &DB{db: db, labels: map[int64]string{}, pieces: map[string]string{}}
	if err := d.load(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) load() error {
	rows, err := d.db.Query(`SELECT id, name FROM labels`)
	if err != nil {
		return fmt.Errorf("modeldb: reading labels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("modeldb: reading labels: %w", err)
		}
		d.labels[id] = name
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("modeldb: reading labels: %w", err)
	}
	if len(d.labels) == 0 {
		return fmt.Errorf("modeldb: artifact has no labels")
	}

	// Argmax label per piece, resolved once.
	prows, err := d.db.Query(`
		SELECT v.piece, pl.label_id, pl.score
		FROM piece_labels pl JOIN vocab v ON v.id = pl.piece_id`)
	if err != nil {
		return fmt.Errorf("modeldb: reading piece labels: %w", err)
	}
	defer prows.Close()

	bestScore := map[string]float64{}
	for prows.Next() {
		var piece string
		var labelID int64
		var score float64
		if err := prows.Scan(&piece, &labelID, &score); err != nil {
			return fmt.Errorf("modeldb: reading piece labels: %w", err)
		}
		if cur, seen := bestScore[piece]; !seen || score > cur {
			bestScore[piece] = score
			d.pieces[piece] = d.labels[labelID]
		}
	}
	if err := prows.Err(); err != nil {
		return fmt.Errorf("modeldb: reading piece labels: %w", err)
	}
	if len(d.pieces) == 0 {
		return fmt.Errorf("modeldb: artifact has an empty vocabulary")
	}
	return nil
}

// Close releases the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// VocabSize returns the number of known pieces.
func (d *DB) VocabSize() int {
	return len(d.pieces)
}

// Labels returns the artifact's label names.
func (d *DB) Labels() []string {
	out := make([]string, 0, len(d.labels))
	for _, name := range d.labels {
		out = append(out, name)
	}
	return out
}

// PieceLabel returns the argmax label for a vocabulary piece.
func (d *DB) PieceLabel(piece string) (string, bool) {
	label, ok := d.pieces[piece]
	return label, ok
}

// NearestLabel resolves an out-of-vocabulary surface form to the label
// whose centroid is closest to the form's hashed embedding.
func (d *DB) NearestLabel(surface string) (string, error) {
	vec, err := json.Marshal(Embed(surface))
	if err != nil {
		return "", fmt.Errorf("modeldb: encoding query vector: %w", err)
	}

	var labelID int64
	err = d.db.QueryRow(`
		SELECT label_id FROM label_centroids
		WHERE embedding MATCH ? AND k = 1
		ORDER BY distance`,
		string(vec)).Scan(&labelID)
	if err != nil {
		return "", fmt.Errorf("modeldb: centroid query: %w", err)
	}

	label, ok := d.labels[labelID]
	if !ok {
		return "", fmt.Errorf("modeldb: centroid references unknown label %d", labelID)
	}
	return label, nil
}

// Create writes a complete artifact to path, replacing any existing
// file. Centroids are the mean embedding of each label's argmax pieces.
func Create(path string, m Model) error {
	if len(m.Labels) == 0 {
		return fmt.Errorf("modeldb: model has no labels")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("modeldb: replacing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return fmt.Errorf("modeldb: creating %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("modeldb: applying schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("modeldb: begin: %w", err)
	}
	defer tx.Rollback()

	labelIDs := make(map[string]int64, len(m.Labels))
	for i, name := range m.Labels {
		id := int64(i + 1)
		if _, err := tx.Exec(`INSERT INTO labels (id, name) VALUES (?, ?)`, id, name); err != nil {
			return fmt.Errorf("modeldb: inserting label %q: %w", name, err)
		}
		labelIDs[name] = id
	}

	sums := make(map[int64][]float64, len(m.Labels))
	counts := make(map[int64]int, len(m.Labels))

	for i, p := range m.Pieces {
		pieceID := int64(i + 1)
		if _, err := tx.Exec(`INSERT INTO vocab (id, piece) VALUES (?, ?)`, pieceID, p.Text); err != nil {
			return fmt.Errorf("modeldb: inserting piece %q: %w", p.Text, err)
		}

		var argmax int64
		bestScore := 0.0
		for label, score := range p.Scores {
			id, ok := labelIDs[label]
			if !ok {
				return fmt.Errorf("modeldb: piece %q scores unknown label %q", p.Text, label)
			}
			if _, err := tx.Exec(
				`INSERT INTO piece_labels (piece_id, label_id, score) VALUES (?, ?, ?)`,
				pieceID, id, score); err != nil {
				return fmt.Errorf("modeldb: inserting scores for %q: %w", p.Text, err)
			}
			if argmax == 0 || score > bestScore {
				argmax = id
				bestScore = score
			}
		}
		if argmax == 0 {
			continue
		}

		emb := Embed(p.Text)
		sum := sums[argmax]
		if sum == nil {
			sum = make([]float64, Dims)
			sums[argmax] = sum
		}
		for j, v := range emb {
			sum[j] += float64(v)
		}
		counts[argmax]++
	}

	for labelID, sum := range sums {
		centroid := make([]float32, Dims)
		n := float64(counts[labelID])
		for j, v := range sum {
			centroid[j] = float32(v / n)
		}
		vec, err := json.Marshal(centroid)
		if err != nil {
			return fmt.Errorf("modeldb: encoding centroid: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO label_centroids (label_id, embedding) VALUES (?, ?)`,
			labelID, string(vec)); err != nil {
			return fmt.Errorf("modeldb: inserting centroid for label %d: %w", labelID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("modeldb: commit: %w", err)
	}
	return nil
}
