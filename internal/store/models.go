package store

import "github.com/turknlp/turkpos/pkg/tag"

// RunResult is one stored per-sentence score of an evaluation run.
type RunResult struct {
	Scenario        string    `json:"scenario"`
	Backend         string    `json:"backend"`
	Position        int       `json:"position"`
	Accuracy        float64   `json:"accuracy"`
	ContentAccuracy float64   `json:"contentAccuracy"`
	GoldLen         int       `json:"goldLen"`
	Predicted       []tag.Tag `json:"predicted"`
}
