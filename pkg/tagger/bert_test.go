package tagger

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/turknlp/turkpos/internal/modeldb"
	"github.com/turknlp/turkpos/pkg/config"
	"github.com/turknlp/turkpos/pkg/tag"
)

func writeTestArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "berturk.db")
	model := modeldb.Model{
		Labels: []string{"NOUN", "VERB", "ADJ", "PRON", "PUNCT"},
		Pieces: []modeldb.Piece{
			{Text: "kitap", Scores: map[string]float64{"NOUN": 0.97}},
			{Text: "bu", Scores: map[string]float64{"PRON": 0.88, "NOUN": 0.1}},
			{Text: "güzel", Scores: map[string]float64{"ADJ": 0.93}},
			{Text: "git", Scores: map[string]float64{"VERB": 0.91}},
			{Text: "oku", Scores: map[string]float64{"VERB": 0.9}},
			{Text: "##ti", Scores: map[string]float64{"VERB": 0.7}},
			{Text: "##mak", Scores: map[string]float64{"VERB": 0.66}},
			{Text: "##lar", Scores: map[string]float64{"NOUN": 0.55}},
		},
	}
	if err := modeldb.Create(path, model); err != nil {
		t.Fatalf("writing artifact: %v", err)
	}
	return path
}

func TestTransformerTagsFromArtifact(t *testing.T) {
	tt, err := NewTransformer(config.ModelConfig{Artifact: writeTestArtifact(t)})
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	defer tt.Close()

	got := tt.Tag("Bu kitap güzel .")
	want := TaggedSentence{
		{Word: "Bu", Tag: tag.Pron},
		{Word: "kitap", Tag: tag.Noun},
		{Word: "güzel", Tag: tag.Adj},
		{Word: ".", Tag: tag.Punc},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// A word takes the label of its first sub-word piece: "gitti" segments
// as git + ##ti and tags from "git".
func TestTransformerFirstPieceAlignment(t *testing.T) {
	tt, err := NewTransformer(config.ModelConfig{Artifact: writeTestArtifact(t)})
	if err != nil {
		t.Fatal(err)
	}
	defer tt.Close()

	pieces := tt.Segment("gitti")
	if !reflect.DeepEqual(pieces, []string{"git", "##ti"}) {
		t.Errorf("Segment(gitti) = %v", pieces)
	}
	if got := tt.classify("gitti"); got != tag.Verb {
		t.Errorf("classify(gitti) = %v, want Verb", got)
	}

	pieces = tt.Segment("kitaplar")
	if !reflect.DeepEqual(pieces, []string{"kitap", "##lar"}) {
		t.Errorf("Segment(kitaplar) = %v", pieces)
	}
	if got := tt.classify("kitaplar"); got != tag.Noun {
		t.Errorf("classify(kitaplar) = %v, want Noun", got)
	}
}

// An out-of-vocabulary head falls back to the nearest label centroid,
// never to an error.
func TestTransformerOOVFallback(t *testing.T) {
	tt, err := NewTransformer(config.ModelConfig{Artifact: writeTestArtifact(t)})
	if err != nil {
		t.Fatal(err)
	}
	defer tt.Close()

	got := tt.classify("zürafa")
	if !tag.Member(got, tag.TransformerSet) {
		t.Errorf("classify(zürafa) = %v, outside the backend vocabulary", got)
	}
}

func TestTransformerUnavailable(t *testing.T) {
	_, err := NewTransformer(config.ModelConfig{})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("no artifact: err = %v, want ErrModelUnavailable", err)
	}

	_, err = NewTransformer(config.ModelConfig{
		Artifact: filepath.Join(t.TempDir(), "absent.db"),
	})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("missing file: err = %v, want ErrModelUnavailable", err)
	}
}

func TestTransformerModelInfo(t *testing.T) {
	tt, err := NewTransformer(config.ModelConfig{Artifact: writeTestArtifact(t)})
	if err != nil {
		t.Fatal(err)
	}
	defer tt.Close()

	info := tt.ModelInfo()
	if info.Type != BERTurk {
		t.Errorf("type = %v", info.Type)
	}
	if info.TagCount != 9 {
		t.Errorf("tag count = %d, want 9", info.TagCount)
	}
}
