package tagger

import (
	"errors"
	"reflect"
	"testing"

	"github.com/turknlp/turkpos/pkg/config"
)

func TestParseModelType(t *testing.T) {
	cases := map[string]ModelType{
		"legacy":     Legacy,
		"fine_tuned": FineTuned,
		"berturk":    BERTurk,
	}
	for name, want := range cases {
		got, err := ParseModelType(name)
		if err != nil {
			t.Errorf("ParseModelType(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseModelType(%q) = %v, want %v", name, got, want)
		}
		if got.String() != name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), name)
		}
	}
}

func TestUnknownSelector(t *testing.T) {
	if _, err := ParseModelType("bert-large"); !errors.Is(err, ErrUnknownModelType) {
		t.Errorf("err = %v, want ErrUnknownModelType", err)
	}
	if _, err := New(ModelType(42), nil); !errors.Is(err, ErrUnknownModelType) {
		t.Errorf("err = %v, want ErrUnknownModelType", err)
	}
	if _, err := NewFromName("", nil); !errors.Is(err, ErrUnknownModelType) {
		t.Errorf("err = %v, want ErrUnknownModelType", err)
	}
}

func TestFacadeConstructsBackends(t *testing.T) {
	legacy, err := New(Legacy, nil)
	if err != nil {
		t.Fatalf("legacy: %v", err)
	}
	if _, ok := legacy.(*RuleTagger); !ok {
		t.Errorf("legacy backend is %T", legacy)
	}

	morph, err := New(FineTuned, nil)
	if err != nil {
		t.Fatalf("fine_tuned: %v", err)
	}
	if _, ok := morph.(*MorphTagger); !ok {
		t.Errorf("fine_tuned backend is %T", morph)
	}

	// Default config points at an artifact that does not exist here.
	if _, err := New(BERTurk, nil); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("berturk: err = %v, want ErrModelUnavailable", err)
	}
}

func TestFacadeWithArtifact(t *testing.T) {
	cfg := config.Default()
	cfg.Models["berturk"] = config.ModelConfig{Artifact: writeTestArtifact(t)}

	tt, err := New(BERTurk, &cfg)
	if err != nil {
		t.Fatalf("berturk: %v", err)
	}
	if info := tt.ModelInfo(); info.Type != BERTurk {
		t.Errorf("type = %v", info.Type)
	}
}

// Backends disagree on tags but always agree on token count.
func TestBackendsAgreeOnLength(t *testing.T) {
	rt := NewRule()
	mt := newSimMorph()

	sentences := []string{
		"Bu kitabı okumak çok zevkli .",
		"Öğretmen öğrencilere ödev verdi .",
		"",
		"!!!",
	}
	for _, s := range sentences {
		if len(rt.Tag(s)) != len(mt.Tag(s)) {
			t.Errorf("token count mismatch on %q", s)
		}
	}
}

func TestBatchOrderPreserved(t *testing.T) {
	mt := newSimMorph()
	sentences := []string{"Ali okula gitti .", "Bu kitap güzel ."}
	batch := mt.TagBatch(sentences)
	for i, s := range sentences {
		if !reflect.DeepEqual(batch[i], mt.Tag(s)) {
			t.Errorf("batch[%d] does not match single-sentence tagging", i)
		}
	}
}
