// Package tagger implements the multi-strategy Turkish part-of-speech
// tagging engine: a rule-based backend ("legacy"), a morphological
// pattern backend with trained and simulation modes ("fine_tuned"), and
// a transformer backend over a pretrained artifact ("berturk"), unified
// behind one Tagger contract.
//
// Backends are immutable after construction; Tag and TagBatch are safe
// for concurrent use. Tagging never fails on well-formed string input —
// empty, whitespace-only, and punctuation-only sentences are valid and
// produce a possibly-empty tagged sequence.
package tagger

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/turknlp/turkpos/pkg/config"
	"github.com/turknlp/turkpos/pkg/tag"
)

// Construction-time error kinds. Tagging itself defines no errors.
var (
	// ErrUnknownModelType reports a facade selector outside the known
	// backend enumeration.
	ErrUnknownModelType = errors.New("unknown model type")

	// ErrModelUnavailable reports that the transformer backend could not
	// load its pretrained artifact. There is no simulation fallback for
	// this backend; retrying without remediating the artifact is
	// pointless and is not attempted.
	ErrModelUnavailable = errors.New("model unavailable")
)

// Logger receives the package's diagnostics. The only warning-level
// signal in the core is the morphological backend falling back to
// simulation mode.
var Logger = log.New(os.Stderr, "tagger: ", log.LstdFlags)

// TaggedToken is one surface token with its assigned tag.
type TaggedToken struct {
	Word string  `json:"word"`
	Tag  tag.Tag `json:"tag"`
}

// TaggedSentence is the ordered (token, tag) sequence for one sentence.
// Its length always equals the tokenizer's output for that sentence.
type TaggedSentence []TaggedToken

// ModelInfo describes a backend. Populated once at construction and
// never mutated.
type ModelInfo struct {
	Type     ModelType       `json:"model_type"`
	TagCount int             `json:"tag_count"`
	InitCost time.Duration   `json:"init_cost"`
	Metrics  *config.Metrics `json:"metrics,omitempty"` // nil for backends reporting no held-out metrics
}

// Tagger is the single contract all backends satisfy.
type Tagger interface {
	// Tag tokenizes and tags one sentence. Every token receives exactly
	// one tag; the call cannot fail.
	Tag(sentence string) TaggedSentence

	// TagBatch tags sentences independently, preserving input order.
	// Batching never alters per-sentence results.
	TagBatch(sentences []string) []TaggedSentence

	// ModelInfo returns the backend's static metadata.
	ModelInfo() ModelInfo
}

// ModelType selects a backend.
type ModelType int

const (
	Legacy ModelType = iota
	FineTuned
	BERTurk
)

var modelTypeNames = map[ModelType]string{
	Legacy:    "legacy",
	FineTuned: "fine_tuned",
	BERTurk:   "berturk",
}

func (mt ModelType) String() string {
	if name, ok := modelTypeNames[mt]; ok {
		return name
	}
	return fmt.Sprintf("ModelType(%d)", int(mt))
}

// ParseModelType resolves a selector string to its ModelType.
func ParseModelType(s string) (ModelType, error) {
	for mt, name := range modelTypeNames {
		if name == s {
			return mt, nil
		}
	}
	return 0, fmt.Errorf("tagger: %w: %q", ErrUnknownModelType, s)
}

// New constructs the backend for mt. A nil cfg uses config.Default().
// Construction errors surface immediately; no partially-initialized
// backend is ever returned.
func New(mt ModelType, cfg *config.Config) (Tagger, error) {
	if cfg == nil {
		c := config.Default()
		cfg = &c
	}

	switch mt {
	case Legacy:
		return NewRule(), nil
	case FineTuned:
		return NewMorph(cfg.Models[FineTuned.String()]), nil
	case BERTurk:
		return NewTransformer(cfg.Models[BERTurk.String()])
	default:
		return nil, fmt.Errorf("tagger: %w: %d", ErrUnknownModelType, int(mt))
	}
}

// NewFromName is New with a string selector ("legacy", "fine_tuned",
// "berturk").
func NewFromName(name string, cfg *config.Config) (Tagger, error) {
	mt, err := ParseModelType(name)
	if err != nil {
		return nil, err
	}
	return New(mt, cfg)
}

// tagEach implements the shared batch contract: element-wise Tag over
// the input, order preserved, no cross-sentence state.
func tagEach(t Tagger, sentences []string) []TaggedSentence {
	out := make([]TaggedSentence, len(sentences))
	for i, s := range sentences {
		out[i] = t.Tag(s)
	}
	return out
}
