package tagger

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/turknlp/turkpos/pkg/config"
	"github.com/turknlp/turkpos/pkg/lexicon"
	"github.com/turknlp/turkpos/pkg/tag"
	"github.com/turknlp/turkpos/pkg/tokenize"
)

// MorphTagger is the fine-tuned morphological backend. It emits the full
// 18-tag vocabulary, refining noun tags by grammatical case. With a
// trained artifact on disk it consults the artifact's unigram lexicon
// and suffix table first; without one it degrades to simulation mode,
// which runs the same built-in analysis and still reports the configured
// held-out metrics. The degradation is logged once, never an error.
type MorphTagger struct {
	lex     *lexicon.Lexicon
	info    ModelInfo
	trained *morphModel // nil in simulation mode
}

// morphModel is the trained artifact: a unigram surface lexicon plus an
// ordered suffix table, both resolved before the built-in analysis.
type morphModel struct {
	Lexicon  map[string]string `yaml:"lexicon"`
	Suffixes []struct {
		Suffix string `yaml:"suffix"`
		Tag    string `yaml:"tag"`
	} `yaml:"suffixes"`

	words    map[string]tag.Tag
	suffixes []caseRule
}

// NewMorph constructs the morphological backend. Construction cannot
// fail: a missing or unreadable artifact selects simulation mode.
func NewMorph(cfg config.ModelConfig) *MorphTagger {
	start := time.Now()
	mt := &MorphTagger{lex: lexicon.Default()}

	if cfg.Artifact != "" {
		trained, err := loadMorphModel(cfg.Artifact)
		if err == nil {
			mt.trained = trained
		} else {
			Logger.Printf("fine_tuned: %v; running in simulation mode", err)
		}
	} else {
		Logger.Printf("fine_tuned: no artifact configured; running in simulation mode")
	}

	mt.info = ModelInfo{
		Type:     FineTuned,
		TagCount: len(tag.MorphSet),
		InitCost: time.Since(start),
		Metrics:  cfg.Metrics,
	}
	return mt
}

func loadMorphModel(path string) (*morphModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading artifact: %w", err)
	}

	var m morphModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing artifact %s: %w", path, err)
	}

	m.words = make(map[string]tag.Tag, len(m.Lexicon))
	for surface, label := range m.Lexicon {
		t, err := tag.Parse(label)
		if err != nil {
			return nil, fmt.Errorf("artifact %s: %w", path, err)
		}
		m.words[lexicon.Canonicalize(surface)] = t
	}
	for _, s := range m.Suffixes {
		t, err := tag.Parse(s.Tag)
		if err != nil {
			return nil, fmt.Errorf("artifact %s: %w", path, err)
		}
		m.suffixes = append(m.suffixes, caseRule{suffix: s.Suffix, tag: t})
	}
	return &m, nil
}

// Trained reports whether a trained artifact backs this instance.
func (mt *MorphTagger) Trained() bool {
	return mt.trained != nil
}

func (mt *MorphTagger) Tag(sentence string) TaggedSentence {
	toks := tokenize.Tokens(sentence)
	out := make(TaggedSentence, len(toks))
	for i, tok := range toks {
		out[i] = TaggedToken{Word: tok.Text, Tag: mt.classify(tok.Text)}
	}
	return out
}

func (mt *MorphTagger) TagBatch(sentences []string) []TaggedSentence {
	return tagEach(mt, sentences)
}

func (mt *MorphTagger) ModelInfo() ModelInfo {
	return mt.info
}

// classify resolves one token. Trained resources are consulted first;
// analysis order after that mirrors the rule backend, except that
// noun-like tokens go through case refinement instead of bare Noun.
// Non-noun categories are decided before case suffixes so that "verdi"
// is a verb, not an accusative noun.
func (mt *MorphTagger) classify(word string) tag.Tag {
	folded := lexicon.Canonicalize(word)

	if mt.trained != nil {
		if t, ok := mt.trained.words[folded]; ok {
			return t
		}
	}

	if t, ok := mt.lex.Lookup(word); ok {
		return t
	}
	if tokenize.PurePunct(word) {
		return tag.Punc
	}
	if numeric(word) {
		return tag.Num
	}
	if matchAny(folded, verbSuffixes) {
		return tag.Verb
	}
	if matchAny(folded, adjSuffixes) {
		return tag.Adj
	}

	if mt.trained != nil {
		if t, ok := longestRule(folded, mt.trained.suffixes); ok {
			return t
		}
	}
	return nounCase(folded)
}

// longestRule applies an ordered suffix table with longest-match-wins,
// declaration order breaking ties.
func longestRule(word string, rules []caseRule) (tag.Tag, bool) {
	var best tag.Tag
	bestLen := 0
	for _, r := range rules {
		if len(r.suffix) > bestLen && hasSuffix(word, r.suffix) {
			best = r.tag
			bestLen = len(r.suffix)
		}
	}
	return best, bestLen > 0
}
