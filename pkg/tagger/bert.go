package tagger

import (
	"fmt"
	"time"

	"github.com/turknlp/turkpos/internal/modeldb"
	"github.com/turknlp/turkpos/pkg/config"
	"github.com/turknlp/turkpos/pkg/lexicon"
	"github.com/turknlp/turkpos/pkg/tag"
	"github.com/turknlp/turkpos/pkg/tokenize"
)

// maxPieceLen bounds the greedy sub-word match, in runes.
const maxPieceLen = 24

// TransformerTagger is the pretrained transformer backend. Words are
// segmented into sub-word pieces against the artifact vocabulary, each
// piece resolves to its argmax label, and a word takes the label of its
// first piece. Out-of-vocabulary pieces fall back to a nearest-centroid
// lookup in the artifact. The backend's internal labels map onto the
// 9-tag coarse vocabulary.
type TransformerTagger struct {
	db   *modeldb.DB
	info ModelInfo
}

// labelTags maps artifact labels onto the coarse output vocabulary.
// Labels outside the map collapse to Noun.
var labelTags = map[string]tag.Tag{
	"NOUN":  tag.Noun,
	"PROPN": tag.Noun,
	"VERB":  tag.Verb,
	"AUX":   tag.Verb,
	"ADJ":   tag.Adj,
	"ADV":   tag.Adv,
	"PRON":  tag.Pron,
	"DET":   tag.Det,
	"CONJ":  tag.Conj,
	"CCONJ": tag.Conj,
	"SCONJ": tag.Conj,
	"ADP":   tag.Conj,
	"NUM":   tag.Num,
	"PUNCT": tag.Punc,
}

// NewTransformer constructs the transformer backend. Unlike the
// morphological backend there is no simulation fallback: a missing or
// unloadable artifact fails construction with ErrModelUnavailable.
func NewTransformer(cfg config.ModelConfig) (*TransformerTagger, error) {
	if cfg.Artifact == "" {
		return nil, fmt.Errorf("tagger: berturk: no artifact configured: %w", ErrModelUnavailable)
	}

	start := time.Now()
	db, err := modeldb.Open(cfg.Artifact)
	if err != nil {
		return nil, fmt.Errorf("tagger: berturk: %v: %w", err, ErrModelUnavailable)
	}

	tt := &TransformerTagger{db: db}
	tt.info = ModelInfo{
		Type:     BERTurk,
		TagCount: len(tag.TransformerSet),
		InitCost: time.Since(start),
		Metrics:  cfg.Metrics,
	}
	return tt, nil
}

// Close releases the model artifact.
func (tt *TransformerTagger) Close() error {
	return tt.db.Close()
}

func (tt *TransformerTagger) Tag(sentence string) TaggedSentence {
	toks := tokenize.Tokens(sentence)
	out := make(TaggedSentence, len(toks))
	for i, tok := range toks {
		out[i] = TaggedToken{Word: tok.Text, Tag: tt.classify(tok.Text)}
	}
	return out
}

func (tt *TransformerTagger) TagBatch(sentences []string) []TaggedSentence {
	return tagEach(tt, sentences)
}

func (tt *TransformerTagger) ModelInfo() ModelInfo {
	return tt.info
}

// classify tags one word by its first sub-word piece. Punctuation
// bypasses segmentation; artifact vocabularies do not reliably carry
// every punctuation mark.
func (tt *TransformerTagger) classify(word string) tag.Tag {
	if tokenize.PurePunct(word) {
		return tag.Punc
	}

	label := tt.firstPieceLabel(lexicon.Canonicalize(word))
	if t, ok := labelTags[label]; ok {
		return t
	}
	return tag.Noun
}

// firstPieceLabel finds the longest vocabulary piece at the head of the
// folded word and returns its argmax label. A word whose head matches
// nothing resolves through the centroid fallback on the whole word.
func (tt *TransformerTagger) firstPieceLabel(folded string) string {
	runes := []rune(folded)
	if _, label, ok := tt.longestPiece(runes, 0, false); ok {
		return label
	}
	if label, err := tt.db.NearestLabel(folded); err == nil {
		return label
	}
	return ""
}

// longestPiece finds the longest vocabulary piece starting at pos,
// returning its rune length and argmax label. Continuation positions
// match against "##"-prefixed pieces.
func (tt *TransformerTagger) longestPiece(runes []rune, pos int, continuation bool) (int, string, bool) {
	end := len(runes)
	if end > pos+maxPieceLen {
		end = pos + maxPieceLen
	}

	for n := end; n > pos; n-- {
		candidate := string(runes[pos:n])
		if continuation {
			candidate = "##" + candidate
		}
		if label, ok := tt.db.PieceLabel(candidate); ok {
			return n - pos, label, true
		}
	}
	return 0, "", false
}

// Segment exposes the sub-word segmentation for diagnostics: the pieces
// the vocabulary produces for one word, continuation pieces carrying
// their "##" prefix. Unmatchable remainders yield a single "[UNK]".
func (tt *TransformerTagger) Segment(word string) []string {
	runes := []rune(lexicon.Canonicalize(word))
	var pieces []string

	pos := 0
	for pos < len(runes) {
		n, _, ok := tt.longestPiece(runes, pos, pos > 0)
		if !ok {
			return append(pieces, "[UNK]")
		}
		text := string(runes[pos : pos+n])
		if pos > 0 {
			text = "##" + text
		}
		pieces = append(pieces, text)
		pos += n
	}
	return pieces
}
