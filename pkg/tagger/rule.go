package tagger

import (
	"time"
	"unicode"

	"github.com/turknlp/turkpos/pkg/lexicon"
	"github.com/turknlp/turkpos/pkg/tag"
	"github.com/turknlp/turkpos/pkg/tokenize"
)

// RuleTagger is the legacy deterministic backend: closed word lists
// plus a surface suffix cascade over the 10-tag coarse set. It reports
// no accuracy metrics.
type RuleTagger struct {
	lex  *lexicon.Lexicon
	info ModelInfo
}

// NewRule constructs the rule-based backend. Construction cannot fail;
// the word lists are built in.
func NewRule() *RuleTagger {
	start := time.Now()
	rt := &RuleTagger{lex: lexicon.Default()}
	rt.info = ModelInfo{
		Type:     Legacy,
		TagCount: len(tag.RuleSet),
		InitCost: time.Since(start),
	}
	return rt
}

func (rt *RuleTagger) Tag(sentence string) TaggedSentence {
	toks := tokenize.Tokens(sentence)
	out := make(TaggedSentence, len(toks))
	for i, tok := range toks {
		out[i] = TaggedToken{Word: tok.Text, Tag: rt.classify(tok.Text)}
	}
	return out
}

func (rt *RuleTagger) TagBatch(sentences []string) []TaggedSentence {
	return tagEach(rt, sentences)
}

func (rt *RuleTagger) ModelInfo() ModelInfo {
	return rt.info
}

// classify applies the back-off chain: word list, punctuation, numeral,
// suffix cascade, nominal default. Word-list hits outside the coarse
// 10-tag set (particles, interjections) fall through to the cascade so
// the backend never emits a tag it does not know.
func (rt *RuleTagger) classify(word string) tag.Tag {
	if t, ok := rt.lex.Lookup(word); ok && tag.Member(t, tag.RuleSet) {
		return t
	}
	if tokenize.PurePunct(word) {
		return tag.Punc
	}
	if numeric(word) {
		return tag.Num
	}

	folded := lexicon.Canonicalize(word)
	if matchAny(folded, verbSuffixes) {
		return tag.Verb
	}
	if matchAny(folded, adjSuffixes) {
		return tag.Adj
	}
	return tag.Noun
}

// numeric reports whether the token is a numeral: at least one digit
// and no letters. "2020'de" carries a letter and is left to the
// morphology.
func numeric(word string) bool {
	hasDigit := false
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			return false
		}
	}
	return hasDigit
}
