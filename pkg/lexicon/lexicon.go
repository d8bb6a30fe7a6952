// Package lexicon provides the closed word lists used by the tagger
// backends (pronouns, determiners, conjunctions, postpositions,
// particles, interjections, and seed lists of common adverbs and
// adjectives), compiled once into an Aho-Corasick automaton.
//
// The automaton serves two purposes: exact whole-word lookup through the
// pattern index, and scanning raw text for known (possibly multiword)
// function expressions. All entries are canonicalized with Turkish case
// folding, so lookups of "Bu" and "bu" agree.
package lexicon

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"

	"github.com/turknlp/turkpos/pkg/tag"
)

// Canonicalize folds a surface form for lexicon matching using Turkish
// casing rules (I -> ı, İ -> i).
func Canonicalize(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// Entry is one surface form with its part-of-speech class.
type Entry struct {
	Surface string
	Tag     tag.Tag
}

// Match is a function expression detected in raw text.
type Match struct {
	Start int     // byte offset into the canonicalized text
	End   int     // byte offset (exclusive)
	Text  string  // canonicalized matched text
	Tag   tag.Tag // class of the matched expression
}

// Lexicon is an immutable compiled word-list table. Safe for concurrent
// use; all state is fixed at compile time.
type Lexicon struct {
	ac       *ahocorasick.Automaton
	patterns []string
	tags     []tag.Tag
	index    map[string]int
}

// Compile builds a Lexicon from entries. Later entries do not override
// earlier ones for the same surface form; declaration order wins.
func Compile(entries []Entry) (*Lexicon, error) {
	l := &Lexicon{index: make(map[string]int, len(entries))}

	for _, e := range entries {
		key := Canonicalize(e.Surface)
		if key == "" {
			continue
		}
		if _, exists := l.index[key]; exists {
			continue
		}
		l.index[key] = len(l.patterns)
		l.patterns = append(l.patterns, key)
		l.tags = append(l.tags, e.Tag)
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(l.patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	l.ac = automaton

	return l, nil
}

// Lookup resolves a single token to its closed-class tag. The second
// return is false for tokens outside the lexicon.
func (l *Lexicon) Lookup(word string) (tag.Tag, bool) {
	idx, ok := l.index[Canonicalize(word)]
	if !ok {
		return 0, false
	}
	return l.tags[idx], true
}

// Contains reports whether word is a known closed-class form.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.Lookup(word)
	return ok
}

// Size returns the number of compiled entries.
func (l *Lexicon) Size() int {
	return len(l.patterns)
}

// Scan finds all whole-word occurrences of lexicon expressions in text.
// Matching runs over the canonicalized text; matches that would split a
// word (letter or digit on either side) are dropped.
func (l *Lexicon) Scan(text string) []Match {
	if l.ac == nil {
		return nil
	}

	canon := Canonicalize(text)
	haystack := []byte(canon)

	raw := l.ac.FindAllOverlapping(haystack)
	result := make([]Match, 0, len(raw))

	for _, m := range raw {
		if !wordBounded(canon, m.Start, m.End) {
			continue
		}
		result = append(result, Match{
			Start: m.Start,
			End:   m.End,
			Text:  canon[m.Start:m.End],
			Tag:   l.tags[m.PatternID],
		})
	}
	return result
}

// wordBounded reports whether [start,end) is delimited by non-word
// characters on both sides.
func wordBounded(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the process-wide lexicon compiled from the built-in
// Turkish word lists. Compiled once, never mutated.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		l, err := Compile(defaultEntries())
		if err != nil {
			// The built-in lists are static; a compile failure is a
			// programming error, not a runtime condition.
			panic("lexicon: compiling built-in word lists: " + err.Error())
		}
		defaultLex = l
	})
	return defaultLex
}
