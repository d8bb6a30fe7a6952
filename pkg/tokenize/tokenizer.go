// Package tokenize splits raw sentences into surface tokens with byte
// offsets into the original text.
//
// Splitting rules: tokens are separated by whitespace; leading and
// trailing punctuation (periods, commas, question/exclamation marks,
// colons, semicolons, quotation marks) is peeled off a word into
// standalone tokens. A run of pure punctuation yields one token per
// punctuation character ("!!!" is three tokens). Word-internal
// apostrophes are preserved, so proper-noun clitics like "İstanbul'a"
// stay whole. Tokenization cannot fail; empty or whitespace-only input
// produces an empty token slice.
package tokenize

import (
	"unicode"
	"unicode/utf8"
)

// Token is a surface token with its position in the original text.
type Token struct {
	Text  string // token text, exactly as it appears in the input
	Start int    // byte offset in the input
	End   int    // byte offset (exclusive)
	Index int    // token position within the sentence
}

// splitPunct reports whether r is punctuation that detaches from an
// adjacent word.
func splitPunct(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ':', ';',
		'"', '\'', '«', '»',
		'“', '”', '‘', '’', // curly double/single quotes
		'(', ')', '[', ']':
		return true
	default:
		return false
	}
}

// PurePunct reports whether s is non-empty and consists solely of
// punctuation or symbol characters.
func PurePunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// Tokens tokenizes s. The result is never nil and the function is pure:
// calling it again on the same input restarts the same sequence.
func Tokens(s string) []Token {
	out := make([]Token, 0, 16)

	i := 0
	for i < len(s) {
		// Skip whitespace.
		for i < len(s) {
			r, w := utf8.DecodeRuneInString(s[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += w
		}
		start := i

		// Consume the whitespace-delimited field.
		for i < len(s) {
			r, w := utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += w
		}
		if start < i {
			out = appendFieldTokens(out, s, start, i)
		}
	}

	for idx := range out {
		out[idx].Index = idx
	}
	return out
}

// Words returns just the token texts of s.
func Words(s string) []string {
	toks := Tokens(s)
	words := make([]string, len(toks))
	for i, t := range toks {
		words[i] = t.Text
	}
	return words
}

// appendFieldTokens splits one whitespace-delimited field [start,end)
// into tokens: leading punctuation, the core word, trailing punctuation.
// A field of pure punctuation decomposes into single-character tokens.
func appendFieldTokens(out []Token, s string, start, end int) []Token {
	// Peel leading punctuation.
	for start < end {
		r, w := utf8.DecodeRuneInString(s[start:])
		if !splitPunct(r) {
			break
		}
		out = append(out, Token{Text: s[start : start+w], Start: start, End: start + w})
		start += w
	}

	// Peel trailing punctuation (collected back-to-front).
	var tail []Token
	for start < end {
		last, lw := utf8.DecodeLastRuneInString(s[start:end])
		if !splitPunct(last) {
			break
		}
		tail = append(tail, Token{Text: s[end-lw : end], Start: end - lw, End: end})
		end -= lw
	}

	if start < end {
		out = append(out, Token{Text: s[start:end], Start: start, End: end})
	}
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
