package tagger

import (
	"unicode/utf8"

	"github.com/turknlp/turkpos/pkg/tag"
)

// Surface suffix tables for the rule-based and morphological backends.
// Matching is against the Turkish-folded form, first match in
// declaration order wins, and a match must leave a stem of at least
// minStem runes so that short words ("Ali", "su") do not false-trigger.

const minStem = 2

// Verb-marking suffixes: progressive, future, infinitive, necessitative,
// evidential, copula, converb, and consonant-anchored past forms. Bare
// two-letter past suffixes are deliberately absent; "kedi" is not a verb.
var verbSuffixes = []string{
	"yorlar", "yorsunuz", "yorsun", "yorduk", "yordum", "yordun", "yordu",
	"yoruz", "yorum", "yor",
	"acağız", "eceğiz", "acağım", "eceğim", "acaksın", "eceksin",
	"acaklar", "ecekler", "acak", "ecek",
	"malıyız", "meliyiz", "malı", "meli",
	"mak", "mek",
	"mıştır", "miştir", "muştur", "müştür",
	"mıştı", "mişti", "muştu", "müştü",
	"mışlar", "mişler", "muşlar", "müşler",
	"mış", "miş", "muş", "müş",
	"arak", "erek",
	"dılar", "diler", "dular", "düler", "tılar", "tiler", "tular", "tüler",
	"dım", "dim", "dum", "düm", "tım", "tim", "tum", "tüm",
	"dık", "dik", "duk", "dük", "tık", "tik", "tuk", "tük",
	"ldı", "ldi", "ldu", "ldü",
	"rdı", "rdi", "rdu", "rdü",
	"ndı", "ndi", "ndu", "ndü",
	"ştı", "şti", "ştu", "ştü",
	"zdı", "zdi", "zdu", "zdü",
	"ttı", "tti", "ttu", "ttü",
	"adı", "ydı", "ydi",
	"dır", "dir", "dur", "dür", "tır", "tir", "tur", "tür",
}

// Adjective-deriving suffixes: possessive -lI, privative -sIz,
// relational -sAl.
var adjSuffixes = []string{
	"sız", "siz", "suz", "süz",
	"sal", "sel",
	"lı", "li", "lu", "lü",
}

// caseRule maps a nominal case suffix to its refined noun tag.
type caseRule struct {
	suffix string
	tag    tag.Tag
}

// Nominal case suffixes for the morphological backend. Declaration
// order breaks length ties; the longest matching suffix wins overall.
// No match means nominative.
var caseSuffixes = []caseRule{
	{"yı", tag.NounAcc}, {"yi", tag.NounAcc}, {"yu", tag.NounAcc}, {"yü", tag.NounAcc},
	{"ı", tag.NounAcc}, {"i", tag.NounAcc}, {"u", tag.NounAcc}, {"ü", tag.NounAcc},
	{"ya", tag.NounDat}, {"ye", tag.NounDat},
	{"a", tag.NounDat}, {"e", tag.NounDat},
	{"dan", tag.NounAbl}, {"den", tag.NounAbl}, {"tan", tag.NounAbl}, {"ten", tag.NounAbl},
	{"nın", tag.NounGen}, {"nin", tag.NounGen}, {"nun", tag.NounGen}, {"nün", tag.NounGen},
	{"ın", tag.NounGen}, {"in", tag.NounGen}, {"un", tag.NounGen}, {"ün", tag.NounGen},
	{"da", tag.NounLoc}, {"de", tag.NounLoc}, {"ta", tag.NounLoc}, {"te", tag.NounLoc},
}

// hasSuffix reports whether the folded word ends in suffix and keeps a
// stem of at least minStem runes.
func hasSuffix(word, suffix string) bool {
	if len(word) <= len(suffix) {
		return false
	}
	if word[len(word)-len(suffix):] != suffix {
		return false
	}
	return utf8.RuneCountInString(word[:len(word)-len(suffix)]) >= minStem
}

// matchAny returns true when any suffix in the ordered list matches.
func matchAny(word string, suffixes []string) bool {
	for _, s := range suffixes {
		if hasSuffix(word, s) {
			return true
		}
	}
	return false
}

// nounCase resolves the case-refined tag for a noun-like folded word.
// Longest suffix match wins; ties fall to declaration order; no match
// is nominative.
func nounCase(word string) tag.Tag {
	best := tag.NounNom
	bestLen := 0
	for _, r := range caseSuffixes {
		if len(r.suffix) > bestLen && hasSuffix(word, r.suffix) {
			best = r.tag
			bestLen = len(r.suffix)
		}
	}
	return best
}
