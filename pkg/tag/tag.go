// Package tag defines the part-of-speech tag vocabulary shared by all
// tagger backends: twelve coarse grammatical categories plus six
// case-refined noun tags for Turkish grammatical case.
package tag

import (
	"encoding/json"
	"fmt"
)

// Tag is a part-of-speech label.
type Tag int

// Coarse categories.
const (
	Noun Tag = iota
	Verb
	Adj
	Adv
	Pron
	Det
	Num
	Conj
	Postp
	Punc
	Part
	Intj
)

// Case-refined noun tags. Each refines Noun by Turkish grammatical case.
const (
	NounNom Tag = iota + 100
	NounAcc
	NounDat
	NounAbl
	NounGen
	NounLoc
)

var tagNames = map[Tag]string{
	Noun:  "Noun",
	Verb:  "Verb",
	Adj:   "Adj",
	Adv:   "Adv",
	Pron:  "Pron",
	Det:   "Det",
	Num:   "Num",
	Conj:  "Conj",
	Postp: "Postp",
	Punc:  "Punc",
	Part:  "Part",
	Intj:  "Intj",

	NounNom: "Noun_Nom",
	NounAcc: "Noun_Acc",
	NounDat: "Noun_Dat",
	NounAbl: "Noun_Abl",
	NounGen: "Noun_Gen",
	NounLoc: "Noun_Loc",
}

var tagFromName = map[string]Tag{}

func init() {
	for t, name := range tagNames {
		tagFromName[name] = t
	}
}

// String returns the canonical label, e.g. "Noun_Dat".
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Parse resolves a label string to its Tag.
func Parse(s string) (Tag, error) {
	t, ok := tagFromName[s]
	if !ok {
		return 0, fmt.Errorf("tag: unknown tag %q", s)
	}
	return t, nil
}

// IsRefined reports whether t is a case-refined noun tag.
func (t Tag) IsRefined() bool {
	return t >= NounNom && t <= NounLoc
}

// Coarse projects a case-refined noun tag onto Noun; coarse tags map to
// themselves.
func (t Tag) Coarse() Tag {
	if t.IsRefined() {
		return Noun
	}
	return t
}

// MarshalJSON encodes the tag as its label string.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a label string into a Tag.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RuleSet is the 10-tag vocabulary of the rule-based backend: coarse
// categories without Part and Intj, and never case-refined.
var RuleSet = []Tag{Noun, Verb, Adj, Adv, Pron, Det, Num, Conj, Postp, Punc}

// MorphSet is the full 18-tag vocabulary of the morphological backend.
var MorphSet = []Tag{
	Noun, Verb, Adj, Adv, Pron, Det, Num, Conj, Postp, Punc, Part, Intj,
	NounNom, NounAcc, NounDat, NounAbl, NounGen, NounLoc,
}

// TransformerSet is the 9-tag coarse vocabulary the transformer backend's
// internal label set maps onto.
var TransformerSet = []Tag{Noun, Verb, Adj, Adv, Pron, Det, Conj, Num, Punc}

// Member reports whether t belongs to set.
func Member(t Tag, set []Tag) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}
