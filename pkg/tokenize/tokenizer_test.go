package tokenize

import (
	"reflect"
	"testing"
)

func texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestEmptyAndWhitespace(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n  \t"} {
		toks := Tokens(in)
		if toks == nil {
			t.Errorf("Tokens(%q) returned nil, want empty slice", in)
		}
		if len(toks) != 0 {
			t.Errorf("Tokens(%q) = %v, want empty", in, texts(toks))
		}
	}
}

func TestSimpleSentence(t *testing.T) {
	got := texts(Tokens("Bu kitap güzel ."))
	want := []string{"Bu", "kitap", "güzel", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAttachedPunctuation(t *testing.T) {
	got := texts(Tokens("Geldi, gördü, yendi."))
	want := []string{"Geldi", ",", "gördü", ",", "yendi", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuotedWord(t *testing.T) {
	got := texts(Tokens(`"merhaba" dedi`))
	want := []string{`"`, "merhaba", `"`, "dedi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// A pure punctuation run decomposes into one token per character.
func TestPunctuationRunPolicy(t *testing.T) {
	got := texts(Tokens("!!!"))
	want := []string{"!", "!", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = texts(Tokens("Ne kadar güzel !!"))
	want = []string{"Ne", "kadar", "güzel", "!", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Word-internal apostrophes bind proper-noun clitics to their host.
func TestApostropheKeptInsideWord(t *testing.T) {
	got := texts(Tokens("Yarın İstanbul'a gideceğim ."))
	want := []string{"Yarın", "İstanbul'a", "gideceğim", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOffsetsAndIndices(t *testing.T) {
	input := "Ali koştu ."
	toks := Tokens(input)
	for i, tok := range toks {
		if tok.Index != i {
			t.Errorf("token %d has index %d", i, tok.Index)
		}
		if input[tok.Start:tok.End] != tok.Text {
			t.Errorf("offsets of %q do not slice back to the token: %q",
				tok.Text, input[tok.Start:tok.End])
		}
	}
}

func TestRestartable(t *testing.T) {
	input := "Çocuklar bahçede top oynuyor ."
	first := Tokens(input)
	second := Tokens(input)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated tokenization of the same input differs")
	}
}

func TestPurePunct(t *testing.T) {
	cases := map[string]bool{
		".":    true,
		"!?":   true,
		"...":  true,
		"%":    true,
		"":     false,
		"a.":   false,
		"2020": false,
	}
	for in, want := range cases {
		if got := PurePunct(in); got != want {
			t.Errorf("PurePunct(%q) = %v, want %v", in, got, want)
		}
	}
}
