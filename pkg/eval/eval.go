// Package eval runs gold-standard comparison of tagger backends over
// scenario corpora: per-sentence positional accuracy, scenario-level
// aggregation, content-word accuracy with Turkish stopwords excluded,
// and competition ranking of backends per scenario.
package eval

import (
	"sort"
	"sync"

	"github.com/orsinium-labs/stopwords"

	"github.com/turknlp/turkpos/pkg/lexicon"
	"github.com/turknlp/turkpos/pkg/tag"
	"github.com/turknlp/turkpos/pkg/tagger"
	"github.com/turknlp/turkpos/pkg/tokenize"
)

// turkishStopwords backs content-word accuracy. Function words are
// cheap points; excluding them shows how a backend does on the words
// that carry meaning.
var turkishStopwords = stopwords.MustGet("tr")

// GoldSentence is one evaluation sentence with its expected tags, one
// per token in tokenizer order.
type GoldSentence struct {
	Text string
	Tags []tag.Tag
}

// Scenario is a named group of gold sentences.
type Scenario struct {
	Name        string
	Description string
	Sentences   []GoldSentence
}

// Entry is one backend under evaluation.
type Entry struct {
	Name   string
	Tagger tagger.Tagger
}

// SentenceResult is the scored outcome for one (backend, sentence) pair.
type SentenceResult struct {
	Scenario string
	Backend  string
	Index    int // sentence position within the scenario
	Text     string

	Predicted tagger.TaggedSentence
	GoldLen   int

	Accuracy float64

	// ContentAccuracy covers only positions whose gold word is not a
	// stopword. ContentLen 0 means every word was a stopword and the
	// figure carries no signal.
	ContentAccuracy float64
	ContentLen      int
}

// Cell aggregates one backend over one scenario.
type Cell struct {
	Accuracy        float64
	ContentAccuracy float64
	Sentences       int // scored sentences; zero-gold sentences are excluded
}

// Matrix is the full evaluation outcome: Cells[scenario][backend], plus
// competition ranks per scenario (ties share a rank, the next rank is
// skipped).
type Matrix struct {
	Scenarios []string
	Backends  []string
	Cells     map[string]map[string]Cell
	Ranks     map[string]map[string]int
	Results   []SentenceResult
}

// Evaluate scores every backend against every scenario sentence.
// Sentences fan out across at most workers goroutines; results are
// keyed by position, so the outcome is deterministic regardless of
// scheduling. workers < 1 means sequential.
func Evaluate(entries []Entry, scenarios []Scenario, workers int) Matrix {
	if workers < 1 {
		workers = 1
	}

	type job struct {
		entry, scen, sent int
	}

	var jobs []job
	for e := range entries {
		for s := range scenarios {
			for i := range scenarios[s].Sentences {
				jobs = append(jobs, job{e, s, i})
			}
		}
	}

	results := make([]SentenceResult, len(jobs))
	ch := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range ch {
				j := jobs[idx]
				results[idx] = scoreSentence(
					entries[j.entry],
					scenarios[j.scen].Name, j.sent,
					scenarios[j.scen].Sentences[j.sent])
			}
		}()
	}
	for idx := range jobs {
		ch <- idx
	}
	close(ch)
	wg.Wait()

	return assemble(entries, scenarios, results)
}

// scoreSentence tags one sentence and scores it positionally against
// gold. Positions beyond the shorter of the two sequences count as
// misses; the denominator is always the gold length.
func scoreSentence(entry Entry, scenario string, index int, gold GoldSentence) SentenceResult {
	predicted := entry.Tagger.Tag(gold.Text)

	res := SentenceResult{
		Scenario:  scenario,
		Backend:   entry.Name,
		Index:     index,
		Text:      gold.Text,
		Predicted: predicted,
		GoldLen:   len(gold.Tags),
	}
	if len(gold.Tags) == 0 {
		return res
	}

	words := tokenize.Words(gold.Text)

	matches := 0
	contentMatches := 0
	for i, want := range gold.Tags {
		content := i < len(words) && !turkishStopwords.Contains(lexicon.Canonicalize(words[i]))
		if content {
			res.ContentLen++
		}
		if i < len(predicted) && predicted[i].Tag == want {
			matches++
			if content {
				contentMatches++
			}
		}
	}

	res.Accuracy = float64(matches) / float64(len(gold.Tags))
	if res.ContentLen > 0 {
		res.ContentAccuracy = float64(contentMatches) / float64(res.ContentLen)
	}
	return res
}

// assemble folds sentence results into the scenario/backend matrix and
// computes per-scenario competition ranks.
func assemble(entries []Entry, scenarios []Scenario, results []SentenceResult) Matrix {
	m := Matrix{
		Cells:   make(map[string]map[string]Cell),
		Ranks:   make(map[string]map[string]int),
		Results: results,
	}
	for _, s := range scenarios {
		m.Scenarios = append(m.Scenarios, s.Name)
		m.Cells[s.Name] = make(map[string]Cell)
		m.Ranks[s.Name] = make(map[string]int)
	}
	for _, e := range entries {
		m.Backends = append(m.Backends, e.Name)
	}

	type agg struct {
		acc, contentAcc   float64
		scored, contented int
	}
	sums := make(map[string]map[string]*agg)
	for _, scen := range m.Scenarios {
		sums[scen] = make(map[string]*agg)
		for _, b := range m.Backends {
			sums[scen][b] = &agg{}
		}
	}

	for _, r := range results {
		a := sums[r.Scenario][r.Backend]
		if r.GoldLen == 0 {
			continue
		}
		a.acc += r.Accuracy
		a.scored++
		if r.ContentLen > 0 {
			a.contentAcc += r.ContentAccuracy
			a.contented++
		}
	}

	for scen, backends := range sums {
		for b, a := range backends {
			cell := Cell{Sentences: a.scored}
			if a.scored > 0 {
				cell.Accuracy = a.acc / float64(a.scored)
			}
			if a.contented > 0 {
				cell.ContentAccuracy = a.contentAcc / float64(a.contented)
			}
			m.Cells[scen][b] = cell
		}
		m.Ranks[scen] = rank(m.Backends, m.Cells[scen])
	}
	return m
}

// rank assigns competition ranks by accuracy, descending. Backends with
// equal accuracy share a rank and the following rank is skipped.
func rank(backends []string, cells map[string]Cell) map[string]int {
	ordered := make([]string, len(backends))
	copy(ordered, backends)
	sort.SliceStable(ordered, func(i, j int) bool {
		return cells[ordered[i]].Accuracy > cells[ordered[j]].Accuracy
	})

	ranks := make(map[string]int, len(ordered))
	for i, b := range ordered {
		if i > 0 && cells[b].Accuracy == cells[ordered[i-1]].Accuracy {
			ranks[b] = ranks[ordered[i-1]]
			continue
		}
		ranks[b] = i + 1
	}
	return ranks
}
