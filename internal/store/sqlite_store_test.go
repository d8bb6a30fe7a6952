package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turknlp/turkpos/pkg/eval"
	"github.com/turknlp/turkpos/pkg/tag"
	"github.com/turknlp/turkpos/pkg/tagger"
)

func TestScenarioRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore()
	require.NoError(t, err)
	defer s.Close()

	scen := eval.Scenario{
		Name:        "basit_cumleler",
		Description: "Basic clause structures",
		Sentences: []eval.GoldSentence{
			{Text: "Ali okula gitti .", Tags: []tag.Tag{tag.Noun, tag.Noun, tag.Verb, tag.Punc}},
			{Text: "Bu çok güzel .", Tags: []tag.Tag{tag.Pron, tag.Adv, tag.Adj, tag.Punc}},
		},
	}
	require.NoError(t, s.SaveScenario(scen))

	loaded, err := s.LoadScenarios()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, scen, loaded[0])
}

func TestSaveScenarioReplacesSentences(t *testing.T) {
	s, err := NewSQLiteStore()
	require.NoError(t, err)
	defer s.Close()

	scen := eval.Scenario{
		Name:      "tek",
		Sentences: []eval.GoldSentence{{Text: "Kitap masada .", Tags: []tag.Tag{tag.Noun, tag.Noun, tag.Punc}}},
	}
	require.NoError(t, s.SaveScenario(scen))

	scen.Sentences = []eval.GoldSentence{{Text: "Bu kitap güzel .", Tags: []tag.Tag{tag.Pron, tag.Noun, tag.Adj, tag.Punc}}}
	require.NoError(t, s.SaveScenario(scen))

	loaded, err := s.LoadScenarios()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Len(t, loaded[0].Sentences, 1)
	assert.Equal(t, "Bu kitap güzel .", loaded[0].Sentences[0].Text)
}

func TestRunRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore()
	require.NoError(t, err)
	defer s.Close()

	results := []eval.SentenceResult{
		{
			Scenario: "basit_cumleler",
			Backend:  "legacy",
			Index:    0,
			Accuracy: 0.75,
			GoldLen:  4,
			Predicted: tagger.TaggedSentence{
				{Word: "Bu", Tag: tag.Pron},
				{Word: "kitap", Tag: tag.Noun},
			},
		},
		{Scenario: "basit_cumleler", Backend: "fine_tuned", Index: 0, Accuracy: 1, GoldLen: 4},
	}

	runID, err := s.SaveRun("smoke", results)
	require.NoError(t, err)

	loaded, err := s.LoadRun(runID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Ordered by scenario, backend, position.
	assert.Equal(t, "fine_tuned", loaded[0].Backend)
	assert.Equal(t, "legacy", loaded[1].Backend)
	assert.Equal(t, []tag.Tag{tag.Pron, tag.Noun}, loaded[1].Predicted)
	assert.InDelta(t, 0.75, loaded[1].Accuracy, 1e-9)
}

func TestFileBackedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turkpos.db")

	s, err := NewSQLiteStoreWithDSN(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveScenario(eval.Scenario{
		Name:      "kalici",
		Sentences: []eval.GoldSentence{{Text: "Merhaba .", Tags: []tag.Tag{tag.Intj, tag.Punc}}},
	}))
	require.NoError(t, s.Close())

	// Reopen and verify persistence.
	s2, err := NewSQLiteStoreWithDSN(path)
	require.NoError(t, err)
	defer s2.Close()

	loaded, err := s2.LoadScenarios()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "kalici", loaded[0].Name)
}
