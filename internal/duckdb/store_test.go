package duckdb

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/rosalind/internal/solve"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.db)
	assert.Empty(t, s.Path())
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "answers.duckdb")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
	assert.FileExists(t, path)
}

func TestWriteAndLookupAnswers(t *testing.T) {
	s := openInMemory(t)

	err := s.WriteAnswers([]solve.Answer{
		{Problem: "revc", Input: "AAAACCCGGT", Output: "ACCGGGTTTT"},
		{Problem: "rna", Input: "GATGGAACTTGACTACGTAAATT", Output: "GAUGGAACUUGACUACGUAAAUU"},
	})
	require.NoError(t, err)

	answer, ok, err := s.LookupAnswer("revc", "AAAACCCGGT")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ACCGGGTTTT", answer)

	// Same input under another problem is a miss.
	_, ok, err = s.LookupAnswer("dna", "AAAACCCGGT")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.LookupAnswer("revc", "AAAACCCGGA")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupAnswerEmpty(t *testing.T) {
	s := openInMemory(t)

	answer, ok, err := s.LookupAnswer("dna", "ACGT")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, answer)
}

func TestWriteAnswersEmpty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteAnswers(nil))

	n, err := s.AnswerCount()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWriteAnswersDeduplicates(t *testing.T) {
	s := openInMemory(t)

	err := s.WriteAnswers([]solve.Answer{
		{Problem: "dna", Input: "ACGT", Output: "1 1 1 1"},
		{Problem: "dna", Input: "ACGT", Output: "1 1 1 1"},
	})
	require.NoError(t, err)

	n, err := s.AnswerCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWriteAnswersReplaces(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteAnswers([]solve.Answer{{Problem: "prot", Input: "AUGUAA", Output: "stale"}}))
	require.NoError(t, s.WriteAnswers([]solve.Answer{{Problem: "prot", Input: "AUGUAA", Output: "M"}}))

	answer, ok, err := s.LookupAnswer("prot", "AUGUAA")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "M", answer)

	n, err := s.AnswerCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClearAnswers(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteAnswers([]solve.Answer{{Problem: "dna", Input: "A", Output: "1 0 0 0"}}))
	require.NoError(t, s.ClearAnswers())

	n, err := s.AnswerCount()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHistory(t *testing.T) {
	s := openInMemory(t)

	long := strings.Repeat("ACGT", 40)
	err := s.WriteAnswers([]solve.Answer{
		{Problem: "dna", Input: "ACGT", Output: "1 1 1 1"},
		{Problem: "dna", Input: long, Output: "40 40 40 40"},
		{Problem: "revc", Input: "AAAACCCGGT", Output: "ACCGGGTTTT"},
	})
	require.NoError(t, err)

	all, err := s.History("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dna, err := s.History("dna", 0)
	require.NoError(t, err)
	require.Len(t, dna, 2)
	for _, r := range dna {
		assert.Equal(t, "dna", r.Problem)
		assert.False(t, r.SolvedAt.IsZero())
		if r.InputLength == int64(len(long)) {
			assert.Equal(t, long[:previewLength]+"...", r.InputPreview)
			assert.Equal(t, "40 40 40 40", r.Answer)
		} else {
			assert.Equal(t, "ACGT", r.InputPreview)
		}
	}

	limited, err := s.History("", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStoreSatisfiesAnswerCache(t *testing.T) {
	var _ solve.AnswerCache = openInMemory(t)
}
