package rna

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Sequence {
	t.Helper()
	s, err := Parse(text)
	require.NoError(t, err)
	return s
}

func TestCodons(t *testing.T) {
	s := mustParse(t, "AAUGGCCAU")

	want := []Codon{
		{Adenine, Adenine, Uracil},
		{Guanine, Guanine, Cytosine},
		{Cytosine, Adenine, Uracil},
	}
	assert.Equal(t, want, slices.Collect(s.Codons(0)))
}

func TestCodons_DropsTrailingBases(t *testing.T) {
	// the trailing "AA" cannot form a codon
	s := mustParse(t, "AAUGGCCAUAA")

	want := []Codon{
		{Adenine, Adenine, Uracil},
		{Guanine, Guanine, Cytosine},
		{Cytosine, Adenine, Uracil},
	}
	assert.Equal(t, want, slices.Collect(s.Codons(0)))
}

func TestCodons_Offset(t *testing.T) {
	s := mustParse(t, "UAUGGCCAU")

	want := []Codon{
		{Guanine, Guanine, Cytosine},
		{Cytosine, Adenine, Uracil},
	}
	assert.Equal(t, want, slices.Collect(s.Codons(3)))

	frame1 := slices.Collect(s.Codons(1))
	require.Len(t, frame1, 2)
	assert.Equal(t, "AUG", frame1[0].String())
	assert.Equal(t, "GCC", frame1[1].String())
}

func TestCodons_OffsetPastEnd(t *testing.T) {
	s := mustParse(t, "AUG")
	assert.Empty(t, slices.Collect(s.Codons(3)))
	assert.Empty(t, slices.Collect(s.Codons(10)))

	empty := mustParse(t, "")
	for offset := range 3 {
		assert.Empty(t, slices.Collect(empty.Codons(offset)))
	}
}

func TestCodons_NegativeOffset(t *testing.T) {
	s := mustParse(t, "AUG")
	assert.Panics(t, func() { s.Codons(-1) })
}

func TestCodonCount_NegativeOffset(t *testing.T) {
	s := mustParse(t, "AUGAUG")
	assert.Panics(t, func() { s.CodonCount(-1) })
	assert.Equal(t, 2, s.CodonCount(0))
}

func TestCodons_CountFormula(t *testing.T) {
	for _, text := range []string{"", "A", "AU", "AUG", "AUGG", "AUGGC", "AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA"} {
		s := mustParse(t, text)
		for offset := 0; offset <= s.Len(); offset++ {
			got := len(slices.Collect(s.Codons(offset)))
			assert.Equal(t, (s.Len()-offset)/3, got, "%q offset %d", text, offset)
			assert.Equal(t, got, s.CodonCount(offset))
		}
	}
}

func TestCodons_EarlyStop(t *testing.T) {
	s := mustParse(t, "AUGGCCAUG")
	var seen []string
	for c := range s.Codons(0) {
		seen = append(seen, c.String())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"AUG", "GCC"}, seen)
}

func TestParseCodon(t *testing.T) {
	c, err := ParseCodon("UGA")
	require.NoError(t, err)
	assert.Equal(t, Codon{Uracil, Guanine, Adenine}, c)

	_, err = ParseCodon("UG")
	assert.Equal(t, &CodonLengthError{Len: 2}, err)

	_, err = ParseCodon("UGT")
	assert.Error(t, err)
}
