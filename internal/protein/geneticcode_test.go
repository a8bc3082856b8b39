package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/rosalind/internal/rna"
)

func codon(t *testing.T, text string) rna.Codon {
	t.Helper()
	c, err := rna.ParseCodon(text)
	require.NoError(t, err)
	return c
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		codon string
		want  AminoAcid
	}{
		{"AUG -> Met (start)", "AUG", Methionine},
		{"GGU -> Gly", "GGU", Glycine},
		{"UGU -> Cys", "UGU", Cysteine},
		{"UUU -> Phe", "UUU", Phenylalanine},
		{"AAA -> Lys", "AAA", Lysine},
		{"UGG -> Trp", "UGG", Tryptophan},
		{"AGA -> Arg", "AGA", Arginine},
		{"AGU -> Ser", "AGU", Serine},
		{"GAC -> Asp", "GAC", AsparticAcid},
		{"CAG -> Gln", "CAG", Glutamine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(codon(t, tt.codon))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Stop(t *testing.T) {
	for _, text := range []string{"UAA", "UAG", "UGA"} {
		c := codon(t, text)
		_, ok := Lookup(c)
		assert.False(t, ok, text)
		assert.True(t, IsStopCodon(c), text)
	}
}

func TestGeneticCodeCoverage(t *testing.T) {
	stops := 0
	coded := make(map[AminoAcid]int)
	for _, a := range rna.Nucleobases {
		for _, b := range rna.Nucleobases {
			for _, c := range rna.Nucleobases {
				aa, ok := Lookup(rna.Codon{a, b, c})
				if !ok {
					stops++
					continue
				}
				coded[aa]++
			}
		}
	}

	assert.Equal(t, 3, stops)
	assert.Len(t, coded, 20, "every amino acid is coded")
	assert.Equal(t, 6, coded[Leucine])
	assert.Equal(t, 6, coded[Serine])
	assert.Equal(t, 6, coded[Arginine])
	assert.Equal(t, 1, coded[Methionine])
	assert.Equal(t, 1, coded[Tryptophan])
}

func TestIsStartCodon(t *testing.T) {
	assert.True(t, IsStartCodon(codon(t, "AUG")))
	assert.False(t, IsStartCodon(codon(t, "UAA")))
	assert.False(t, IsStartCodon(codon(t, "GUG")))
}
