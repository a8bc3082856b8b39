package solve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/rosalind/internal/symbol"
)

func TestProblems(t *testing.T) {
	tests := []struct {
		problem string
		input   string
		want    string
	}{
		{"dna", "AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTGTCTGATAGCAGC", "20 12 17 21"},
		{"dna", "", "0 0 0 0"},
		{"rna", "GATGGAACTTGACTACGTAAATT", "GAUGGAACUUGACUACGUAAAUU"},
		{"revc", "AAAACCCGGT", "ACCGGGTTTT"},
		{"prot", "AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA", "MAMAPRTEINSTRING"},
		{"prtm", "SKADYEK", "821.392"},
		{"frames", "ATGGCC", "+1 MA\n+2 W\n+3 G\n-1 GH\n-2 A\n-3 P"},
	}

	for _, tt := range tests {
		t.Run(tt.problem, func(t *testing.T) {
			p, ok := Lookup(tt.problem)
			require.True(t, ok)

			got, err := p.Solve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProblems_ParseErrors(t *testing.T) {
	tests := []struct {
		problem string
		input   string
		index   int
		char    rune
	}{
		{"dna", "ATECCG", 2, 'E'},
		{"rna", "ATU", 2, 'U'},
		{"revc", "acgt", 0, 'a'},
		{"prot", "AUGT", 3, 'T'},
		{"prtm", "SKAB", 3, 'B'},
		{"frames", "ATG N", 3, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.problem, func(t *testing.T) {
			p, ok := Lookup(tt.problem)
			require.True(t, ok)

			_, err := p.Solve(tt.input)
			require.Error(t, err)

			var indexed *symbol.IndexedError
			require.True(t, errors.As(err, &indexed))
			assert.Equal(t, tt.index, indexed.Index)

			var illegal *symbol.IllegalCharError
			require.True(t, errors.As(err, &illegal))
			assert.Equal(t, tt.char, illegal.Char)
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	p, ok := Lookup("PROT")
	require.True(t, ok)
	assert.Equal(t, "prot", p.Name())

	_, ok = Lookup("subs")
	assert.False(t, ok)
}

func TestProblemsSorted(t *testing.T) {
	var names []string
	for _, p := range Problems() {
		names = append(names, p.Name())
		assert.NotEmpty(t, p.Description())
	}
	assert.Equal(t, []string{"dna", "frames", "prot", "prtm", "revc", "rna"}, names)
}
