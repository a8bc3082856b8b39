package rna

import (
	"fmt"
	"iter"
)

// Codon is a group of three consecutive nucleobases.
type Codon [3]Nucleobase

// CodonLengthError reports codon text that is not exactly three bases long.
type CodonLengthError struct {
	Len int
}

func (e *CodonLengthError) Error() string {
	return fmt.Sprintf("a codon has 3 nucleobases, got %d", e.Len)
}

// ParseCodon parses a three-letter codon such as "AUG".
func ParseCodon(text string) (Codon, error) {
	s, err := Parse(text)
	if err != nil {
		return Codon{}, err
	}
	if s.Len() != 3 {
		return Codon{}, &CodonLengthError{Len: s.Len()}
	}
	return Codon(s.bases), nil
}

func (c Codon) String() string {
	return string([]byte{c[0].Byte(), c[1].Byte(), c[2].Byte()})
}

// Codons groups the bases into codons starting at offset. The grouping is
// strict: trailing bases that cannot complete a codon are dropped. An offset
// at or past the end yields nothing, so reading frames 0, 1 and 2 can be
// requested on any sequence. A negative offset panics.
func (s Sequence) Codons(offset int) iter.Seq[Codon] {
	checkOffset(offset)
	return func(yield func(Codon) bool) {
		for i := offset; i+3 <= len(s.bases); i += 3 {
			if !yield(Codon(s.bases[i : i+3])) {
				return
			}
		}
	}
}

// CodonCount returns the number of codons Codons(offset) yields.
// A negative offset panics.
func (s Sequence) CodonCount(offset int) int {
	checkOffset(offset)
	if offset >= len(s.bases) {
		return 0
	}
	return (len(s.bases) - offset) / 3
}

func checkOffset(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("rna: negative codon offset %d", offset))
	}
}
