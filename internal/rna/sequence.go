package rna

import (
	"iter"
	"strings"

	"github.com/inodb/rosalind/internal/dna"
	"github.com/inodb/rosalind/internal/symbol"
)

// Sequence is an immutable ordered run of RNA nucleobases.
type Sequence struct {
	bases []Nucleobase
}

// New builds a sequence from a copy of bases.
func New(bases ...Nucleobase) Sequence {
	return Sequence{bases: append([]Nucleobase(nil), bases...)}
}

// Parse converts text such as "AUGGCC" into a sequence.
// The error for the first illegal character is a *symbol.IndexedError
// wrapping a *symbol.IllegalCharError.
func Parse(text string) (Sequence, error) {
	bases, err := symbol.ParseAll(text, ParseNucleobase)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{bases: bases}, nil
}

// Transcribe returns the RNA copy of a DNA sequence.
func Transcribe(s dna.Sequence) Sequence {
	bases := make([]Nucleobase, 0, s.Len())
	for b := range s.All() {
		bases = append(bases, FromDNA(b))
	}
	return Sequence{bases: bases}
}

// Len returns the number of bases.
func (s Sequence) Len() int {
	return len(s.bases)
}

// At returns the base at index i. It panics if i is out of range.
func (s Sequence) At(i int) Nucleobase {
	return s.bases[i]
}

// Slice returns the half-open range [start, end) as a sequence sharing
// storage with s. It panics if the range is out of bounds.
func (s Sequence) Slice(start, end int) Sequence {
	return Sequence{bases: s.bases[start:end:end]}
}

// All yields every base in order. Each call starts a fresh traversal.
func (s Sequence) All() iter.Seq[Nucleobase] {
	return func(yield func(Nucleobase) bool) {
		for _, b := range s.bases {
			if !yield(b) {
				return
			}
		}
	}
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.bases))
	for _, b := range s.bases {
		sb.WriteByte(b.Byte())
	}
	return sb.String()
}
