package dna

import (
	"iter"
	"strings"

	"github.com/inodb/rosalind/internal/symbol"
)

// Sequence is an immutable ordered run of DNA nucleobases.
type Sequence struct {
	bases []Nucleobase
}

// NucleobaseCount holds per-base totals.
type NucleobaseCount struct {
	Adenines  uint64
	Thymines  uint64
	Cytosines uint64
	Guanines  uint64
}

// Total returns the sum of all buckets.
func (c NucleobaseCount) Total() uint64 {
	return c.Adenines + c.Thymines + c.Cytosines + c.Guanines
}

// New builds a sequence from a copy of bases.
func New(bases ...Nucleobase) Sequence {
	return Sequence{bases: append([]Nucleobase(nil), bases...)}
}

// Parse converts text such as "ATTGC" into a sequence.
// The error for the first illegal character is a *symbol.IndexedError
// wrapping a *symbol.IllegalCharError.
func Parse(text string) (Sequence, error) {
	bases, err := symbol.ParseAll(text, ParseNucleobase)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{bases: bases}, nil
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

// Backward yields every base from the last to the first.
func (s Sequence) Backward() iter.Seq[Nucleobase] {
	return func(yield func(Nucleobase) bool) {
		for i := len(s.bases) - 1; i >= 0; i-- {
			if !yield(s.bases[i]) {
				return
			}
		}
	}
}

// ReverseComplement returns the sequence of the opposite strand, read 5' to 3'.
func (s Sequence) ReverseComplement() Sequence {
	out := make([]Nucleobase, 0, len(s.bases))
	for b := range s.Backward() {
		out = append(out, b.Complement())
	}
	return Sequence{bases: out}
}

// CountBases counts each kind of base in a single pass.
func (s Sequence) CountBases() NucleobaseCount {
	var c NucleobaseCount
	for _, b := range s.bases {
		switch b {
		case Adenine:
			c.Adenines++
		case Thymine:
			c.Thymines++
		case Cytosine:
			c.Cytosines++
		case Guanine:
			c.Guanines++
		}
	}
	return c
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.bases))
	for _, b := range s.bases {
		sb.WriteByte(b.Byte())
	}
	return sb.String()
}
