// Package dna provides DNA nucleobases and sequences.
package dna

import "github.com/inodb/rosalind/internal/symbol"

// Nucleobase is one of the four DNA bases.
type Nucleobase uint8

const (
	Adenine Nucleobase = iota
	Thymine
	Cytosine
	Guanine
)

// Nucleobases lists the four bases in declaration order.
var Nucleobases = [4]Nucleobase{Adenine, Thymine, Cytosine, Guanine}

// ParseNucleobase parses a single uppercase A, T, C or G.
func ParseNucleobase(ch rune) (Nucleobase, error) {
	switch ch {
	case 'A':
		return Adenine, nil
	case 'T':
		return Thymine, nil
	case 'C':
		return Cytosine, nil
	case 'G':
		return Guanine, nil
	}
	return 0, &symbol.IllegalCharError{Alphabet: "DNA", Char: ch}
}

// Complement returns the paired base: A <=> T and C <=> G.
func (b Nucleobase) Complement() Nucleobase {
	switch b {
	case Adenine:
		return Thymine
	case Thymine:
		return Adenine
	case Cytosine:
		return Guanine
	default:
		return Cytosine
	}
}

// Byte returns the one-letter code.
func (b Nucleobase) Byte() byte {
	return "ATCG"[b]
}

func (b Nucleobase) String() string {
	return string(b.Byte())
}
