// Package rna provides RNA nucleobases, sequences and codon iteration.
package rna

import (
	"github.com/inodb/rosalind/internal/dna"
	"github.com/inodb/rosalind/internal/symbol"
)

// Nucleobase is one of the four RNA bases.
type Nucleobase uint8

const (
	Adenine Nucleobase = iota
	Uracil
	Cytosine
	Guanine
)

// Nucleobases lists the four bases in declaration order.
var Nucleobases = [4]Nucleobase{Adenine, Uracil, Cytosine, Guanine}

// ParseNucleobase parses a single uppercase A, U, C or G.
func ParseNucleobase(ch rune) (Nucleobase, error) {
	switch ch {
	case 'A':
		return Adenine, nil
	case 'U':
		return Uracil, nil
	case 'C':
		return Cytosine, nil
	case 'G':
		return Guanine, nil
	}
	return 0, &symbol.IllegalCharError{Alphabet: "RNA", Char: ch}
}

// FromDNA maps a DNA base to its RNA equivalent (thymine becomes uracil).
func FromDNA(b dna.Nucleobase) Nucleobase {
	switch b {
	case dna.Adenine:
		return Adenine
	case dna.Thymine:
		return Uracil
	case dna.Cytosine:
		return Cytosine
	default:
		return Guanine
	}
}

// Byte returns the one-letter code.
func (b Nucleobase) Byte() byte {
	return "AUCG"[b]
}

func (b Nucleobase) String() string {
	return string(b.Byte())
}
