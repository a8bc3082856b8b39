package protein

import "github.com/inodb/rosalind/internal/rna"

// Standard genetic code: RNA codon to amino acid (single letter), '*' for stop.
var codonTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',

	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

type codonEntry struct {
	aa   AminoAcid
	stop bool
}

// geneticCode is codonTable indexed by codonIndex. Filled once in init.
var geneticCode [64]codonEntry

func init() {
	if len(codonTable) != len(geneticCode) {
		panic("protein: genetic code does not cover all 64 codons")
	}
	for text, letter := range codonTable {
		c, err := rna.ParseCodon(text)
		if err != nil {
			panic("protein: bad codon in genetic code: " + err.Error())
		}
		if letter == '*' {
			geneticCode[codonIndex(c)] = codonEntry{stop: true}
			continue
		}
		aa, err := ParseAminoAcid(rune(letter))
		if err != nil {
			panic("protein: bad amino acid in genetic code: " + err.Error())
		}
		geneticCode[codonIndex(c)] = codonEntry{aa: aa}
	}
}

func codonIndex(c rna.Codon) int {
	return int(c[0])<<4 | int(c[1])<<2 | int(c[2])
}

// Lookup returns the amino acid a codon codes for. The boolean is false for
// the stop codons UAA, UAG and UGA.
func Lookup(c rna.Codon) (AminoAcid, bool) {
	e := geneticCode[codonIndex(c)]
	return e.aa, !e.stop
}

// IsStopCodon returns true if the codon is a stop codon (UAA, UAG, UGA).
func IsStopCodon(c rna.Codon) bool {
	_, ok := Lookup(c)
	return !ok
}

// IsStartCodon returns true if the codon is the start codon (AUG).
func IsStartCodon(c rna.Codon) bool {
	return c == rna.Codon{rna.Adenine, rna.Uracil, rna.Guanine}
}
