// Package protein provides amino acids, the standard genetic code and
// protein sequences translated from RNA.
package protein

import "github.com/inodb/rosalind/internal/symbol"

// AminoAcid is one of the 20 standard amino acids. Values order by
// declaration, which callers may rely on for sorting and deduplication.
type AminoAcid uint8

const (
	Alanine AminoAcid = iota
	Arginine
	Asparagine
	AsparticAcid
	Cysteine
	GlutamicAcid
	Glutamine
	Glycine
	Histidine
	Isoleucine
	Leucine
	Lysine
	Methionine
	Phenylalanine
	Proline
	Serine
	Threonine
	Tryptophan
	Tyrosine
	Valine
)

// AminoAcids lists every amino acid in declaration order.
var AminoAcids = [20]AminoAcid{
	Alanine, Arginine, Asparagine, AsparticAcid, Cysteine,
	GlutamicAcid, Glutamine, Glycine, Histidine, Isoleucine,
	Leucine, Lysine, Methionine, Phenylalanine, Proline,
	Serine, Threonine, Tryptophan, Tyrosine, Valine,
}

// IUPAC one-letter codes, indexed by AminoAcid.
const oneLetter = "ARNDCEQGHILKMFPSTWYV"

var threeLetter = [20]string{
	"Ala", "Arg", "Asn", "Asp", "Cys",
	"Glu", "Gln", "Gly", "His", "Ile",
	"Leu", "Lys", "Met", "Phe", "Pro",
	"Ser", "Thr", "Trp", "Tyr", "Val",
}

// Monoisotopic residue masses in daltons.
var monoisotopicMass = [20]float64{
	71.03711,  // A
	156.10111, // R
	114.04293, // N
	115.02694, // D
	103.00919, // C
	129.04259, // E
	128.05858, // Q
	57.02146,  // G
	137.05891, // H
	113.08406, // I
	113.08406, // L
	128.09496, // K
	131.04049, // M
	147.06841, // F
	97.05276,  // P
	87.03203,  // S
	101.04768, // T
	186.07931, // W
	163.06333, // Y
	99.06841,  // V
}

// fromLetter maps an ASCII letter to its AminoAcid, -1 when there is none.
var fromLetter = func() (t [128]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(oneLetter); i++ {
		t[oneLetter[i]] = int8(i)
	}
	return t
}()

// ParseAminoAcid parses an uppercase IUPAC one-letter code.
func ParseAminoAcid(ch rune) (AminoAcid, error) {
	if ch >= 0 && ch < rune(len(fromLetter)) && fromLetter[ch] >= 0 {
		return AminoAcid(fromLetter[ch]), nil
	}
	return 0, &symbol.IllegalCharError{Alphabet: "protein", Char: ch}
}

// Byte returns the one-letter code.
func (a AminoAcid) Byte() byte {
	return oneLetter[a]
}

func (a AminoAcid) String() string {
	return string(a.Byte())
}

// ThreeLetter returns the three-letter abbreviation, e.g. "Met".
func (a AminoAcid) ThreeLetter() string {
	return threeLetter[a]
}

// MonoisotopicMass returns the residue mass in daltons.
func (a AminoAcid) MonoisotopicMass() float64 {
	return monoisotopicMass[a]
}
