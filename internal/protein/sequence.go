package protein

import (
	"iter"
	"strings"

	"github.com/inodb/rosalind/internal/rna"
	"github.com/inodb/rosalind/internal/symbol"
)

// Sequence is an immutable ordered run of amino acids.
type Sequence struct {
	residues []AminoAcid
}

// New builds a sequence from a copy of residues.
func New(residues ...AminoAcid) Sequence {
	return Sequence{residues: append([]AminoAcid(nil), residues...)}
}

// Parse converts one-letter codes such as "MAMAPR" into a sequence.
// The error for the first illegal character is a *symbol.IndexedError
// wrapping a *symbol.IllegalCharError.
func Parse(text string) (Sequence, error) {
	residues, err := symbol.ParseAll(text, ParseAminoAcid)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{residues: residues}, nil
}

// Translate translates every codon of s in reading frame 0.
// See TranslateFrame.
func Translate(s rna.Sequence) Sequence {
	return TranslateFrame(s, 0)
}

// TranslateFrame translates the codons of s starting at offset. Stop codons
// produce no amino acid and translation carries on with the next codon.
// Trailing bases that do not form a full codon are ignored.
func TranslateFrame(s rna.Sequence, offset int) Sequence {
	residues := make([]AminoAcid, 0, s.CodonCount(offset))
	for c := range s.Codons(offset) {
		aa, ok := Lookup(c)
		if !ok {
			continue
		}
		residues = append(residues, aa)
	}
	return Sequence{residues: residues}
}

// Len returns the number of residues.
func (s Sequence) Len() int {
	return len(s.residues)
}

// At returns the residue at index i. It panics if i is out of range.
func (s Sequence) At(i int) AminoAcid {
	return s.residues[i]
}

// All yields every residue in order. Each call starts a fresh traversal.
func (s Sequence) All() iter.Seq[AminoAcid] {
	return func(yield func(AminoAcid) bool) {
		for _, a := range s.residues {
			if !yield(a) {
				return
			}
		}
	}
}

// MonoisotopicMass returns the summed monoisotopic residue mass in daltons.
func (s Sequence) MonoisotopicMass() float64 {
	var total float64
	for _, a := range s.residues {
		total += a.MonoisotopicMass()
	}
	return total
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.residues))
	for _, a := range s.residues {
		sb.WriteByte(a.Byte())
	}
	return sb.String()
}
