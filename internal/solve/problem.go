// Package solve runs Rosalind problems that are thin call sites over the
// sequence packages.
package solve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/inodb/rosalind/internal/dna"
	"github.com/inodb/rosalind/internal/protein"
	"github.com/inodb/rosalind/internal/rna"
)

// Problem solves one dataset and returns the answer text.
type Problem interface {
	Name() string
	Description() string
	Solve(input string) (string, error)
}

type problem struct {
	name        string
	description string
	solve       func(string) (string, error)
}

func (p problem) Name() string                       { return p.name }
func (p problem) Description() string                { return p.description }
func (p problem) Solve(input string) (string, error) { return p.solve(input) }

var registry = map[string]Problem{}

func register(name, description string, solve func(string) (string, error)) {
	registry[name] = problem{name: name, description: description, solve: solve}
}

func init() {
	register("dna", "Counting DNA nucleotides (A C G T counts)", countNucleotides)
	register("rna", "Transcribing DNA into RNA", transcribe)
	register("revc", "Complementing a strand of DNA", reverseComplement)
	register("prot", "Translating RNA into protein", translate)
	register("prtm", "Calculating protein mass", proteinMass)
	register("frames", "Translating all six reading frames of DNA", sixFrames)
}

// Lookup returns the problem with the given (case-insensitive) name.
func Lookup(name string) (Problem, bool) {
	p, ok := registry[strings.ToLower(name)]
	return p, ok
}

// Problems returns every registered problem sorted by name.
func Problems() []Problem {
	out := make([]Problem, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func countNucleotides(input string) (string, error) {
	s, err := dna.Parse(input)
	if err != nil {
		return "", fmt.Errorf("parse DNA: %w", err)
	}
	c := s.CountBases()
	return fmt.Sprintf("%d %d %d %d", c.Adenines, c.Cytosines, c.Guanines, c.Thymines), nil
}

func transcribe(input string) (string, error) {
	s, err := dna.Parse(input)
	if err != nil {
		return "", fmt.Errorf("parse DNA: %w", err)
	}
	return rna.Transcribe(s).String(), nil
}

func reverseComplement(input string) (string, error) {
	s, err := dna.Parse(input)
	if err != nil {
		return "", fmt.Errorf("parse DNA: %w", err)
	}
	return s.ReverseComplement().String(), nil
}

func translate(input string) (string, error) {
	s, err := rna.Parse(input)
	if err != nil {
		return "", fmt.Errorf("parse RNA: %w", err)
	}
	return protein.Translate(s).String(), nil
}

func proteinMass(input string) (string, error) {
	s, err := protein.Parse(input)
	if err != nil {
		return "", fmt.Errorf("parse protein: %w", err)
	}
	return fmt.Sprintf("%.3f", s.MonoisotopicMass()), nil
}

// sixFrames translates the three forward frames and the three frames of the
// reverse complement, one line each.
func sixFrames(input string) (string, error) {
	s, err := dna.Parse(input)
	if err != nil {
		return "", fmt.Errorf("parse DNA: %w", err)
	}

	forward := rna.Transcribe(s)
	reverse := rna.Transcribe(s.ReverseComplement())

	lines := make([]string, 0, 6)
	for offset := range 3 {
		lines = append(lines, fmt.Sprintf("+%d %s", offset+1, protein.TranslateFrame(forward, offset)))
	}
	for offset := range 3 {
		lines = append(lines, fmt.Sprintf("-%d %s", offset+1, protein.TranslateFrame(reverse, offset)))
	}
	return strings.Join(lines, "\n"), nil
}
