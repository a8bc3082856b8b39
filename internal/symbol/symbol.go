// Package symbol provides the parse errors shared by the sequence alphabets
// and a generic per-character sequence parser.
package symbol

import "fmt"

// IllegalCharError reports a character that is not part of an alphabet.
type IllegalCharError struct {
	Alphabet string // "DNA", "RNA" or "protein"
	Char     rune
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("there is no such %s symbol as represented by character %q", e.Alphabet, e.Char)
}

// IndexedError wraps the first per-character failure of a sequence parse
// with its zero-based position in the input text.
type IndexedError struct {
	Index int
	Err   error
}

func (e *IndexedError) Error() string {
	return fmt.Sprintf("position %d: %v", e.Index, e.Err)
}

func (e *IndexedError) Unwrap() error {
	return e.Err
}

// ParseAll converts text character by character using parse.
// Positions are counted in characters (runes), not bytes.
// It stops at the first failure.
func ParseAll[T any](text string, parse func(rune) (T, error)) ([]T, error) {
	out := make([]T, 0, len(text))
	index := 0
	for _, ch := range text {
		v, err := parse(ch)
		if err != nil {
			return nil, &IndexedError{Index: index, Err: err}
		}
		out = append(out, v)
		index++
	}
	return out, nil
}
