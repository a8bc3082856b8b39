package output

import (
	"bufio"
	"io"
)

// TextWriter writes bare answers, each followed by a newline, in the form
// Rosalind accepts for submission.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new plain text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteHeader is a no-op; plain answers have no header.
func (tw *TextWriter) WriteHeader() error {
	return nil
}

// Write writes a single answer.
func (tw *TextWriter) Write(_ string, _ int, answer string) error {
	if _, err := tw.w.WriteString(answer); err != nil {
		return err
	}
	return tw.w.WriteByte('\n')
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}
