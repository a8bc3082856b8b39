// Package output provides answer output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// TabWriter writes answers in tab-delimited format, one dataset per row.
// Multi-line answers are joined with ';' to keep one row per dataset.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Problem",
			"Index",
			"Answer",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single answer.
func (tw *TabWriter) Write(problem string, seq int, answer string) error {
	if answer == "" {
		answer = "-"
	}
	values := []string{
		problem,
		strconv.Itoa(seq + 1),
		strings.ReplaceAll(answer, "\n", ";"),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
