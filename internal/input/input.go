// Package input reads problem datasets from files or stdin.
package input

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Open opens path for reading. "-" means stdin. Gzipped files are detected
// by their magic bytes and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}

	br := bufio.NewReader(file)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read input header: %w", err)
	}

	// Check for gzip magic number (0x1f, 0x8b)
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return &gzipFile{Reader: gz, file: file}, nil
	}

	return &plainFile{Reader: br, file: file}, nil
}

type plainFile struct {
	*bufio.Reader
	file *os.File
}

func (f *plainFile) Close() error {
	return f.file.Close()
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (f *gzipFile) Close() error {
	gzErr := f.Reader.Close()
	if err := f.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// Load reads the whole dataset at path with trailing whitespace and
// newlines removed.
func Load(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return Read(r)
}

// Read reads all of r with trailing whitespace and newlines removed.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), " \t\r\n"), nil
}

// Lines splits a dataset into its non-blank lines, each trimmed of
// surrounding whitespace. Every line is an independent input.
func Lines(data string) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	// Increase buffer size for long sequences
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024) // 10MB max line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return lines, nil
}
