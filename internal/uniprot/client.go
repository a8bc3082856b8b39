// Package uniprot downloads protein sequences from the UniProt knowledgebase.
package uniprot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/rosalind/internal/protein"
)

// DefaultBaseURL is the UniProtKB REST endpoint.
const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

// DefaultTimeout bounds a single download.
const DefaultTimeout = 30 * time.Second

// Record is a downloaded entry: the label line and the concatenated body.
type Record struct {
	ID       string
	Label    string
	Sequence string
}

// Protein parses the record body as an amino acid sequence.
func (r Record) Protein() (protein.Sequence, error) {
	s, err := protein.Parse(r.Sequence)
	if err != nil {
		return protein.Sequence{}, fmt.Errorf("parse %s: %w", r.ID, err)
	}
	return s, nil
}

// Client fetches entries over HTTP(S).
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for baseURL. An empty baseURL selects
// DefaultBaseURL and a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for request tracing.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Fetch downloads the entry for a UniProt accession such as "P07204".
func (c *Client) Fetch(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, fmt.Errorf("empty UniProt id")
	}

	u := fmt.Sprintf("%s/%s.fasta", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Record{}, fmt.Errorf("build UniProt request: %w", err)
	}

	c.logger.Debug("fetching UniProt entry", zap.String("id", id), zap.String("url", u))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("UniProt request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Record{}, fmt.Errorf("UniProt error %d for %s: %s", resp.StatusCode, id, strings.TrimSpace(string(body)))
	}

	rec, err := ParseRecord(resp.Body)
	if err != nil {
		return Record{}, fmt.Errorf("read UniProt entry %s: %w", id, err)
	}
	rec.ID = id
	return rec, nil
}

// ParseRecord reads a single-entry text download: the first line is the
// label (a leading '>' is dropped) and every following line is appended to
// the sequence body.
func ParseRecord(r io.Reader) (Record, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long sequences
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var rec Record
	var body strings.Builder
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			if line == "" {
				continue
			}
			rec.Label = strings.TrimPrefix(line, ">")
			first = false
			continue
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("scan entry: %w", err)
	}
	if first {
		return Record{}, fmt.Errorf("empty entry")
	}

	rec.Sequence = body.String()
	return rec, nil
}
