package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"
	"github.com/zeebo/xxh3"

	"github.com/inodb/rosalind/internal/solve"
)

// previewLength is how much of an input is kept for history listings.
const previewLength = 60

// AnswerRecord is a stored answer as listed by History.
type AnswerRecord struct {
	Problem      string
	InputLength  int64
	InputPreview string
	Answer       string
	SolvedAt     time.Time
}

// answerKey is the composite key for deduplicating answers before writing.
type answerKey struct {
	problem string
	hash    int64
}

// inputHash fingerprints a dataset. Inputs are stored as hashes so large
// sequences do not bloat the cache.
func inputHash(input string) int64 {
	return int64(xxh3.HashString(input))
}

func preview(input string) string {
	if len(input) <= previewLength {
		return input
	}
	return input[:previewLength] + "..."
}

// LookupAnswer returns the cached answer for problem and input.
func (s *Store) LookupAnswer(problem, input string) (string, bool, error) {
	var answer string
	err := s.db.QueryRow(`SELECT answer FROM answers
		WHERE problem=? AND input_hash=? AND input_length=?`,
		problem, inputHash(input), int64(len(input))).Scan(&answer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query answer: %w", err)
	}
	return answer, true, nil
}

// WriteAnswers batch-inserts answers into DuckDB using the Appender API.
// Duplicate (problem, input) entries are deduplicated before writing and
// replace any previously stored answer.
func (s *Store) WriteAnswers(answers []solve.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	seen := make(map[answerKey]bool, len(answers))
	deduped := make([]solve.Answer, 0, len(answers))
	for _, a := range answers {
		k := answerKey{a.Problem, inputHash(a.Input)}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, a)
		}
	}

	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	for k := range seen {
		if _, err := conn.ExecContext(ctx, "DELETE FROM answers WHERE problem=? AND input_hash=?", k.problem, k.hash); err != nil {
			return fmt.Errorf("replace answer: %w", err)
		}
	}

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "answers")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	now := time.Now().UTC()
	for _, a := range deduped {
		if err := appender.AppendRow(
			a.Problem, inputHash(a.Input), int64(len(a.Input)), preview(a.Input),
			a.Output, now,
		); err != nil {
			return fmt.Errorf("append answer: %w", err)
		}
	}

	return appender.Flush()
}

// ClearAnswers removes all cached answers.
func (s *Store) ClearAnswers() error {
	_, err := s.db.Exec("DELETE FROM answers")
	return err
}

// AnswerCount returns the number of cached answers.
func (s *Store) AnswerCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM answers").Scan(&n); err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return n, nil
}

// History lists cached answers, newest first. An empty problem lists every
// problem; a non-positive limit lists everything.
func (s *Store) History(problem string, limit int) ([]AnswerRecord, error) {
	query := `SELECT problem, input_length, input_preview, answer, solved_at FROM answers`
	var args []any
	if problem != "" {
		query += " WHERE problem=?"
		args = append(args, problem)
	}
	query += " ORDER BY solved_at DESC, problem, input_preview"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []AnswerRecord
	for rows.Next() {
		var r AnswerRecord
		if err := rows.Scan(&r.Problem, &r.InputLength, &r.InputPreview, &r.Answer, &r.SolvedAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return records, nil
}
