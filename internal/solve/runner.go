package solve

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Answer is a solved dataset as stored by an AnswerCache.
type Answer struct {
	Problem string
	Input   string
	Output  string
}

// AnswerCache remembers answers across runs.
type AnswerCache interface {
	// LookupAnswer returns the stored answer, or ok=false when there is none.
	LookupAnswer(problem, input string) (answer string, ok bool, err error)
	WriteAnswers(answers []Answer) error
}

// AnswerWriter defines the interface for writing answers.
type AnswerWriter interface {
	WriteHeader() error
	Write(problem string, seq int, answer string) error
	Flush() error
}

// Summary counts the outcome of a SolveAll run.
type Summary struct {
	Solved int
	Cached int
	Failed int
}

// Runner solves datasets for one problem.
type Runner struct {
	problem Problem
	cache   AnswerCache
	workers int
	logger  *zap.Logger
}

// NewRunner creates a runner for p with no cache.
func NewRunner(p Problem) *Runner {
	return &Runner{
		problem: p,
		logger:  zap.NewNop(),
	}
}

// SetCache sets the answer cache. A nil cache disables caching.
func (r *Runner) SetCache(c AnswerCache) {
	r.cache = c
}

// SetWorkers sets the worker count for SolveAll. 0 means runtime.NumCPU().
func (r *Runner) SetWorkers(n int) {
	r.workers = n
}

// SetLogger sets the logger for warning and info messages.
func (r *Runner) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Solve solves a single dataset, consulting the cache first.
// Cache failures are logged and never fail the solve.
func (r *Runner) Solve(input string) (answer string, cached bool, err error) {
	name := r.problem.Name()

	if r.cache != nil {
		hit, ok, lookupErr := r.cache.LookupAnswer(name, input)
		if lookupErr != nil {
			r.logger.Warn("answer cache lookup failed",
				zap.String("problem", name),
				zap.Error(lookupErr))
		} else if ok {
			return hit, true, nil
		}
	}

	answer, err = r.problem.Solve(input)
	if err != nil {
		return "", false, err
	}
	return answer, false, nil
}

// SolveAll solves every input concurrently and writes the answers in input
// order. A dataset that fails is logged and skipped. Newly computed answers
// are written to the cache in one batch at the end.
func (r *Runner) SolveAll(ctx context.Context, inputs []string, writer AnswerWriter) (Summary, error) {
	items := make(chan WorkItem, 2*max(r.workers, 1))

	go func() {
		defer close(items)
		for seq, in := range inputs {
			select {
			case items <- WorkItem{Seq: seq, Input: in}:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := r.ParallelSolve(items, r.workers)

	var summary Summary
	var fresh []Answer
	name := r.problem.Name()

	if err := OrderedCollect(results, func(res WorkResult) error {
		if res.Err != nil {
			summary.Failed++
			r.logger.Warn("failed to solve dataset",
				zap.String("problem", name),
				zap.Int("index", res.Seq),
				zap.Error(res.Err))
			return nil
		}
		summary.Solved++
		if res.Cached {
			summary.Cached++
		} else {
			fresh = append(fresh, Answer{Problem: name, Input: res.Input, Output: res.Answer})
		}
		if err := writer.Write(name, res.Seq, res.Answer); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
		return nil
	}); err != nil {
		return summary, err
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if r.cache != nil && len(fresh) > 0 {
		if err := r.cache.WriteAnswers(fresh); err != nil {
			r.logger.Warn("answer cache write failed", zap.Error(err))
		}
	}

	if len(inputs) == 0 {
		r.logger.Info("0 datasets processed")
	}

	return summary, writer.Flush()
}
