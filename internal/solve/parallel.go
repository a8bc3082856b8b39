package solve

import (
	"runtime"
	"sync"
)

// WorkItem holds one dataset ready to be solved.
type WorkItem struct {
	Seq   int
	Input string
}

// WorkResult holds the answer for a single dataset.
type WorkResult struct {
	Seq    int
	Input  string
	Answer string
	Cached bool
	Err    error
}

// ParallelSolve solves work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence order).
// Use OrderedCollect to consume results in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func (r *Runner) ParallelSolve(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				answer, cached, err := r.Solve(item.Input)
				results <- WorkResult{
					Seq:    item.Seq,
					Input:  item.Input,
					Answer: answer,
					Cached: cached,
					Err:    err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// Sequenced is a result that knows its position in the input.
type Sequenced interface {
	Sequence() int
}

// Sequence returns the input index of the result.
func (r WorkResult) Sequence() int { return r.Seq }

// OrderedCollect calls fn for each result in sequence-number order,
// starting from 0. Out-of-order results wait in a pending map until every
// earlier one has been emitted. On the first error from fn the remaining
// results are drained so producers never block. Blocks until results is
// closed.
func OrderedCollect[T Sequenced](results <-chan T, fn func(T) error) error {
	pending := make(map[int]T)
	nextSeq := 0

	for r := range results {
		pending[r.Sequence()] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
