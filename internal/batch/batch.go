// Package batch parses many sentences against one grammar concurrently.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/cky/internal/cky"
)

// Parser is the part of *cky.Parser a Runner uses.
type Parser interface {
	Parse(sentence string) *cky.Result
}

// Outcome holds the parse of one sentence after a run.
type Outcome struct {
	// Index is the position of the sentence in the input.
	Index int

	// Sentence is the input sentence.
	Sentence string

	// Result is nil when the run was canceled before the sentence was parsed.
	Result *cky.Result

	// Err is non-nil if the sentence was skipped.
	Err error
}

// Derivable reports whether the sentence was parsed and derivable.
func (o Outcome) Derivable() bool {
	return o.Result != nil && o.Result.Derivable()
}

// Runner parses sentences in parallel and reports progress for each one.
// Cancelling the context stops sentences that have not started yet.
type Runner struct {
	parser     Parser
	limit      int
	onProgress func(Event)
}

// NewRunner creates a Runner that parses with p, at most limit sentences at
// a time (no bound when limit < 1). onProgress is called from worker
// goroutines and must be safe for concurrent use; it may be nil.
func NewRunner(p Parser, limit int, onProgress func(Event)) *Runner {
	return &Runner{
		parser:     p,
		limit:      limit,
		onProgress: onProgress,
	}
}

// Run parses every sentence and returns the outcomes in input order. All
// outcomes are returned even when the context is canceled; the error is the
// context's error in that case.
func (r *Runner) Run(ctx context.Context, sentences []string) ([]Outcome, error) {
	results := make([]Outcome, len(sentences))
	for i, s := range sentences {
		results[i] = Outcome{Index: i, Sentence: s}
		r.emit(Event{Index: i, Sentence: s, Status: StatusPending})
	}

	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for i, s := range sentences {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				r.emit(Event{Index: i, Sentence: s, Status: StatusCanceled})
				return err
			}

			r.emit(Event{Index: i, Sentence: s, Status: StatusWorking})
			res := r.parser.Parse(s)
			results[i].Result = res
			r.emit(Event{Index: i, Sentence: s, Status: StatusComplete, Derivable: res.Derivable()})
			return nil
		})
	}

	err := g.Wait()
	return results, err
}

// emit sends a progress event if a callback is registered.
func (r *Runner) emit(ev Event) {
	if r.onProgress != nil {
		r.onProgress(ev)
	}
}
