// Package worker runs a function over a slice of inputs with bounded concurrency.
package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result pairs an input with the output or error fn produced for it.
type Result[I, O any] struct {
	Input  I
	Output O
	Err    error
}

// Run calls fn for every input using at most concurrency goroutines and
// blocks until all calls have returned. Results are in input order.
// Once ctx is done, inputs that have not started are not passed to fn; their
// Result carries ctx.Err().
func Run[I, O any](ctx context.Context, inputs []I, concurrency int, fn func(context.Context, I) (O, error)) []Result[I, O] {
	results := make([]Result[I, O], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(1, concurrency))
	for i, in := range inputs {
		results[i].Input = in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Output, results[i].Err = fn(ctx, in)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; per-input errors live in results
	return results
}
