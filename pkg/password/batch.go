package password

import (
	"context"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch generates n values concurrently. sourceFor is called once per index and
// must return a source not shared with other indexes unless it is safe for
// concurrent use.
func Batch(ctx context.Context, gen Generator, n int, sourceFor func(i int) rand.Source) ([]Password, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if n < 0 {
		return nil, ErrInvalidCount
	}

	out := make([]Password, n)
	if n == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := sourceFor(i)
			if src == nil {
				return ErrNilSource
			}
			out[i] = gen.Generate(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for i := range out {
			out[i].Wipe()
		}
		return nil, err
	}

	return out, nil
}
