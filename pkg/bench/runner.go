package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"coordbench/pkg/geo"
)

// ErrInvalidSampleCount is returned when the sample count is not positive.
var ErrInvalidSampleCount = errors.New("sample count must be positive")

// Result is the timing of one system over one batch.
type Result struct {
	System    string
	CalcType  CalcKind
	N         int
	ElapsedMs float64
	// Checksum is the sum of all computed distances.
	Checksum float64
}

// Runner runs benchmarks. The zero value runs single-threaded with seed 0.
type Runner struct {
	Workers int          // concurrent chunks per batch; < 2 means sequential
	Seed    uint64       // random seed for point generation
	Samples []geo.LatLng // optional real-world points for spherical systems
}

// Run benchmarks the named systems over n random pairs each. Point
// generation is not timed. The context is checked between systems and
// before each chunk.
func (r *Runner) Run(ctx context.Context, names []string, n int) ([]Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleCount, n)
	}

	systems := make([]System, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		systems = append(systems, s)
	}

	gen := NewGenerator(r.Seed, r.Samples)
	results := make([]Result, 0, len(systems))

	for _, s := range systems {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		k := s.prepare(gen, n)

		start := time.Now()
		sum, err := r.measure(ctx, k, n)
		elapsed := time.Since(start)
		if err != nil {
			return results, fmt.Errorf("%s: %w", s.Name, err)
		}

		res := Result{
			System:    s.Name,
			CalcType:  s.Kind,
			N:         n,
			ElapsedMs: float64(elapsed.Nanoseconds()) / 1e6,
			Checksum:  sum,
		}
		log.Debug().
			Str("system", res.System).
			Int("n", n).
			Float64("elapsed_ms", res.ElapsedMs).
			Msg("Benchmark finished")
		results = append(results, res)
	}

	return results, nil
}

// measure runs k over [0, n), split into contiguous chunks when more than
// one worker is configured. Partial sums are added in chunk order.
func (r *Runner) measure(ctx context.Context, k kernel, n int) (float64, error) {
	workers := r.Workers
	if workers > n {
		workers = n
	}
	if workers < 2 {
		return k(0, n), nil
	}

	partial := make([]float64, workers)
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[w] = k(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, p := range partial {
		sum += p
	}
	return sum, nil
}
