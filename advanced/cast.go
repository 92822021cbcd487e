package advanced

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Mode int

const (
	// Rays are computed one after another on the calling goroutine.
	Sequential Mode = iota
	// Rays are spread over a fixed pool of worker goroutines.
	Parallel
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "seq":
		return Sequential, nil
	case "parallel", "par":
		return Parallel, nil
	}
	return Sequential, errors.Errorf("unknown execution mode %q", s)
}

type Options struct {
	// Number of rays, at least 1
	RayCount int
	// Radius of the far point circle. Should be at least the half diagonal of
	// the working area.
	MaxRadius float64
	Mode      Mode
	// Size of the worker pool in parallel mode. Zero means one worker per CPU.
	Workers int
}

func (opts Options) validate(origin Point) {
	if opts.RayCount < 1 {
		fatalf("ray count must be at least 1, got %d", opts.RayCount)
	}
	if !isFinite(opts.MaxRadius) || opts.MaxRadius <= 0 {
		fatalf("max radius must be a positive finite number, got %v", opts.MaxRadius)
	}
	if !origin.IsFinite() {
		fatalf("origin must be finite, got %v", origin)
	}
	if opts.Workers < 0 {
		fatalf("worker count must not be negative, got %d", opts.Workers)
	}
}

// The number of workers actually started. Never more than there are rays.
func (opts Options) workerCount() int {
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.RayCount {
		workers = opts.RayCount
	}
	return workers
}

// Cast a single ray. This is the unit of work for both strategies; it depends
// only on its arguments.
func CastRay(origin Point, obstacles ObstacleSet, radius, angle float64) RayResult {
	far := FarPoint(origin, radius, angle)
	ray := Segment{origin, far}
	if hit, ok := NearestIntersection(ray, obstacles); ok {
		return RayResult{Segment: Segment{origin, hit}, Angle: angle, Hit: true}
	}
	return RayResult{Segment: ray, Angle: angle}
}

// Compute every ray of a cast. The result always has exactly opts.RayCount
// entries in angle order, and both modes produce identical results.
//
// Panics with a CastError if the options are invalid. The obstacle set must
// not be modified until Cast returns.
func Cast(origin Point, obstacles ObstacleSet, opts Options) CastResult {
	opts.validate(origin)
	sampler := NewAngleSampler(opts.RayCount)
	results := make(CastResult, opts.RayCount)

	switch opts.Mode {
	case Sequential:
		castSequential(origin, obstacles, opts.MaxRadius, sampler, results)
	case Parallel:
		castParallel(origin, obstacles, opts.MaxRadius, sampler, results, opts.workerCount())
	default:
		fatalf("unknown execution mode %d", opts.Mode)
	}
	return results
}

func castSequential(origin Point, obstacles ObstacleSet, radius float64, sampler AngleSampler, results CastResult) {
	iter := sampler.Iterate()
	for {
		i, angle, ok := iter.Next()
		if !ok {
			break
		}
		results[i] = CastRay(origin, obstacles, radius, angle)
	}

	slog.Debug("Cast completed (sequential)",
		"rays", len(results),
		"obstacles", len(obstacles))
}

// Each worker pulls ray indices and writes only the slot for that index. No two
// workers ever see the same index, so the result buffer needs no lock, and the
// order of the output does not depend on which worker finishes first.
func castParallel(origin Point, obstacles ObstacleSet, radius float64, sampler AngleSampler, results CastResult, numWorkers int) {
	indices := make(chan int, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for range numWorkers {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = CastRay(origin, obstacles, radius, sampler.At(i))
			}
		}()
	}

	for i := range sampler.Len() {
		indices <- i
	}
	close(indices)
	wg.Wait()

	slog.Debug("Cast completed (parallel)",
		"rays", len(results),
		"obstacles", len(obstacles),
		"workers", numWorkers)
}

// A cancellable Cast. The context is checked between rays, never inside the
// intersection math, so a cancelled cast stops after at most one ray per
// worker. On cancellation no partial result is returned.
//
// Invalid options are reported as an error rather than a panic.
func CastContext(ctx context.Context, origin Point, obstacles ObstacleSet, opts Options) (result CastResult, err error) {
	defer func() {
		if recoveredErr := HandleCastPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	opts.validate(origin)
	sampler := NewAngleSampler(opts.RayCount)
	results := make(CastResult, opts.RayCount)

	switch opts.Mode {
	case Sequential:
		iter := sampler.Iterate()
		for {
			i, angle, ok := iter.Next()
			if !ok {
				break
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = CastRay(origin, obstacles, opts.MaxRadius, angle)
		}
	case Parallel:
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.workerCount())
		for i := range sampler.Len() {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = CastRay(origin, obstacles, opts.MaxRadius, sampler.At(i))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		// The loop may have stopped early without any ray seeing the cancellation
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	default:
		fatalf("unknown execution mode %d", opts.Mode)
	}
	return results, nil
}
