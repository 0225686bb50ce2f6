package views

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"sync/atomic"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

const defaultBatchSize = 128

type parallelConfig struct {
	batchSize   int
	workers     int
	orderStable bool
}

// ParallelOption customizes [ParallelTransform].
type ParallelOption func(*parallelConfig)

// WithBatchSize sets how many elements are bundled into a single task
// to reduce channel overhead. Recommended values are between 64 and
// 1024 depending on the workload.
func WithBatchSize(size int) ParallelOption {
	return func(cfg *parallelConfig) {
		if size < 1 {
			size = 1
		}
		cfg.batchSize = size
	}
}

// WithWorkers sets the number of worker goroutines. The default is
// GOMAXPROCS; a value of 1 runs serially.
func WithWorkers(count int) ParallelOption {
	return func(cfg *parallelConfig) {
		if count < 1 {
			count = 1
		}
		cfg.workers = count
	}
}

// WithOrderStable makes the output order match the input order. The
// default is unordered, which avoids buffering batches that finish out
// of turn.
func WithOrderStable(stable bool) ParallelOption {
	return func(cfg *parallelConfig) {
		cfg.orderStable = stable
	}
}

type parallelJob[T any] struct {
	idx   int
	items []T
}

type parallelOutcome[R any] struct {
	value R
	err   error
}

type parallelBatch[R any] struct {
	idx   int
	items []parallelOutcome[R]
}

// ParallelTransform applies transform to the elements of v concurrently
// and yields (result, error) pairs. It is a concurrent consumer of an
// otherwise single-threaded view: the view itself is traversed by one
// feeder goroutine, and batches of elements are fanned out across
// workers. A panic in transform is converted into an error for the
// elements of its batch. Stopping the consuming loop early cancels the
// feeder and the workers.
func ParallelTransform[T, R any](ctx context.Context, v View[T], transform func(T) (R, error), opts ...ParallelOption) iter.Seq2[R, error] {
	cfg := parallelConfig{
		batchSize: defaultBatchSize,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return func(yield func(R, error) bool) {
		if cfg.workers < 2 {
			for x := range v.Seq() {
				if ctx.Err() != nil {
					return
				}
				r, err := applyTransform(transform, x)
				if !yield(r, err) {
					return
				}
			}
			return
		}

		ctx, cancel := context.WithCancel(ctx)
		var canceled atomic.Bool

		// Mirror context cancellation into the flag the hot loops poll.
		go func() {
			<-ctx.Done()
			canceled.Store(true)
		}()

		jobs := make(chan parallelJob[T], cfg.workers*2)
		batches := make(chan parallelBatch[R], cfg.workers*2)

		workers := conc.NewWaitGroup()
		for range cfg.workers {
			workers.Go(func() {
				for job := range jobs {
					if canceled.Load() {
						continue
					}
					out := make([]parallelOutcome[R], len(job.items))
					for i, x := range job.items {
						r, err := applyTransform(transform, x)
						out[i] = parallelOutcome[R]{value: r, err: err}
					}
					select {
					case batches <- parallelBatch[R]{idx: job.idx, items: out}:
					case <-ctx.Done():
					}
				}
			})
		}

		feeder := conc.NewWaitGroup()
		feeder.Go(func() {
			defer close(jobs)
			idx := 0
			batch := make([]T, 0, cfg.batchSize)
			for x := range v.Seq() {
				if canceled.Load() {
					return
				}
				batch = append(batch, x)
				if len(batch) < cfg.batchSize {
					continue
				}
				select {
				case jobs <- parallelJob[T]{idx: idx, items: batch}:
				case <-ctx.Done():
					return
				}
				idx++
				batch = make([]T, 0, cfg.batchSize)
			}
			if len(batch) > 0 {
				select {
				case jobs <- parallelJob[T]{idx: idx, items: batch}:
				case <-ctx.Done():
				}
			}
		})

		// Close batches once every worker has drained its jobs, so the
		// collector loop below terminates.
		go func() {
			workers.Wait()
			close(batches)
		}()

		// The feeder must be stopped before returning, otherwise it
		// races with the caller over the source sequence.
		defer func() {
			canceled.Store(true)
			cancel()
			feeder.Wait()
		}()

		emit := func(items []parallelOutcome[R]) bool {
			for _, o := range items {
				if !yield(o.value, o.err) {
					return false
				}
			}
			return true
		}

		if !cfg.orderStable {
			for b := range batches {
				if !emit(b.items) {
					return
				}
			}
			return
		}

		// Ordered mode: batches finishing out of turn wait in pending
		// until their predecessors have been emitted.
		pending := make(map[int][]parallelOutcome[R])
		next := 0
		for b := range batches {
			if b.idx != next {
				pending[b.idx] = b.items
				continue
			}
			if !emit(b.items) {
				return
			}
			next++
			for {
				items, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if !emit(items) {
					return
				}
				next++
			}
		}
	}
}

func applyTransform[T, R any](transform func(T) (R, error), x T) (r R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in transform: %v", p)
		}
	}()
	return transform(x)
}

// ParallelForEach runs fn on every element of v using up to workers
// goroutines and returns the collected errors, combined. Cancelling ctx
// stops the feeding of further elements; elements already submitted
// still run to completion.
func ParallelForEach[T any](ctx context.Context, v View[T], fn func(context.Context, T) error, workers int) error {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := pool.New().WithMaxGoroutines(workers).WithErrors().WithContext(ctx)
	for x := range v.Seq() {
		if ctx.Err() != nil {
			break
		}
		p.Go(func(ctx context.Context) error {
			return fn(ctx, x)
		})
	}
	return p.Wait()
}
