package Visit

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Ranges splits [0, n) into chunks of Config.MinChunk consecutive units and calls f once per chunk from up to Config.Workers goroutines. Workers keep claiming the next unclaimed chunk until none is left, so every unit is passed to f exactly once.
// Ranges returns after all calls to f have returned. There is no cancellation. f must be safe to call concurrently for disjoint ranges.
func Ranges(n int, f func(lo, hi int), opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	chunks := (n-1)/cfg.MinChunk + 1
	workers := min(cfg.Workers, chunks)
	cfg.Logger.Debug("parallel pass",
		zap.Int("units", n),
		zap.Int("chunkSize", cfg.MinChunk),
		zap.Int("chunks", chunks),
		zap.Int("workers", workers))

	var claimed atomic.Int64
	work := func() {
		for {
			c := int(claimed.Add(1) - 1)
			if c >= chunks {
				return
			}
			lo := c * cfg.MinChunk
			f(lo, min(lo+cfg.MinChunk, n))
		}
	}
	if workers == 1 {
		work()
		return nil
	}

	pool := cfg.Pool
	if pool == nil {
		if pool, err = ants.NewPool(workers - 1); err != nil {
			return errors.Wrap(err, "creating worker pool")
		}
		defer pool.Release()
	}
	wg := sync.WaitGroup{}
	for i := 1; i < workers; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			work()
		}); err != nil {
			//the caller's own worker picks up the chunks, so nothing is lost.
			wg.Done()
			cfg.Logger.Warn("worker not started", zap.Int("worker", i), zap.Error(err))
			break
		}
	}
	work()
	wg.Wait()
	return nil
}
