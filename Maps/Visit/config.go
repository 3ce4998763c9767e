package Visit

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// DefaultMinChunk is the default number of buckets a worker claims at a time.
const DefaultMinChunk = 1024

// ErrBadConfig is returned for options that can't schedule any work.
var ErrBadConfig = errors.New("bad visit config")

// Config of a parallel pass.
type Config struct {
	// MinChunk is the number of consecutive units, buckets for Run, handed out per claim. Smaller chunks balance load better, larger ones claim less often.
	MinChunk int
	// Workers is the maximum number of goroutines working on the pass, the calling goroutine included. It is clamped to the number of chunks.
	Workers int
	// Pool runs the workers. If nil, a pool is created for the pass and released when it ends.
	// Work submitted to a shared pool must not start another pass on the same pool and wait for it, or the pool can run out of workers.
	Pool   *ants.Pool
	Logger *zap.Logger
}

type Option func(*Config)

// WithMinChunk sets Config.MinChunk.
func WithMinChunk(n int) Option {
	return func(c *Config) {
		c.MinChunk = n
	}
}

// WithWorkers sets Config.Workers.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithPool sets Config.Pool.
func WithPool(p *ants.Pool) Option {
	return func(c *Config) {
		c.Pool = p
	}
}

// WithLogger sets Config.Logger. A nil logger keeps the default, which discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func newConfig(opts []Option) (Config, error) {
	c := Config{MinChunk: DefaultMinChunk, Workers: runtime.GOMAXPROCS(0), Logger: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	if c.MinChunk < 1 {
		return c, errors.Wrapf(ErrBadConfig, "min chunk %d", c.MinChunk)
	}
	if c.Workers < 1 {
		return c, errors.Wrapf(ErrBadConfig, "%d workers", c.Workers)
	}
	return c, nil
}
