package resource

import (
	"log/slog"

	"github.com/gogpu/texspec"
)

// DefaultCapacity is the number of idle textures a pool keeps by default.
const DefaultCapacity = 64

// PoolOption configures a Pool during creation.
//
// Example:
//
//	pool, err := resource.NewPool(alloc,
//		resource.WithCapacity(16),
//		resource.WithLogger(slog.Default()))
type PoolOption func(*poolOptions)

type poolOptions struct {
	capacity int
	logger   *slog.Logger
}

func defaultPoolOptions() poolOptions {
	return poolOptions{
		capacity: DefaultCapacity,
		logger:   nil, // texspec.Logger() at call time
	}
}

// WithCapacity sets how many idle textures the pool keeps before it starts
// destroying the least recently returned ones. Zero keeps none.
// Negative values are treated as zero.
func WithCapacity(n int) PoolOption {
	return func(o *poolOptions) {
		o.capacity = max(n, 0)
	}
}

// WithLogger sets the logger for pool events. By default the pool logs
// through texspec.Logger.
func WithLogger(l *slog.Logger) PoolOption {
	return func(o *poolOptions) {
		o.logger = l
	}
}

func (o poolOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return texspec.Logger()
}
