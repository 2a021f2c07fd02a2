package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/dmelnyk/wander/metrics"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was encountered.
	// Dijkstra's greedy finalization is unsound with negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Options configures the behavior of one Dijkstra run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDistance stops exploring once the cheapest open vertex is farther
	// than this. Defaults to +Inf (no cap).
	MaxDistance float64

	// Metrics receives operation counts. Defaults to metrics.Nop.
	Metrics metrics.Collector
}

// DefaultOptions returns Options with background context, no distance cap,
// and discarded metrics.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
		Metrics:     metrics.Nop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance would
// exceed max are not finalized. Negative values are ignored.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max >= 0 {
			o.MaxDistance = max
		}
	}
}

// WithMetrics directs counter increments into c.
func WithMetrics(c metrics.Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Metrics = c
		}
	}
}

// Result holds single-source shortest-path data.
//
// Dist and Prev contain entries only for vertices reached from Source;
// absence from Dist means unreachable (there is no +Inf sentinel).
type Result struct {
	// Source is the vertex distances are measured from.
	Source string

	// Dist maps each reached vertex to its minimum cost from Source.
	Dist map[string]float64

	// Prev maps each reached vertex (except Source) to its predecessor on
	// a shortest path.
	Prev map[string]string
}

// PathTo reconstructs a shortest path Source..target inclusive.
// Returns nil when target was not reached, a normal outcome rather than an error.
func (r *Result) PathTo(target string) []string {
	if _, ok := r.Dist[target]; !ok {
		return nil
	}

	path := []string{target}
	for cur := target; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
