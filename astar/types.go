package astar

import (
	"context"
	"errors"

	"github.com/dmelnyk/wander/metrics"
)

// Sentinel errors for A* execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrNilHeuristic is returned if no heuristic function is supplied.
	// Use Zero explicitly to run A* as Dijkstra.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from one vertex to another.
// It must return a non-negative value.
//
// For the optimality guarantee the heuristic must be admissible (never
// overestimate the true remaining cost); for best efficiency it should also
// be consistent (respect the triangle inequality across edges). The engine
// cannot verify either property; they are the caller's obligation.
type Heuristic func(from, to string) float64

// Option configures A* behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize A* execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, caps how many vertices may be finalized
	// (moved to the closed set). When the cap is reached the search stops
	// and reports "no path found"; Result.Expanded equals the cap so
	// callers can tell a budget stop from true exhaustion.
	MaxExpansions int

	// OnExpand is called when a vertex is finalized (enters the closed
	// set), with its final cost-from-start.
	OnExpand func(id string, gScore float64)

	// OnDiscover is called when a vertex is discovered or rediscovered
	// with an improved cost, right before it is pushed into the open set.
	OnDiscover func(id string, gScore, fScore float64)

	// Metrics receives operation counts. Defaults to metrics.Nop.
	Metrics metrics.Collector
}

// DefaultOptions returns Options with background context, no expansion cap,
// no-op hooks, and discarded metrics.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnExpand:   func(string, float64) {},
		OnDiscover: func(string, float64, float64) {},
		Metrics:    metrics.Nop,
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

// WithMaxExpansions caps the number of finalized vertices. n <= 0 disables
// the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxExpansions = n
		}
	}
}

// WithOnExpand registers a callback fired when a vertex is finalized.
func WithOnExpand(fn func(id string, gScore float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback fired when a vertex is (re)discovered
// with an improved cost.
func WithOnDiscover(fn func(id string, gScore, fScore float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
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

// Result holds the outcome of one A* search.
type Result struct {
	// Path is the minimum-cost path start..target inclusive, or nil when
	// no path exists. A nil Path is a normal outcome, not an error.
	Path []string

	// Cost is the total weight of Path (0 when Path is nil).
	Cost float64

	// Expanded counts vertices finalized during the search, a rough
	// measure of how much work the heuristic saved.
	Expanded int
}

// Found reports whether the search reached the target.
func (r *Result) Found() bool { return r.Path != nil }
