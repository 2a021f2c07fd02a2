// Package metrics decouples instrumentation from the search algorithms.
//
// Each algorithm accepts a caller-provided Collector through its WithMetrics
// option and reports counters into it. The algorithms themselves hold no
// mutable instrumentation state, so two searches over the same graph never
// share or corrupt each other's counts. When no collector is supplied the
// algorithms fall back to Nop, which costs a no-op method call per event.
package metrics

// Collector receives counter increments from a running search.
// Implementations must be cheap: the hot loops call these per edge.
type Collector interface {
	// AddComparisons records n ordering comparisons (heap sifts, score checks).
	AddComparisons(n int)

	// AddOperations records n structural operations (enqueues, pops, expansions).
	AddOperations(n int)
}

// Counters is the plain Collector: two integers.
// Not safe for concurrent use; give each search call its own Counters.
type Counters struct {
	Comparisons int
	Operations  int
}

// AddComparisons implements Collector.
func (c *Counters) AddComparisons(n int) { c.Comparisons += n }

// AddOperations implements Collector.
func (c *Counters) AddOperations(n int) { c.Operations += n }

// Reset zeroes both counters so a Counters value can be reused across calls.
func (c *Counters) Reset() { c.Comparisons, c.Operations = 0, 0 }

// Nop discards everything. It is the default collector of every search.
var Nop Collector = nop{}

type nop struct{}

func (nop) AddComparisons(int) {}
func (nop) AddOperations(int)  {}
