package astar

import (
	"math"
	"strconv"
	"strings"
)

// Zero estimates nothing: with it, A* expands vertices in pure g-score
// order and is exactly Dijkstra's algorithm. Trivially admissible.
func Zero(_, _ string) float64 { return 0 }

// Manhattan estimates Σ|aᵢ−bᵢ| over coordinate vertex IDs.
//
// Vertex IDs are interpreted as comma-separated numeric coordinates
// ("3,4", "1,2,5", ...), the encoding gridgraph emits. A single numeric
// component degrades to |a−b| on scalars. IDs that do not parse, or whose
// dimensions differ, estimate 0, reducing A* to Dijkstra for those pairs.
//
// Admissible whenever edge weights are at least the coordinate-space step
// cost (e.g. unit-weight 4-connected grids).
func Manhattan(from, to string) float64 {
	a, b, ok := coords(from, to)
	if !ok {
		return 0
	}

	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// Euclidean estimates sqrt(Σ(aᵢ−bᵢ)²) over coordinate vertex IDs, with the
// same ID interpretation and fallback as Manhattan.
//
// Never exceeds Manhattan, so it is admissible wherever Manhattan is,
// including 8-connected grids with unit diagonals, where Manhattan is not.
func Euclidean(from, to string) float64 {
	a, b, ok := coords(from, to)
	if !ok {
		return 0
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// coords parses two vertex IDs as equal-dimension numeric coordinate
// vectors. ok is false when either fails to parse or dimensions differ.
func coords(from, to string) (a, b []float64, ok bool) {
	a, ok = parseCoords(from)
	if !ok {
		return nil, nil, false
	}
	b, ok = parseCoords(to)
	if !ok || len(a) != len(b) {
		return nil, nil, false
	}

	return a, b, true
}

// parseCoords splits id on commas and parses each component as a float.
func parseCoords(id string) ([]float64, bool) {
	parts := strings.Split(id, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}
