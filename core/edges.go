package core

// Edge describes one stored edge as reported by Edges.
// For undirected graphs each edge is reported once, with From/To in the
// orientation it was added.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// AddEdge connects u to v with the given weight.
// Both endpoints must already exist (ErrVertexNotFound); unknown vertices are
// never auto-created. Adding an edge that exists returns ErrDuplicateEdge.
// Negative or NaN weights return ErrBadWeight.
//
// For undirected graphs with u != v, both directions are established
// atomically. Self-loops (u == v) are permitted and stored once.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if !validWeight(weight) {
		return ErrBadWeight
	}
	if _, exists := g.adjacency[u][v]; exists {
		return ErrDuplicateEdge
	}

	g.adjacency[u][v] = weight
	g.adjOrder[u] = append(g.adjOrder[u], v)
	if !g.directed && u != v {
		g.adjacency[v][u] = weight
		g.adjOrder[v] = append(g.adjOrder[v], u)
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge u→v. For undirected graphs the mirrored edge
// v→u is removed in the same call. Returns ErrVertexNotFound when an endpoint
// is missing and ErrEdgeNotFound when the edge does not exist.
// Complexity: O(d) due to order-list splicing.
func (g *Graph) RemoveEdge(u, v string) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, exists := g.adjacency[u][v]; !exists {
		return ErrEdgeNotFound
	}

	delete(g.adjacency[u], v)
	g.adjOrder[u] = spliceOut(g.adjOrder[u], v)
	if !g.directed && u != v {
		delete(g.adjacency[v], u)
		g.adjOrder[v] = spliceOut(g.adjOrder[v], u)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge u→v exists. Unknown endpoints report
// false rather than failing.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeWeight returns the weight of edge u→v.
// Returns ErrEdgeNotFound when the edge (or either endpoint) is absent.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// EdgeCount returns the number of logical edges: each AddEdge that succeeded
// and was not removed counts once, regardless of directedness.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every stored edge. Undirected edges are reported once, in
// the orientation they were added. Enumeration follows Vertices order for
// the source and insertion order per source.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	seen := make(map[[2]string]bool, g.edgeCount)
	for _, u := range g.Vertices() {
		for _, v := range g.adjOrder[u] {
			if !g.directed {
				if seen[[2]string{v, u}] {
					continue
				}
				seen[[2]string{u, v}] = true
			}
			out = append(out, Edge{From: u, To: v, Weight: g.adjacency[u][v]})
		}
	}

	return out
}
