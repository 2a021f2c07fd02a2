package core

// Neighbors returns the vertices adjacent to id paired with edge weights, in
// edge insertion order. For directed graphs only outgoing edges are listed.
// Unknown IDs yield an empty slice rather than an error: Neighbors is the hot
// read path of every search loop and missing vertices are a normal query.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) []Neighbor {
	order, ok := g.adjOrder[id]
	if !ok {
		return nil
	}

	out := make([]Neighbor, len(order))
	for i, nbr := range order {
		out[i] = Neighbor{ID: nbr, Weight: g.adjacency[id][nbr]}
	}

	return out
}

// NeighborIDs returns just the adjacent vertex IDs, in edge insertion order.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) []string {
	order, ok := g.adjOrder[id]
	if !ok {
		return nil
	}

	out := make([]string, len(order))
	copy(out, order)

	return out
}

// Degree returns the number of edges incident to id as seen from its
// adjacency row: out-degree for directed graphs, full degree for undirected
// ones (a self-loop counts once). Unknown IDs report 0.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	return len(g.adjOrder[id])
}

// Clone returns an independent copy of the graph topology. Payloads are
// copied by reference (shallow).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		vertices:  make(map[string]any, len(g.vertices)),
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		adjOrder:  make(map[string][]string, len(g.adjOrder)),
		edgeCount: g.edgeCount,
	}
	for id, payload := range g.vertices {
		c.vertices[id] = payload
	}
	for id, row := range g.adjacency {
		nrow := make(map[string]float64, len(row))
		for nbr, w := range row {
			nrow[nbr] = w
		}
		c.adjacency[id] = nrow
	}
	for id, order := range g.adjOrder {
		norder := make([]string, len(order))
		copy(norder, order)
		c.adjOrder[id] = norder
	}

	return c
}
