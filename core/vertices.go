package core

import "sort"

// AddVertex inserts a vertex with an optional payload.
// Returns ErrEmptyVertexID for an empty ID and ErrDuplicateVertex when the
// vertex already exists; the payload of an existing vertex is never replaced
// implicitly (use SetPayload).
// Complexity: O(1).
func (g *Graph) AddVertex(id string, payload any) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}

	g.vertices[id] = payload
	g.adjacency[id] = make(map[string]float64)
	g.adjOrder[id] = nil

	return nil
}

// HasVertex reports whether the vertex exists. Empty ID reports false.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex together with all incident edges, in both
// directions, atomically. Returns ErrVertexNotFound when absent.
// Complexity: O(d) for undirected graphs; O(V+E) for directed graphs, since
// incoming edges have no reverse index and require a full adjacency scan.
func (g *Graph) RemoveVertex(id string) error {
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	if g.directed {
		// Outgoing edges vanish with the adjacency row.
		g.edgeCount -= len(g.adjacency[id])
		// Incoming edges must be hunted down row by row.
		for from := range g.adjacency {
			if from == id {
				continue
			}
			if _, ok := g.adjacency[from][id]; ok {
				delete(g.adjacency[from], id)
				g.adjOrder[from] = spliceOut(g.adjOrder[from], id)
				g.edgeCount--
			}
		}
	} else {
		// Every incident edge is mirrored; drop the mirror at each neighbor.
		for _, nbr := range g.adjOrder[id] {
			g.edgeCount--
			if nbr == id {
				continue // self-loop, stored once
			}
			delete(g.adjacency[nbr], id)
			g.adjOrder[nbr] = spliceOut(g.adjOrder[nbr], id)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)
	delete(g.adjOrder, id)

	return nil
}

// Payload returns the payload stored with the vertex, and whether the vertex
// exists. A nil payload on an existing vertex yields (nil, true).
// Complexity: O(1).
func (g *Graph) Payload(id string) (any, bool) {
	p, ok := g.vertices[id]

	return p, ok
}

// SetPayload replaces the payload of an existing vertex.
// Returns ErrVertexNotFound when absent.
// Complexity: O(1).
func (g *Graph) SetPayload(id string, payload any) error {
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	g.vertices[id] = payload

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The sorted order is a stable enumeration surface for reproducible outputs;
// it is unrelated to edge insertion order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// spliceOut removes the first occurrence of val from s, preserving order.
func spliceOut(s []string, val string) []string {
	for i, x := range s {
		if x == val {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
