package delaunay

import "github.com/chazu/lignin-geo/pkg/geom"

// triEdges returns the 3 undirected edges of a live triangle by id.
func (t *Triangulation) triEdges(id int) [3]edgeKey {
	tri := t.tris[id]
	return [3]edgeKey{
		undirected(tri[0], tri[1]),
		undirected(tri[1], tri[2]),
		undirected(tri[2], tri[0]),
	}
}

// trianglesSharing returns the (at most two) live triangle ids whose
// edge set includes key.
func (t *Triangulation) trianglesSharing(key edgeKey) []int {
	var ids []int
	for id := range t.tris {
		for _, e := range t.triEdges(id) {
			if e == key {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// oppositeVertex returns the vertex of triangle id not on edge key.
func oppositeVertex(tri [3]int, key edgeKey) int {
	for _, v := range tri {
		if v != key.a && v != key.b {
			return v
		}
	}
	return -1
}

// ConstrainEdge inserts the edge (uIdx,vIdx) — caller-space point
// indices, i.e. into Points() — as a hard constraint, flipping away
// every triangulation edge that crosses it until uv itself appears as
// an edge. Flips that would remove an already-constrained edge are
// forbidden. The flip loop is bounded to 4x the number of crossings
// found initially (at least 16 iterations) to guarantee termination on
// pathological inputs.
func (t *Triangulation) ConstrainEdge(uIdx, vIdx int) {
	u, v := uIdx+3, vIdx+3
	target := undirected(u, v)

	if t.hasEdge(target) {
		t.constrained[target] = true
		return
	}

	maxIters := 4 * t.countCrossing(u, v)
	if maxIters < 16 {
		maxIters = 16
	}

	for iter := 0; iter < maxIters; iter++ {
		if t.hasEdge(target) {
			t.constrained[target] = true
			return
		}
		key, ok := t.findCrossingEdge(u, v)
		if !ok {
			return
		}
		t.flipEdge(key)
	}
}

func (t *Triangulation) hasEdge(key edgeKey) bool {
	for id := range t.tris {
		for _, e := range t.triEdges(id) {
			if e == key {
				return true
			}
		}
	}
	return false
}

func (t *Triangulation) countCrossing(u, v int) int {
	n := 0
	pu, pv := t.points[u], t.points[v]
	for id := range t.tris {
		for _, e := range t.triEdges(id) {
			if e.a == u || e.a == v || e.b == u || e.b == v {
				continue
			}
			if geom.SegmentsIntersect(t.points[e.a], t.points[e.b], pu, pv) {
				n++
			}
		}
	}
	return n
}

func (t *Triangulation) findCrossingEdge(u, v int) (edgeKey, bool) {
	pu, pv := t.points[u], t.points[v]
	for id := range t.tris {
		for _, e := range t.triEdges(id) {
			if e.a == u || e.a == v || e.b == u || e.b == v {
				continue
			}
			if t.constrained[e] {
				continue
			}
			if geom.SegmentsIntersect(t.points[e.a], t.points[e.b], pu, pv) {
				return e, true
			}
		}
	}
	return edgeKey{}, false
}

// flipEdge replaces the diagonal of the quad formed by the two
// triangles sharing key with the other diagonal, if that flip produces
// two non-inverted triangles.
func (t *Triangulation) flipEdge(key edgeKey) bool {
	ids := t.trianglesSharing(key)
	if len(ids) != 2 {
		return false
	}
	id0, id1 := ids[0], ids[1]
	o0 := oppositeVertex(t.tris[id0], key)
	o1 := oppositeVertex(t.tris[id1], key)
	if o0 < 0 || o1 < 0 {
		return false
	}

	a, b := t.points[o0], t.points[o1]
	pa, pb := t.points[key.a], t.points[key.b]
	if geom.Orientation2D(a, pa, b) != geom.CounterClockwise || geom.Orientation2D(b, pb, a) != geom.CounterClockwise {
		return false // flip would invert one of the new triangles
	}

	delete(t.tris, id0)
	delete(t.tris, id1)
	t.tris[t.nextID] = [3]int{o0, key.a, o1}
	t.nextID++
	t.tris[t.nextID] = [3]int{o1, key.b, o0}
	t.nextID++
	return true
}
