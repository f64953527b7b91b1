// Package delaunay builds incremental 2D Delaunay triangulations (with
// an optional constrained-edge variant) via a super-triangle + cavity
// (Bowyer-Watson) construction, using this module's own
// geom.Orientation2D / geom.InCircle / geom.SegmentsIntersect
// predicates.
package delaunay

import (
	"math"

	"github.com/chazu/lignin-geo/pkg/geom"
)

const quantum = 1e-9

type edgeKey struct{ a, b int }

func undirected(a, b int) edgeKey {
	if a <= b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Triangulation holds the live triangle set over an internally-extended
// point array: indices 0,1,2 are the super-triangle, the rest mirror
// the caller's input order.
type Triangulation struct {
	points []geom.Vec2
	tris   map[int][3]int
	nextID int

	constrained map[edgeKey]bool
}

// Points returns the caller-visible point set (super-triangle vertices
// excluded).
func (t *Triangulation) Points() []geom.Vec2 { return t.points[3:] }

// Triangles returns the caller-visible triangles as indices into
// Points(), with any triangle touching the super-triangle removed.
func (t *Triangulation) Triangles() [][3]int {
	var out [][3]int
	for _, tri := range t.tris {
		if tri[0] < 3 || tri[1] < 3 || tri[2] < 3 {
			continue
		}
		out = append(out, [3]int{tri[0] - 3, tri[1] - 3, tri[2] - 3})
	}
	return out
}

func superTriangle(points []geom.Vec2) [3]geom.Vec2 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	d := math.Max(dx, dy) * 20
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	return [3]geom.Vec2{
		{X: cx - d, Y: cy - d},
		{X: cx + d, Y: cy - d},
		{X: cx, Y: cy + d},
	}
}

func quantizeVec2(p geom.Vec2) [2]int64 {
	return [2]int64{int64(p.X / quantum), int64(p.Y / quantum)}
}

// New builds a Delaunay triangulation of points: super-triangle, then
// cavity insertion of every point, then super-triangle removal
// (performed lazily by Triangles()). Duplicate points (within quantum)
// are silently ignored.
func New(points []geom.Vec2) *Triangulation {
	st := superTriangle(points)
	t := &Triangulation{
		points:      append([]geom.Vec2{st[0], st[1], st[2]}, points...),
		tris:        make(map[int][3]int),
		constrained: make(map[edgeKey]bool),
	}
	t.tris[t.nextID] = [3]int{0, 1, 2}
	t.nextID++

	seen := map[[2]int64]bool{quantizeVec2(st[0]): true, quantizeVec2(st[1]): true, quantizeVec2(st[2]): true}
	for i := range points {
		idx := i + 3
		q := quantizeVec2(t.points[idx])
		if seen[q] {
			continue
		}
		seen[q] = true
		t.insert(idx)
	}
	return t
}

// insert performs one Bowyer-Watson cavity insertion of point index p.
func (t *Triangulation) insert(p int) {
	pp := t.points[p]

	cavity := make(map[int]bool)
	for id, tri := range t.tris {
		a, b, c := t.points[tri[0]], t.points[tri[1]], t.points[tri[2]]
		if geom.Orientation2D(a, b, c) != geom.CounterClockwise {
			a, b = b, a // InCircle requires a CCW triangle
		}
		if geom.InCircle(a, b, c, pp) {
			cavity[id] = true
		}
	}
	if len(cavity) == 0 {
		return
	}

	edgeCount := make(map[edgeKey]int)
	type directed struct{ from, to int }
	var boundary []directed
	for id := range cavity {
		tri := t.tris[id]
		edges := [3]directed{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
		for _, e := range edges {
			edgeCount[undirected(e.from, e.to)]++
		}
		boundary = append(boundary, edges[:]...)
	}

	for id := range cavity {
		delete(t.tris, id)
	}

	for _, e := range boundary {
		if edgeCount[undirected(e.from, e.to)] != 1 {
			continue // shared by two cavity triangles, interior to the cavity
		}
		a, b, c := t.points[e.from], t.points[e.to], pp
		if geom.Orientation2D(a, b, c) != geom.CounterClockwise {
			continue // degenerate: p colinear with this boundary edge
		}
		t.tris[t.nextID] = [3]int{e.from, e.to, p}
		t.nextID++
	}
}
