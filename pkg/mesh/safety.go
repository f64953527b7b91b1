package mesh

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/numeric"
)

// IsTopologicallySafe reports whether collapsing edge would preserve
// manifoldness: the edge's two endpoints must share exactly two common
// 1-ring neighbours (the two across-the-edge apex vertices), or exactly
// one if the edge is on the boundary.
func IsTopologicallySafe(m *Mesh, edge EdgeId) bool {
	c := edge.Corner()
	o := m.CornerOpposite(c)
	u := m.CornerVertex(c.Previous())
	v := m.CornerVertex(c.Next())

	nu := neighborVertices(m, u)
	nv := neighborVertices(m, v)

	common := 0
	for id := range nu {
		if id == v {
			continue
		}
		if nv[id] {
			common++
		}
	}
	if o == NilCorner {
		return common == 1
	}
	return common == 2
}

// IsGeometricallySafe reports whether collapsing edge to point would
// keep every surviving incident face within quality and normal-flip
// tolerance: post-collapse quality >= minQuality*pre-collapse quality,
// post-collapse normal dot pre-collapse normal >= 0.7, and post-collapse
// area > epsilon.
func IsGeometricallySafe(m *Mesh, edge EdgeId, point geom.Vec3, minQuality float64) bool {
	c := edge.Corner()
	o := m.CornerOpposite(c)
	u := m.CornerVertex(c.Previous())
	v := m.CornerVertex(c.Next())
	removedFace1 := c.Face()
	removedFace2 := FaceId(-1)
	if o != NilCorner {
		removedFace2 = o.Face()
	}

	check := func(vc CornerId, replaced VertexId) bool {
		f := vc.Face()
		if f == removedFace1 || f == removedFace2 {
			return true
		}
		vs := m.FaceVertices(f)
		old := m.FaceTriangle(f)
		pos := [3]geom.Vec3{m.Position(vs[0]), m.Position(vs[1]), m.Position(vs[2])}
		for i, vv := range vs {
			if vv == replaced {
				pos[i] = point
			}
		}
		newTri := geom.Triangle3{A: pos[0], B: pos[1], C: pos[2]}
		if newTri.Area() <= numeric.Epsilon {
			return false
		}
		oldQ := old.Quality()
		newQ := newTri.Quality()
		if oldQ > numeric.Epsilon && newQ < minQuality*oldQ {
			return false
		}
		if geom.Dot(old.Normal(), newTri.Normal()) < 0.7 {
			return false
		}
		return true
	}

	for _, vc := range cornersAroundVertex(m, m.VertexCorner(u)) {
		if !check(vc, u) {
			return false
		}
	}
	for _, vc := range cornersAroundVertex(m, m.VertexCorner(v)) {
		if !check(vc, v) {
			return false
		}
	}
	return true
}

// WillCollapseAffectBoundary reports whether collapsing edge touches the
// mesh boundary: either the edge itself is a boundary edge, or either
// endpoint is incident to some other boundary edge.
func WillCollapseAffectBoundary(m *Mesh, edge EdgeId) bool {
	c := edge.Corner()
	if m.CornerOpposite(c) == NilCorner {
		return true
	}
	u := m.CornerVertex(c.Previous())
	v := m.CornerVertex(c.Next())
	return isVertexOnBoundary(m, u) || isVertexOnBoundary(m, v)
}

// IsSafe combines topological and geometric safety, plus (when
// preserveBoundary is set) a boundary-touch rejection. All three are
// required before a collapse proceeds.
func IsSafe(m *Mesh, edge EdgeId, point geom.Vec3, minQuality float64, preserveBoundary bool) bool {
	if !IsTopologicallySafe(m, edge) {
		return false
	}
	if !IsGeometricallySafe(m, edge, point, minQuality) {
		return false
	}
	if preserveBoundary && WillCollapseAffectBoundary(m, edge) {
		return false
	}
	return true
}
