package decimate

import "github.com/chazu/lignin-geo/pkg/mesh"

// facesAroundVertex collects the (deduplicated) faces incident to v by
// swinging a corner walker around it, mirroring pkg/mesh's unexported
// cornersAroundVertex (swing right until back at start or a boundary,
// then swing left from the start to pick up the rest of the fan) —
// reimplemented here since that helper isn't exported across package
// boundaries.
func facesAroundVertex(m *mesh.Mesh, v mesh.VertexId) []mesh.FaceId {
	start := m.VertexCorner(v)
	if start == mesh.NilCorner {
		return nil
	}

	seen := make(map[mesh.FaceId]bool)
	var faces []mesh.FaceId
	add := func(c mesh.CornerId) {
		f := c.Face()
		if !seen[f] {
			seen[f] = true
			faces = append(faces, f)
		}
	}

	w := mesh.WalkerFromCorner(m, start)
	first := w.CornerID()
	for {
		add(w.CornerID())
		if !w.TrySwingRight() {
			w.SetCurrentCorner(first)
			for w.TrySwingLeft() {
				add(w.CornerID())
			}
			break
		}
		if w.CornerID() == first {
			break
		}
	}
	return faces
}

// edgesAroundVertex returns the deduplicated edges of every face
// incident to v.
func edgesAroundVertex(m *mesh.Mesh, v mesh.VertexId) []mesh.EdgeId {
	seen := make(map[mesh.EdgeId]bool)
	var edges []mesh.EdgeId
	for _, f := range facesAroundVertex(m, v) {
		for local := 0; local < 3; local++ {
			c := m.FaceCorner(f, local)
			e := mesh.NewEdgeId(c, m.CornerOpposite(c))
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// edgeEndpoints returns the two vertices of edge, using the same
// prev/next convention as mesh.CollapseEdge itself (the surviving
// vertex of a collapse is always the "u" returned here).
func edgeEndpoints(m *mesh.Mesh, edge mesh.EdgeId) (u, v mesh.VertexId) {
	c := edge.Corner()
	return m.CornerVertex(c.Previous()), m.CornerVertex(c.Next())
}

// edgeAlive reports whether edge's underlying corner still belongs to
// a live face (i.e. hasn't been removed by a prior collapse).
func edgeAlive(m *mesh.Mesh, edge mesh.EdgeId) bool {
	return !m.FaceDeleted(edge.Corner().Face())
}
