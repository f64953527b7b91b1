package remesh

import "github.com/chazu/lignin-geo/pkg/mesh"

// allEdges returns every live edge's id, deduplicated across its two
// incident faces (one entry for interior edges, one for boundary
// edges).
func allEdges(m *mesh.Mesh) []mesh.EdgeId {
	seen := make(map[mesh.EdgeId]bool)
	var edges []mesh.EdgeId
	for f := mesh.FaceId(0); int(f) < m.RawFaceCount(); f++ {
		if m.FaceDeleted(f) {
			continue
		}
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

func edgeAlive(m *mesh.Mesh, e mesh.EdgeId) bool {
	return !m.FaceDeleted(e.Corner().Face())
}

func edgeEndpoints(m *mesh.Mesh, e mesh.EdgeId) (u, v mesh.VertexId) {
	c := e.Corner()
	return m.CornerVertex(c.Previous()), m.CornerVertex(c.Next())
}

// isBoundaryVertex reports whether any face fan around v has no
// opposite neighbour, mirroring pkg/mesh's unexported
// isVertexOnBoundary (reimplemented locally since it isn't exported).
func isBoundaryVertex(m *mesh.Mesh, v mesh.VertexId) bool {
	start := m.VertexCorner(v)
	if start == mesh.NilCorner {
		return false
	}
	w := mesh.WalkerFromCorner(m, start)
	first := w.CornerID()
	for {
		if !w.TrySwingRight() {
			return true
		}
		if w.CornerID() == first {
			return false
		}
	}
}

// valence returns the number of neighbours of v (its 1-ring size).
func valence(m *mesh.Mesh, v mesh.VertexId) int {
	c := m.VertexCorner(v)
	if c == mesh.NilCorner {
		return 0
	}
	return len(mesh.OneRing(m, c))
}
