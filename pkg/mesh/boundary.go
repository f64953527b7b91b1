package mesh

// BoundaryRing identifies a single closed loop of boundary edges by the
// corner opposite to one of its edges.
type BoundaryRing struct {
	corner CornerId
}

// BoundaryRings enumerates every closed boundary loop in the mesh.
func (m *Mesh) BoundaryRings() []BoundaryRing {
	var rings []BoundaryRing
	visited := make(map[CornerId]bool)

	for f := 0; f < len(m.corners)/3; f++ {
		if m.corners[3*f].Deleted {
			continue
		}
		for local := 0; local < 3; local++ {
			c := m.FaceCorner(FaceId(f), local)
			e := NewEdgeId(c, m.CornerOpposite(c))
			ec := e.Corner()
			if visited[ec] {
				continue
			}
			visited[ec] = true

			if m.CornerOpposite(ec) != NilCorner {
				continue
			}
			ring := BoundaryRing{corner: ec}
			rings = append(rings, ring)
			m.WalkBoundary(ring, func(edge EdgeId) bool {
				visited[edge.Corner()] = true
				return true
			})
		}
	}
	return rings
}

// WalkBoundary visits every edge of ring in order, calling visit for
// each; visit returns false to stop early.
func (m *Mesh) WalkBoundary(ring BoundaryRing, visit func(EdgeId) bool) {
	if m.CornerOpposite(ring.corner) != NilCorner {
		return // not actually a boundary corner
	}
	if !visit(NewEdgeId(ring.corner, NilCorner)) {
		return
	}

	w := WalkerFromCorner(m, ring.corner)
	for {
		w.MoveToPrevious()
		for w.TrySwingRight() {
		}
		w.MoveToPrevious()

		if w.CornerID() == ring.corner {
			return
		}
		if !visit(NewEdgeId(w.CornerID(), m.CornerOpposite(w.CornerID()))) {
			return
		}
	}
}
