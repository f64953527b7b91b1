package mesh

import "github.com/chazu/lignin-geo/pkg/geom"

// cornersAroundVertex enumerates, starting from a corner known to have
// the vertex of interest as its destination, every corner in the mesh
// sharing that same destination vertex (one per incident face), by
// rotating with SwingRight until back at the start or blocked by a
// boundary, then (if blocked) rotating SwingLeft from the start to pick
// up the remaining fan.
func cornersAroundVertex(m *Mesh, start CornerId) []CornerId {
	out := []CornerId{start}
	w := WalkerFromCorner(m, start)
	for {
		if !w.TrySwingRight() {
			break
		}
		if w.CornerID() == start {
			return out
		}
		out = append(out, w.CornerID())
	}
	w.SetCurrentCorner(start)
	for w.TrySwingLeft() {
		out = append(out, w.CornerID())
	}
	return out
}

// neighborVertices returns the set of vertices directly edge-connected
// to v (its 1-ring), per the GLOSSARY definition.
func neighborVertices(m *Mesh, v VertexId) map[VertexId]bool {
	out := make(map[VertexId]bool)
	for _, c := range cornersAroundVertex(m, m.VertexCorner(v)) {
		out[m.CornerVertex(c.Next())] = true
		out[m.CornerVertex(c.Previous())] = true
	}
	return out
}

// isVertexOnBoundary reports whether v has an incident boundary edge.
func isVertexOnBoundary(m *Mesh, v VertexId) bool {
	start := m.VertexCorner(v)
	w := WalkerFromCorner(m, start)
	for {
		if !w.TrySwingRight() {
			return true
		}
		if w.CornerID() == start {
			return false
		}
	}
}

func (m *Mesh) deleteFace(f FaceId) {
	base := 3 * int32(f)
	m.corners[base].Deleted = true
	m.corners[base+1].Deleted = true
	m.corners[base+2].Deleted = true
}

// repairVertexCorner re-establishes vertices[v].Corner after an edit may
// have deleted the corner it used to reference, by scanning for any
// live corner whose destination is v. O(corner count); called only a
// bounded number of times per edit, not in a hot inner loop.
func (m *Mesh) repairVertexCorner(v VertexId) {
	cur := m.vertices[v].Corner
	if cur != NilCorner && !m.corners[cur].Deleted && m.corners[cur].Vertex == v {
		return
	}
	for i := range m.corners {
		if !m.corners[i].Deleted && m.corners[i].Vertex == v {
			m.vertices[v].Corner = CornerId(i)
			return
		}
	}
	m.vertices[v].Corner = NilCorner
}

// subdivideFace splits the triangle owned by apex (the corner whose own
// vertex is unaffected by the split) at newVert, inserted on the edge
// opposite apex (i.e. the edge between apex.Next()'s and apex.Previous()'s
// vertices). It mutates the existing face in place into
// (prevVertex, apexVertex, newVert) and allocates a new face
// (newVert, apexVertex, nextVertex). It returns the two corners whose
// opposite-edge now represents the two halves of the original split
// edge: prevHalf (the half adjacent to apex.Previous()'s vertex) and
// nextHalf (the half adjacent to apex.Next()'s vertex) — the caller
// cross-links these with the matching halves produced by subdividing
// the opposite face, if one exists.
func subdivideFace(m *Mesh, apex CornerId, newVert VertexId) (prevHalf, nextHalf CornerId) {
	prevC := apex.Previous()
	nextC := apex.Next()
	apexVertex := m.CornerVertex(apex)
	nextVertex := m.CornerVertex(nextC)

	oldPrevOpposite := m.CornerOpposite(prevC)

	// Existing face becomes (prevVertex, apexVertex, newVert).
	m.corners[nextC].Vertex = newVert

	newFace := m.addFace(newVert, apexVertex, nextVertex)
	newP := m.FaceCorner(newFace, 0) // newVert
	newA := m.FaceCorner(newFace, 1) // apexVertex (duplicate apex corner)
	newN := m.FaceCorner(newFace, 2) // nextVertex

	// newP inherits prevC's old external neighbour (edge apex-nextVertex,
	// untouched by the split).
	m.linkOpposite(newP, oldPrevOpposite)
	// prevC and newN now bound the brand-new internal edge apex-newVert.
	m.linkOpposite(prevC, newN)

	m.vertices[nextVertex].Corner = newN
	if m.vertices[newVert].Corner == NilCorner {
		m.vertices[newVert].Corner = newP
	}

	return apex, newA
}

// SplitEdge inserts point on edge, splitting both incident faces (or
// just one on a boundary edge). Returns the id of the newly created
// vertex.
func (m *Mesh) SplitEdge(edge EdgeId, point geom.Vec3) VertexId {
	c := edge.Corner()
	o := m.CornerOpposite(c)

	newVertex := m.addVertex(point, NilCorner)

	prevHalf1, nextHalf1 := subdivideFace(m, c, newVertex)

	if o != NilCorner {
		prevHalf2, nextHalf2 := subdivideFace(m, o, newVertex)
		// face1's prevHalf sits against apex.Previous()'s vertex, which
		// equals face2's apex.Next() vertex (shared edge, reversed) —
		// so it pairs with face2's nextHalf, and vice versa.
		m.linkOpposite(prevHalf1, nextHalf2)
		m.linkOpposite(nextHalf1, prevHalf2)
	}

	return newVertex
}

// CollapseEdge removes edge and merges its two endpoints into one
// vertex at point. The caller is responsible for checking IsSafe first;
// CollapseEdge itself performs no safety checks and will happily create
// a degenerate or non-manifold result if asked to. Returns the id of
// the surviving vertex.
func (m *Mesh) CollapseEdge(edge EdgeId, point geom.Vec3) VertexId {
	c := edge.Corner()
	o := m.CornerOpposite(c)
	prevC := c.Previous()
	nextC := c.Next()

	u := m.CornerVertex(prevC)
	v := m.CornerVertex(nextC)
	apexA := m.CornerVertex(c)
	var apexC VertexId = NilVertex

	ext1 := m.CornerOpposite(nextC)
	ext2 := m.CornerOpposite(prevC)
	m.linkOpposite(ext1, ext2)

	var po, noC CornerId = NilCorner, NilCorner
	if o != NilCorner {
		po = o.Previous()
		noC = o.Next()
		apexC = m.CornerVertex(o)
		ext3 := m.CornerOpposite(noC)
		ext4 := m.CornerOpposite(po)
		m.linkOpposite(ext3, ext4)
	}

	for _, cc := range cornersAroundVertex(m, nextC) {
		m.corners[cc].Vertex = u
	}

	m.deleteFace(c.Face())
	if o != NilCorner {
		m.deleteFace(o.Face())
	}

	m.vertices[u].Position = point
	m.vertices[v].Deleted = true

	m.repairVertexCorner(u)
	m.repairVertexCorner(apexA)
	if apexC != NilVertex {
		m.repairVertexCorner(apexC)
	}

	return u
}

// FlipEdge replaces the diagonal of the quadrilateral formed by the two
// triangles incident to edge with the other diagonal (connecting the
// two triangles' apex vertices). Returns false (a no-op) if edge is a
// boundary edge, since there is no second triangle to flip against.
func (m *Mesh) FlipEdge(edge EdgeId) bool {
	c := edge.Corner()
	o := m.CornerOpposite(c)
	if o == NilCorner {
		return false
	}

	p := c.Previous()
	n := c.Next()
	po := o.Previous()
	no := o.Next()

	apexA := m.CornerVertex(c)
	apexC := m.CornerVertex(o)

	ext2 := m.CornerOpposite(p)  // edge apexA-nextVertex(B), pre-flip
	ext4 := m.CornerOpposite(po) // edge apexC-prevVertex(P), pre-flip
	oldNVertex := m.CornerVertex(n)
	oldNoVertex := m.CornerVertex(no)

	m.corners[n].Vertex = apexC
	m.corners[no].Vertex = apexA

	// p and po now bound the new diagonal (apexA-apexC); c and o take
	// over the outer edges that po and p bounded before the flip, so they
	// are relinked to ext4 and ext2.
	m.linkOpposite(p, po)
	m.linkOpposite(o, ext2)
	m.linkOpposite(c, ext4)

	m.repairVertexCorner(oldNVertex)
	m.repairVertexCorner(oldNoVertex)

	return true
}

// SplitFace performs a 1->3 split of face at an interior point,
// replacing it with three triangles sharing the new vertex.
func (m *Mesh) SplitFace(face FaceId, point geom.Vec3) VertexId {
	c0 := m.FaceCorner(face, 0)
	c1 := m.FaceCorner(face, 1)
	c2 := m.FaceCorner(face, 2)

	v0 := m.CornerVertex(c0)
	v1 := m.CornerVertex(c1)
	v2 := m.CornerVertex(c2)

	ext0 := m.CornerOpposite(c0) // edge v1-v2
	ext1 := m.CornerOpposite(c1) // edge v2-v0

	nv := m.addVertex(point, NilCorner)

	// Reuse the original face as (v0, v1, nv); c2's opposite-edge
	// (v0,v1) is unaffected by the mutation and needs no relinking.
	m.corners[c2].Vertex = nv

	fb := m.addFace(v1, v2, nv)
	fbV1, fbV2, fbNv := m.FaceCorner(fb, 0), m.FaceCorner(fb, 1), m.FaceCorner(fb, 2)

	fc := m.addFace(v2, v0, nv)
	fcV2, fcV0, fcNv := m.FaceCorner(fc, 0), m.FaceCorner(fc, 1), m.FaceCorner(fc, 2)

	m.linkOpposite(c0, fbV2)    // edge v1-nv
	m.linkOpposite(c1, fcV2)    // edge nv-v0
	m.linkOpposite(fbV1, fcV0)  // edge nv-v2
	m.linkOpposite(fbNv, ext0)  // edge v1-v2 (original outer edge)
	m.linkOpposite(fcNv, ext1)  // edge v2-v0 (original outer edge)

	m.vertices[v2].Corner = fbV2
	m.vertices[nv].Corner = fbNv

	return nv
}
