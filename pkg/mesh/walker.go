package mesh

// CornerWalker is a cursor for traversing corners of a Mesh. Any
// mark/clear bookkeeping needed during traversal lives in an external
// visitor, not on the Corner itself.
type CornerWalker struct {
	mesh   *Mesh
	corner CornerId
}

// WalkerFromCorner creates a walker positioned at the given corner.
func WalkerFromCorner(m *Mesh, c CornerId) *CornerWalker {
	return &CornerWalker{mesh: m, corner: c}
}

// WalkerFromVertex creates a walker positioned at one of v's corners.
func WalkerFromVertex(m *Mesh, v VertexId) *CornerWalker {
	return &CornerWalker{mesh: m, corner: m.VertexCorner(v)}
}

// SetCurrentCorner jumps the walker directly to corner c.
func (w *CornerWalker) SetCurrentCorner(c CornerId) *CornerWalker {
	w.corner = c
	return w
}

// MoveToNext advances to the next corner within the current triangle.
func (w *CornerWalker) MoveToNext() *CornerWalker {
	w.corner = w.corner.Next()
	return w
}

// MoveToPrevious advances to the previous corner within the current
// triangle.
func (w *CornerWalker) MoveToPrevious() *CornerWalker {
	w.corner = w.corner.Previous()
	return w
}

// MoveToOpposite moves to the opposite corner. Panics if the current
// corner is on the mesh boundary (no opposite) — callers must check
// CanMoveToOpposite first when boundary-ness is possible.
func (w *CornerWalker) MoveToOpposite() *CornerWalker {
	o := w.mesh.CornerOpposite(w.corner)
	if o == NilCorner {
		panic("mesh: move to opposite of a boundary corner")
	}
	w.corner = o
	return w
}

// CanMoveToOpposite reports whether the current corner has an opposite.
func (w *CornerWalker) CanMoveToOpposite() bool {
	return w.mesh.CornerOpposite(w.corner) != NilCorner
}

// SwingRight swings around the vertex of the current corner toward the
// triangle on the right: previous, opposite, previous. Panics at a
// boundary; use TrySwingRight when that is possible.
func (w *CornerWalker) SwingRight() *CornerWalker {
	return w.MoveToPrevious().MoveToOpposite().MoveToPrevious()
}

// TrySwingRight attempts SwingRight, leaving the walker at its starting
// position and returning false if the adjoining corner has no opposite
// (i.e. the walker has reached the boundary in that direction).
func (w *CornerWalker) TrySwingRight() bool {
	w.MoveToPrevious()
	if o := w.mesh.CornerOpposite(w.corner); o != NilCorner {
		w.SetCurrentCorner(o).MoveToPrevious()
		return true
	}
	w.MoveToNext()
	return false
}

// SwingLeft swings around the vertex of the current corner toward the
// triangle on the left: next, opposite, next.
func (w *CornerWalker) SwingLeft() *CornerWalker {
	return w.MoveToNext().MoveToOpposite().MoveToNext()
}

// TrySwingLeft attempts SwingLeft, returning false and leaving the
// walker in place if blocked by a boundary.
func (w *CornerWalker) TrySwingLeft() bool {
	w.MoveToNext()
	if o := w.mesh.CornerOpposite(w.corner); o != NilCorner {
		w.SetCurrentCorner(o).MoveToNext()
		return true
	}
	w.MoveToPrevious()
	return false
}

// CornerID returns the walker's current corner.
func (w *CornerWalker) CornerID() CornerId { return w.corner }

// Vertex returns the destination vertex of the current corner.
func (w *CornerWalker) Vertex() VertexId { return w.mesh.CornerVertex(w.corner) }

// NextCornerID returns the id of the next corner without moving.
func (w *CornerWalker) NextCornerID() CornerId { return w.corner.Next() }

// PreviousCornerID returns the id of the previous corner without moving.
func (w *CornerWalker) PreviousCornerID() CornerId { return w.corner.Previous() }

// OppositeCornerID returns the id of the opposite corner (NilCorner on
// the boundary) without moving.
func (w *CornerWalker) OppositeCornerID() CornerId { return w.mesh.CornerOpposite(w.corner) }

// OneRing returns the neighbour vertices of the start corner's vertex,
// walking its fan by repeated SwingRight until back at the start or at a
// boundary (in which case it also walks left from the start to pick up
// the remaining fan).
func OneRing(m *Mesh, start CornerId) []VertexId {
	var ring []VertexId
	w := WalkerFromCorner(m, start)
	first := w.CornerID()
	seenBoundary := false
	for {
		ring = append(ring, m.CornerVertex(w.NextCornerID()))
		if !w.TrySwingRight() {
			seenBoundary = true
			break
		}
		if w.CornerID() == first {
			return ring
		}
	}
	if seenBoundary {
		w.SetCurrentCorner(first)
		ring = append(ring, m.CornerVertex(w.PreviousCornerID()))
		for w.TrySwingLeft() {
			ring = append(ring, m.CornerVertex(w.PreviousCornerID()))
		}
	}
	return ring
}
