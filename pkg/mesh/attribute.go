package mesh

// attributeTable is implemented by every typed attribute map so the
// owning Mesh can keep them sized alongside its own arrays as vertices,
// faces, or corners are added.
type attributeTable interface {
	grow(n int)
}

func (m *Mesh) growAttrTables(tables *[]attributeTable) {
	n := 0
	switch tables {
	case &m.vertAttrs:
		n = len(m.vertices)
	case &m.faceAttrs:
		n = len(m.corners) / 3
	case &m.cornAttrs:
		n = len(m.corners)
	}
	for _, t := range *tables {
		t.grow(n)
	}
}

// VertexAttribute is a typed, per-vertex side table keyed by VertexId,
// automatically resized as the mesh gains vertices.
type VertexAttribute[T any] struct {
	mesh *Mesh
	data []T
	zero T
}

// NewVertexAttribute creates a vertex attribute table on m, initialised
// to zero for all existing vertices, and registers it so future
// addVertex calls keep it sized.
func NewVertexAttribute[T any](m *Mesh, zero T) *VertexAttribute[T] {
	a := &VertexAttribute[T]{mesh: m, zero: zero}
	a.grow(len(m.vertices))
	m.vertAttrs = append(m.vertAttrs, a)
	return a
}

func (a *VertexAttribute[T]) grow(n int) {
	for len(a.data) < n {
		a.data = append(a.data, a.zero)
	}
}

// Get returns the value stored for vertex v.
func (a *VertexAttribute[T]) Get(v VertexId) T { return a.data[v] }

// Set stores val for vertex v.
func (a *VertexAttribute[T]) Set(v VertexId, val T) { a.data[v] = val }

// FaceAttribute is a typed, per-face side table keyed by FaceId.
type FaceAttribute[T any] struct {
	mesh *Mesh
	data []T
	zero T
}

// NewFaceAttribute creates a face attribute table on m.
func NewFaceAttribute[T any](m *Mesh, zero T) *FaceAttribute[T] {
	a := &FaceAttribute[T]{mesh: m, zero: zero}
	a.grow(len(m.corners) / 3)
	m.faceAttrs = append(m.faceAttrs, a)
	return a
}

func (a *FaceAttribute[T]) grow(n int) {
	for len(a.data) < n {
		a.data = append(a.data, a.zero)
	}
}

// Get returns the value stored for face f.
func (a *FaceAttribute[T]) Get(f FaceId) T { return a.data[f] }

// Set stores val for face f.
func (a *FaceAttribute[T]) Set(f FaceId, val T) { a.data[f] = val }

// CornerAttribute is a typed, per-corner side table keyed by CornerId.
type CornerAttribute[T any] struct {
	mesh *Mesh
	data []T
	zero T
}

// NewCornerAttribute creates a corner attribute table on m.
func NewCornerAttribute[T any](m *Mesh, zero T) *CornerAttribute[T] {
	a := &CornerAttribute[T]{mesh: m, zero: zero}
	a.grow(len(m.corners))
	m.cornAttrs = append(m.cornAttrs, a)
	return a
}

func (a *CornerAttribute[T]) grow(n int) {
	for len(a.data) < n {
		a.data = append(a.data, a.zero)
	}
}

// Get returns the value stored for corner c.
func (a *CornerAttribute[T]) Get(c CornerId) T { return a.data[c] }

// Set stores val for corner c.
func (a *CornerAttribute[T]) Set(c CornerId, val T) { a.data[c] = val }
