package mesh

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/google/uuid"
)

// VertexFlags holds per-vertex boolean state that needs to survive
// traversal without being part of the core topology.
type VertexFlags struct {
	Boundary bool
}

// Vertex stores a position in R3, the id of one outgoing corner (used
// as a traversal entry point), and flag bits. Deletion is logical: a
// deleted vertex's Corner may be stale.
type Vertex struct {
	Position geom.Vec3
	Corner   CornerId
	Deleted  bool
	Flags    VertexFlags
}

// Corner stores the opposite corner (NilCorner for a boundary edge) and
// the destination vertex of this corner. Deletion is logical, always
// applied to all three corners of a face together.
type Corner struct {
	Opposite CornerId
	Vertex   VertexId
	Deleted  bool
}

// Mesh is a corner-table triangle mesh. Corners and vertices are never
// compacted; Positions and Indices produce dense arrays on request.
type Mesh struct {
	vertices []Vertex
	corners  []Corner
	id       uuid.UUID

	vertAttrs []attributeTable
	faceAttrs []attributeTable
	cornAttrs []attributeTable
}

// New returns an empty mesh with a fresh instance id.
func New() *Mesh {
	return &Mesh{id: uuid.New()}
}

// ID returns the mesh's opaque instance identifier, used for log
// correlation (String prints it) — never for addressing vertices or
// corners.
func (m *Mesh) ID() uuid.UUID { return m.id }

// VertexCount returns the number of live (non-deleted) vertices.
func (m *Mesh) VertexCount() int {
	n := 0
	for _, v := range m.vertices {
		if !v.Deleted {
			n++
		}
	}
	return n
}

// FaceCount returns the number of live (non-deleted) faces.
func (m *Mesh) FaceCount() int {
	n := 0
	for f := 0; f < len(m.corners)/3; f++ {
		if !m.corners[3*f].Deleted {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the mesh has no live faces.
func (m *Mesh) IsEmpty() bool {
	return m.FaceCount() == 0
}

// RawVertexCount returns the total number of vertex slots, including
// logically deleted ones — for iteration over raw vertex ids.
func (m *Mesh) RawVertexCount() int { return len(m.vertices) }

// RawFaceCount returns the total number of face slots, including
// logically deleted ones.
func (m *Mesh) RawFaceCount() int { return len(m.corners) / 3 }

// VertexDeleted reports whether vertex v has been logically deleted.
func (m *Mesh) VertexDeleted(v VertexId) bool { return m.vertices[v].Deleted }

// FaceDeleted reports whether face f has been logically deleted.
func (m *Mesh) FaceDeleted(f FaceId) bool { return m.corners[3*int32(f)].Deleted }

// Position returns the position of vertex v.
func (m *Mesh) Position(v VertexId) geom.Vec3 { return m.vertices[v].Position }

// SetPosition updates the position of vertex v.
func (m *Mesh) SetPosition(v VertexId, p geom.Vec3) { m.vertices[v].Position = p }

// VertexCorner returns one corner whose destination is v.
func (m *Mesh) VertexCorner(v VertexId) CornerId { return m.vertices[v].Corner }

// CornerVertex returns the destination vertex of corner c.
func (m *Mesh) CornerVertex(c CornerId) VertexId { return m.corners[c].Vertex }

// CornerOpposite returns the opposite corner of c, or NilCorner on a
// boundary edge.
func (m *Mesh) CornerOpposite(c CornerId) CornerId { return m.corners[c].Opposite }

// FaceCorner returns the corner at local index (0,1,2) of face f.
func (m *Mesh) FaceCorner(f FaceId, local int) CornerId {
	return CornerId(int32(f)*3 + int32(local))
}

// FaceVertices returns the three destination vertices of face f in
// corner order.
func (m *Mesh) FaceVertices(f FaceId) [3]VertexId {
	return [3]VertexId{
		m.CornerVertex(m.FaceCorner(f, 0)),
		m.CornerVertex(m.FaceCorner(f, 1)),
		m.CornerVertex(m.FaceCorner(f, 2)),
	}
}

// FaceTriangle returns the geometric triangle of face f.
func (m *Mesh) FaceTriangle(f FaceId) geom.Triangle3 {
	vs := m.FaceVertices(f)
	return geom.Triangle3{A: m.Position(vs[0]), B: m.Position(vs[1]), C: m.Position(vs[2])}
}

// addVertex appends a new vertex and returns its id.
func (m *Mesh) addVertex(p geom.Vec3, corner CornerId) VertexId {
	id := VertexId(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{Position: p, Corner: corner})
	m.growAttrTables(&m.vertAttrs)
	return id
}

// addFace appends a new triangle (a,b,c by vertex id) with all three
// opposites initially NilCorner, and returns its face id.
func (m *Mesh) addFace(a, b, c VertexId) FaceId {
	f := FaceId(len(m.corners) / 3)
	base := CornerId(len(m.corners))
	m.corners = append(m.corners,
		Corner{Opposite: NilCorner, Vertex: a},
		Corner{Opposite: NilCorner, Vertex: b},
		Corner{Opposite: NilCorner, Vertex: c},
	)
	if m.vertices[a].Corner == NilCorner {
		m.vertices[a].Corner = base
	}
	if m.vertices[b].Corner == NilCorner {
		m.vertices[b].Corner = base + 1
	}
	if m.vertices[c].Corner == NilCorner {
		m.vertices[c].Corner = base + 2
	}
	m.growAttrTables(&m.faceAttrs)
	m.growAttrTables(&m.cornAttrs)
	m.growAttrTables(&m.cornAttrs)
	m.growAttrTables(&m.cornAttrs)
	return f
}

// linkOpposite sets a and b as mutual opposites, provided both are
// non-nil.
func (m *Mesh) linkOpposite(a, b CornerId) {
	if a != NilCorner {
		m.corners[a].Opposite = b
	}
	if b != NilCorner {
		m.corners[b].Opposite = a
	}
}

// Positions returns a dense slice of live vertex positions, suitable
// for STL writers or visualisation. The matching triangle index array is
// returned by Indices.
func (m *Mesh) Positions() []geom.Vec3 {
	out := make([]geom.Vec3, 0, m.VertexCount())
	for _, v := range m.vertices {
		if !v.Deleted {
			out = append(out, v.Position)
		}
	}
	return out
}

// Indices returns a dense, 0-based triangle index array over the same
// ordering Positions() produces.
func (m *Mesh) Indices() []uint32 {
	_, idToIndex := m.liveVertexMapping()
	out := make([]uint32, 0, m.FaceCount()*3)
	for f := 0; f < len(m.corners)/3; f++ {
		if m.corners[3*f].Deleted {
			continue
		}
		for local := 0; local < 3; local++ {
			v := m.corners[3*f+local].Vertex
			out = append(out, uint32(idToIndex[v]))
		}
	}
	return out
}

// liveVertexMapping returns the dense index each live vertex id maps to,
// and the reverse (dense index -> id).
func (m *Mesh) liveVertexMapping() (denseToId []VertexId, idToDense map[VertexId]int) {
	idToDense = make(map[VertexId]int, len(m.vertices))
	denseToId = make([]VertexId, 0, len(m.vertices))
	for id, v := range m.vertices {
		if v.Deleted {
			continue
		}
		idToDense[VertexId(id)] = len(denseToId)
		denseToId = append(denseToId, VertexId(id))
	}
	return denseToId, idToDense
}
