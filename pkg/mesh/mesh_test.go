package mesh

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
)

func checkOppositeInvariant(t *testing.T, m *Mesh) {
	t.Helper()
	for c := 0; c < len(m.corners); c++ {
		cid := CornerId(c)
		if m.corners[c].Deleted {
			continue
		}
		o := m.CornerOpposite(cid)
		if o == NilCorner {
			continue
		}
		if m.corners[o].Deleted {
			t.Fatalf("corner %d opposite %d is deleted", c, o)
		}
		if m.CornerOpposite(o) != cid {
			t.Fatalf("opposite(%d)=%d but opposite(%d)=%d, not reciprocal", c, o, o, m.CornerOpposite(o))
		}
		if m.CornerVertex(cid.Next()) != m.CornerVertex(o.Previous()) {
			t.Fatalf("corner %d / opposite %d: next/prev vertex mismatch", c, o)
		}
	}
}

func tetrahedron(t *testing.T) *Mesh {
	t.Helper()
	points := []geom.Vec3{
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(1, 0, 0),
		geom.NewVec3(0, 1, 0),
		geom.NewVec3(0, 0, 1),
	}
	indices := []int{
		0, 1, 2,
		0, 3, 1,
		0, 2, 3,
		1, 3, 2,
	}
	m, err := FromVerticesAndFaces(points, indices)
	if err != nil {
		t.Fatalf("FromVerticesAndFaces: %v", err)
	}
	return m
}

func TestTetrahedronConstruction(t *testing.T) {
	m := tetrahedron(t)
	if m.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 4 {
		t.Fatalf("expected 4 faces, got %d", m.FaceCount())
	}
	checkOppositeInvariant(t, m)
	if len(m.BoundaryRings()) != 0 {
		t.Fatal("closed tetrahedron should have no boundary rings")
	}
}

// TestTetrahedronCollapse matches spec.md scenario 1: collapsing edge
// (0,1) of a tetrahedron should leave 2 faces, 3 vertices, manifold.
func TestTetrahedronCollapse(t *testing.T) {
	m := tetrahedron(t)

	// face 0 is (0,1,2); its local corner 2 is the apex opposite edge (0,1).
	apex := m.FaceCorner(FaceId(0), 2)
	edge := NewEdgeId(apex, m.CornerOpposite(apex))

	if m.CornerVertex(edge.Corner().Previous()) != VertexId(0) && m.CornerVertex(edge.Corner().Next()) != VertexId(0) {
		t.Fatalf("expected edge to touch vertex 0")
	}

	m.CollapseEdge(edge, geom.NewVec3(0.5, 0, 0))

	if got := m.FaceCount(); got != 2 {
		t.Fatalf("expected 2 remaining faces, got %d", got)
	}
	if got := m.VertexCount(); got != 3 {
		t.Fatalf("expected 3 remaining vertices, got %d", got)
	}
	checkOppositeInvariant(t, m)
}

func unitSquare(t *testing.T) *Mesh {
	t.Helper()
	points := []geom.Vec3{
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(1, 0, 0),
		geom.NewVec3(1, 1, 0),
		geom.NewVec3(0, 1, 0),
	}
	indices := []int{
		0, 1, 2,
		0, 2, 3,
	}
	m, err := FromVerticesAndFaces(points, indices)
	if err != nil {
		t.Fatalf("FromVerticesAndFaces: %v", err)
	}
	return m
}

func TestBoundaryRings(t *testing.T) {
	m := unitSquare(t)
	checkOppositeInvariant(t, m)

	rings := m.BoundaryRings()
	if len(rings) != 1 {
		t.Fatalf("expected 1 boundary ring, got %d", len(rings))
	}
	count := 0
	m.WalkBoundary(rings[0], func(EdgeId) bool {
		count++
		return true
	})
	if count != 4 {
		t.Fatalf("expected 4 boundary edges, got %d", count)
	}
}

func TestFlipEdge(t *testing.T) {
	m := unitSquare(t)
	// The shared edge between the two triangles is (0,2) (the diagonal).
	apex := m.FaceCorner(FaceId(0), 1) // face0 = (0,1,2); local 1 has vertex 1, opposite edge (2,0)
	edge := NewEdgeId(apex, m.CornerOpposite(apex))
	if m.CornerOpposite(edge.Corner()) == NilCorner {
		t.Fatal("expected shared diagonal to have an opposite")
	}

	ok := m.FlipEdge(edge)
	if !ok {
		t.Fatal("expected flip to succeed on interior edge")
	}
	checkOppositeInvariant(t, m)
	if m.FaceCount() != 2 {
		t.Fatalf("expected 2 faces after flip, got %d", m.FaceCount())
	}
	// After flipping the (0,2) diagonal of a unit square, the new
	// diagonal should be (1,3).
	facesWith13 := 0
	for f := 0; f < m.RawFaceCount(); f++ {
		vs := m.FaceVertices(FaceId(f))
		has1 := vs[0] == 1 || vs[1] == 1 || vs[2] == 1
		has3 := vs[0] == 3 || vs[1] == 3 || vs[2] == 3
		if has1 && has3 {
			facesWith13++
		}
	}
	if facesWith13 != 2 {
		t.Fatalf("expected both faces to touch the new diagonal (1,3), got %d", facesWith13)
	}
}

func TestSplitEdge(t *testing.T) {
	m := unitSquare(t)
	apex := m.FaceCorner(FaceId(0), 1)
	edge := NewEdgeId(apex, m.CornerOpposite(apex))

	before := m.FaceCount()
	nv := m.SplitEdge(edge, geom.NewVec3(0.5, 0.5, 0))
	checkOppositeInvariant(t, m)

	if got := m.FaceCount(); got != before+2 {
		t.Fatalf("expected %d faces after split, got %d", before+2, got)
	}
	if m.Position(nv) != geom.NewVec3(0.5, 0.5, 0) {
		t.Fatalf("unexpected new vertex position: %+v", m.Position(nv))
	}
}

func TestSplitFace(t *testing.T) {
	m := unitSquare(t)
	before := m.FaceCount()
	nv := m.SplitFace(FaceId(0), geom.NewVec3(0.6, 0.2, 0))
	checkOppositeInvariant(t, m)
	if got := m.FaceCount(); got != before+2 {
		t.Fatalf("expected %d faces after 1->3 split, got %d", before+2, got)
	}
	if m.Position(nv) != geom.NewVec3(0.6, 0.2, 0) {
		t.Fatal("unexpected split vertex position")
	}
}

func TestMergePoints(t *testing.T) {
	pts := []geom.Vec3{
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(1, 0, 0),
	}
	merged, indexOf := MergePoints(pts)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged points, got %d", len(merged))
	}
	if indexOf[0] != indexOf[1] {
		t.Fatal("expected coincident points to map to same index")
	}
	if indexOf[2] == indexOf[0] {
		t.Fatal("expected distinct point to map to a different index")
	}
}

func TestSafetyPredicatesOnTetrahedron(t *testing.T) {
	m := tetrahedron(t)
	apex := m.FaceCorner(FaceId(0), 2)
	edge := NewEdgeId(apex, m.CornerOpposite(apex))

	if !IsTopologicallySafe(m, edge) {
		t.Fatal("expected tetrahedron edge collapse to be topologically safe")
	}
}

func TestVertexAttribute(t *testing.T) {
	m := tetrahedron(t)
	attr := NewVertexAttribute[float64](m, 0)
	attr.Set(VertexId(2), 3.5)
	if attr.Get(VertexId(2)) != 3.5 {
		t.Fatal("expected stored attribute value")
	}
	if attr.Get(VertexId(0)) != 0 {
		t.Fatal("expected zero value for untouched vertex")
	}
}
