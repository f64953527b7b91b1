package remesh

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// gridMesh builds an n x n grid of unit quads (split into 2 triangles
// each) in the z=0 plane.
func gridMesh(t *testing.T, n int) *mesh.Mesh {
	t.Helper()
	var points []geom.Vec3
	idx := func(x, y int) int { return y*(n+1) + x }
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			points = append(points, geom.NewVec3(float64(x), float64(y), 0))
		}
	}
	var indices []int
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a, b, c, d := idx(x, y), idx(x+1, y), idx(x+1, y+1), idx(x, y+1)
			indices = append(indices, a, b, c)
			indices = append(indices, a, c, d)
		}
	}
	m, err := mesh.FromVerticesAndFaces(points, indices)
	if err != nil {
		t.Fatalf("FromVerticesAndFaces: %v", err)
	}
	return m
}

func TestSplitPassSubdividesLongEdges(t *testing.T) {
	m := gridMesh(t, 2) // unit edges, target length 0.5 => all edges "long"
	before := m.FaceCount()
	n := splitPass(m, 0.5)
	if n == 0 {
		t.Fatal("expected at least one split")
	}
	if m.FaceCount() <= before {
		t.Fatalf("expected face count to grow after splitting: before=%d after=%d", before, m.FaceCount())
	}
}

func TestCollapsePassMergesShortEdges(t *testing.T) {
	m := gridMesh(t, 6) // unit edges, target length 4 => all edges "short"
	before := m.FaceCount()
	n := collapsePass(m, 4.0, 0.1, false)
	if n == 0 {
		t.Fatal("expected at least one collapse")
	}
	if m.FaceCount() >= before {
		t.Fatalf("expected face count to shrink after collapsing: before=%d after=%d", before, m.FaceCount())
	}
}

func TestTangentialRelaxKeepsInteriorVerticesOnPlane(t *testing.T) {
	m := gridMesh(t, 4)
	TangentialRelax(m, 1.0)
	for _, p := range m.Positions() {
		if p.Z > 1e-9 || p.Z < -1e-9 {
			t.Fatalf("expected relaxation to preserve the z=0 plane, got z=%v", p.Z)
		}
	}
}

func TestTangentialRelaxBoundsDisplacement(t *testing.T) {
	m := gridMesh(t, 4)
	before := append([]geom.Vec3(nil), m.Positions()...)
	TangentialRelax(m, 0.05)
	after := m.Positions()
	for i := range before {
		if geom.Length(geom.Sub(after[i], before[i])) > 0.05+1e-9 {
			t.Fatalf("vertex %d moved more than the bound: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestRunCompletesFixedPasses(t *testing.T) {
	m := gridMesh(t, 6)
	stats := Run(m, Options{
		TargetLength: 1.0,
		Passes:       3,
		MinQuality:   0.1,
	})
	if stats.PassesRun != 3 {
		t.Fatalf("expected 3 passes run, got %d", stats.PassesRun)
	}
	if m.FaceCount() == 0 {
		t.Fatal("expected a non-empty mesh after remeshing")
	}
}

func TestRunWithProjectionKeepsVerticesNearOriginalSurface(t *testing.T) {
	m := gridMesh(t, 6)
	idx := BuildProjectionIndex(m, 1.0)

	stats := Run(m, Options{
		TargetLength: 1.0,
		Passes:       2,
		MinQuality:   0.1,
		Project:      idx,
	})
	if stats.Projected == 0 {
		t.Fatal("expected at least one projected vertex")
	}
	for _, p := range m.Positions() {
		if p.Z > 1e-9 || p.Z < -1e-9 {
			t.Fatalf("expected projection to keep vertices on the flat original surface, got z=%v", p.Z)
		}
	}
}
