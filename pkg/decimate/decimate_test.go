package decimate

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// gridMesh builds an n x n grid of unit quads (split into 2 triangles
// each) in the z=0 plane, flat enough that any edge collapse is nearly
// error-free.
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

func TestRunCollapsesFlatGrid(t *testing.T) {
	m := gridMesh(t, 6)
	before := m.FaceCount()

	stats := Run(m, Options{
		MinQuality: 0.1,
		Stop:       ConstantError{MaxError: 1e-6},
	})

	if stats.Collapses == 0 {
		t.Fatal("expected at least one collapse on a flat grid")
	}
	if m.FaceCount() >= before {
		t.Fatalf("expected face count to decrease: before=%d after=%d", before, m.FaceCount())
	}
}

func TestRunRespectsRejectingConstantError(t *testing.T) {
	m := gridMesh(t, 4)
	before := m.FaceCount()

	stats := Run(m, Options{
		MinQuality: 0.1,
		Stop:       ConstantError{MaxError: -1}, // reject everything
	})

	if stats.Collapses != 0 {
		t.Fatalf("expected no collapses with a rejecting stop criterion, got %d", stats.Collapses)
	}
	if m.FaceCount() != before {
		t.Fatalf("expected mesh unchanged, before=%d after=%d", before, m.FaceCount())
	}
}

func TestBoundingSphereInterpolation(t *testing.T) {
	b := BoundingSphere{
		Center: geom.NewVec3(0, 0, 0),
		Stops: []RadiusError{
			{Radius: 1, MaxError: 0.1},
			{Radius: 2, MaxError: 1.0},
		},
	}
	mid := geom.NewVec3(1.5, 0, 0)
	if !b.Accept(mid, 0.5) {
		t.Fatal("expected midpoint error 0.5 at radius 1.5 (interpolated max 0.55) to be accepted")
	}
	if b.Accept(mid, 0.9) {
		// 0.9 > interpolated max (0.55) at radius 1.5
		t.Fatal("expected error 0.9 at radius 1.5 to be rejected")
	}
	if b.Accept(geom.NewVec3(3, 0, 0), 0.01) {
		t.Fatal("expected points beyond the largest radius to reject any collapse")
	}
}

func TestQuadricOptimalPointIntersectsThreePlanes(t *testing.T) {
	// Three mutually orthogonal planes: x=3, y=-2, z=1.
	// Their summed quadric's unique minimizer is their intersection point.
	qx := NewQuadricFromPlane(1, 0, 0, -3)
	qy := NewQuadricFromPlane(0, 1, 0, 2)
	qz := NewQuadricFromPlane(0, 0, 1, -1)
	sum := qx.Add(qy).Add(qz)

	p := sum.OptimalPoint(geom.NewVec3(100, 100, 100))
	want := geom.NewVec3(3, -2, 1)
	if geom.Length(geom.Sub(p, want)) > 1e-9 {
		t.Fatalf("expected optimal point %v, got %v", want, p)
	}
	if err := sum.Error(p); err > 1e-9 {
		t.Fatalf("expected near-zero error at the exact plane intersection, got %v", err)
	}
}

func TestQuadricOptimalPointFallsBackOnSingularSystem(t *testing.T) {
	// A single plane quadric is rank 1: its 3x3 block is singular, so
	// OptimalPoint must fall back to the supplied midpoint.
	q := NewQuadricFromPlane(0, 0, 1, 0)
	mid := geom.NewVec3(2, 3, 4)
	p := q.OptimalPoint(mid)
	if p != mid {
		t.Fatalf("expected fallback to midpoint %v, got %v", mid, p)
	}
}
