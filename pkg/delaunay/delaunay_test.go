package delaunay

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
)

func TestTriangulateSquare(t *testing.T) {
	pts := []geom.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0.5, Y: 0.5},
	}
	tri := New(pts)
	tris := tri.Triangles()
	if len(tris) != 4 {
		t.Fatalf("expected 4 triangles (square split by center point), got %d", len(tris))
	}
	for _, tr := range tris {
		for _, idx := range tr {
			if idx < 0 || idx >= len(pts) {
				t.Fatalf("triangle references out-of-range point %d", idx)
			}
		}
	}
}

func TestTriangulateIgnoresDuplicatePoints(t *testing.T) {
	pts := []geom.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: 0}, // duplicate of the first point
	}
	tri := New(pts)
	if len(tri.Triangles()) != 1 {
		t.Fatalf("expected a single triangle, got %d", len(tri.Triangles()))
	}
}

func TestConstrainEdgeAcrossSquare(t *testing.T) {
	pts := []geom.Vec2{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
		{X: 1, Y: 0.9}, // perturb near-diagonal points so the unconstrained
		{X: 0.9, Y: 1}, // triangulation doesn't already contain edge (0,2)
	}
	tri := New(pts)
	tri.ConstrainEdge(0, 2)

	if !tri.hasEdge(undirected(0+3, 2+3)) {
		t.Fatal("expected constrained edge (0,2) to be present after ConstrainEdge")
	}
}
