package spatial

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
)

func testPoints() []geom.Vec3 {
	return []geom.Vec3{
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(10, 0, 0),
		geom.NewVec3(0, 10, 0),
		geom.NewVec3(5, 5, 5),
		geom.NewVec3(-7, 3, 2),
	}
}

func TestUniformGridNearest(t *testing.T) {
	g := NewUniformGrid(1.0)
	for _, p := range testPoints() {
		g.Insert(p)
	}
	got, ok := g.Nearest(geom.NewVec3(5.2, 5.1, 4.9))
	if !ok {
		t.Fatal("expected a nearest point")
	}
	want := geom.NewVec3(5, 5, 5)
	if geom.Length(geom.Sub(got, want)) > 1e-9 {
		t.Fatalf("expected nearest %v, got %v", want, got)
	}
}

func TestUniformGridEmpty(t *testing.T) {
	g := NewUniformGrid(1.0)
	if _, ok := g.Nearest(geom.NewVec3(0, 0, 0)); ok {
		t.Fatal("expected no nearest point in an empty grid")
	}
}

func TestRTreeIndexNearest(t *testing.T) {
	idx := NewRTreeIndex()
	for _, p := range testPoints() {
		idx.Insert(p)
	}
	got, ok := idx.Nearest(geom.NewVec3(-6.9, 3.1, 2.0))
	if !ok {
		t.Fatal("expected a nearest point")
	}
	want := geom.NewVec3(-7, 3, 2)
	if geom.Length(geom.Sub(got, want)) > 1e-9 {
		t.Fatalf("expected nearest %v, got %v", want, got)
	}
}

// TestBackendsAgree checks that the grid and R-tree indexes agree on a
// larger, less hand-picked point set.
func TestBackendsAgree(t *testing.T) {
	grid := NewUniformGrid(2.0)
	tree := NewRTreeIndex()

	var pts []geom.Vec3
	for i := 0; i < 50; i++ {
		p := geom.NewVec3(float64(i%7)*1.3-4, float64(i%5)*2.1-3, float64(i%3)*0.7)
		pts = append(pts, p)
		grid.Insert(p)
		tree.Insert(p)
	}

	queries := []geom.Vec3{
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(3, -2, 1),
		geom.NewVec3(-10, 10, 5),
	}
	for _, q := range queries {
		gp, gok := grid.Nearest(q)
		tp, tok := tree.Nearest(q)
		if gok != tok {
			t.Fatalf("grid/tree disagree on found status for %v", q)
		}
		if !gok {
			continue
		}
		if geom.Length(geom.Sub(gp, tp)) > 1e-9 {
			t.Fatalf("grid/tree disagree on nearest to %v: grid=%v tree=%v", q, gp, tp)
		}
	}
}
