package geom

import (
	"math"
	"testing"
)

func TestBox3Expand(t *testing.T) {
	b := EmptyBox3()
	b = b.Expand(NewVec3(1, 2, 3))
	b = b.Expand(NewVec3(-1, 0, 5))
	if !b.IsValid() {
		t.Fatal("expected valid box after expansion")
	}
	if b.Min != NewVec3(-1, 0, 3) || b.Max != NewVec3(1, 2, 5) {
		t.Fatalf("unexpected bounds: %+v", b)
	}
}

func TestTriangleQualityEquilateral(t *testing.T) {
	tri := Triangle3{
		A: NewVec3(0, 0, 0),
		B: NewVec3(1, 0, 0),
		C: NewVec3(0.5, math.Sqrt(3)/2, 0),
	}
	q := tri.Quality()
	if math.Abs(q-1) > 1e-9 {
		t.Fatalf("expected equilateral quality ~1, got %v", q)
	}
}

func TestTriangleQualityDegenerate(t *testing.T) {
	tri := Triangle3{A: NewVec3(0, 0, 0), B: NewVec3(1, 0, 0), C: NewVec3(2, 0, 0)}
	if q := tri.Quality(); q > 1e-9 {
		t.Fatalf("expected near-zero quality for colinear triangle, got %v", q)
	}
}

func TestOrientation2D(t *testing.T) {
	ccw := Orientation2D(Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1})
	if ccw != CounterClockwise {
		t.Fatalf("expected CCW, got %v", ccw)
	}
	cw := Orientation2D(Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0})
	if cw != Clockwise {
		t.Fatalf("expected CW, got %v", cw)
	}
	col := Orientation2D(Vec2{0, 0}, Vec2{1, 0}, Vec2{2, 0})
	if col != Colinear {
		t.Fatalf("expected colinear, got %v", col)
	}
}

func TestInCircle(t *testing.T) {
	a, b, c := Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}
	inside := Vec2{0.25, 0.25}
	outside := Vec2{10, 10}
	if !InCircle(a, b, c, inside) {
		t.Fatal("expected point inside circumcircle")
	}
	if InCircle(a, b, c, outside) {
		t.Fatal("expected point outside circumcircle")
	}
}

func TestCuboidSDF(t *testing.T) {
	center := NewVec3(0, 0, 0)
	half := NewVec3(1, 1, 1)
	if d := CuboidSDF(center, center, half); d >= 0 {
		t.Fatalf("expected negative distance at center, got %v", d)
	}
	far := NewVec3(3, 0, 0)
	if d := CuboidSDF(far, center, half); math.Abs(d-2) > 1e-9 {
		t.Fatalf("expected distance 2 at x=3, got %v", d)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	if !SegmentsIntersect(Vec2{0, 0}, Vec2{1, 1}, Vec2{0, 1}, Vec2{1, 0}) {
		t.Fatal("expected crossing segments to intersect")
	}
	if SegmentsIntersect(Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1}) {
		t.Fatal("expected parallel segments not to intersect")
	}
}
