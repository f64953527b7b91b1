package geom

import (
	"math"

	"github.com/chazu/lignin-geo/pkg/numeric"
)

// Vec2 is a 2D point, used by the Delaunay triangulator.
type Vec2 struct {
	X, Y float64
}

// Orientation classifies the turn from a->b->c.
type Orientation int

const (
	Colinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Orientation2D computes the sign of the determinant
// | b.X-a.X  b.Y-a.Y |
// | c.X-a.X  c.Y-a.Y |
// classifying the turn a->b->c.
func Orientation2D(a, b, c Vec2) Orientation {
	det := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case det > numeric.Epsilon:
		return CounterClockwise
	case det < -numeric.Epsilon:
		return Clockwise
	default:
		return Colinear
	}
}

// SignedAngleBetweenVectors returns the signed angle (radians, in
// (-pi, pi]) from u to v, via atan2 of the perp-dot and dot products.
func SignedAngleBetweenVectors(u, v Vec2) float64 {
	perp := u.X*v.Y - u.Y*v.X
	dot := u.X*v.X + u.Y*v.Y
	return math.Atan2(perp, dot)
}

// InCircle reports whether point d lies strictly inside the circumcircle
// of the (assumed counter-clockwise) triangle a, b, c, using the
// standard 4x4 determinant predicate. Ties within epsilon are treated
// as "on" the circle (returns false); no tie-breaking by id is applied to
// cocircular points, here or in pkg/delaunay.
func InCircle(a, b, c, d Vec2) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	ad := ax*ax + ay*ay
	bd := bx*bx + by*by
	cd := cx*cx + cy*cy

	det := ax*(by*cd-bd*cy) - ay*(bx*cd-bd*cx) + ad*(bx*cy-by*cx)
	return det > numeric.Epsilon
}

// Circumcircle2D computes the center and radius of the circle through
// a, b, c. The triangle must be non-degenerate (checked by the caller
// via Orientation2D).
func Circumcircle2D(a, b, c Vec2) (center Vec2, radius float64) {
	ax2 := a.X*a.X + a.Y*a.Y
	bx2 := b.X*b.X + b.Y*b.Y
	cx2 := c.X*c.X + c.Y*c.Y

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < numeric.Epsilon {
		return Vec2{}, math.Inf(1)
	}
	ux := (ax2*(b.Y-c.Y) + bx2*(c.Y-a.Y) + cx2*(a.Y-b.Y)) / d
	uy := (ax2*(c.X-b.X) + bx2*(a.X-c.X) + cx2*(b.X-a.X)) / d
	center = Vec2{X: ux, Y: uy}
	radius = math.Hypot(center.X-a.X, center.Y-a.Y)
	return center, radius
}

// SegmentsIntersect reports whether open segments p1p2 and p3p4 properly
// cross (used by the constrained Delaunay flip loop to find edges
// crossing a constraint segment).
func SegmentsIntersect(p1, p2, p3, p4 Vec2) bool {
	d1 := Orientation2D(p3, p4, p1)
	d2 := Orientation2D(p3, p4, p2)
	d3 := Orientation2D(p1, p2, p3)
	d4 := Orientation2D(p1, p2, p4)
	if d1 != d2 && d3 != d4 && d1 != Colinear && d2 != Colinear && d3 != Colinear && d4 != Colinear {
		return true
	}
	return false
}
