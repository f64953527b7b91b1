// Package decimate implements the incremental edge decimator: a
// priority-queue-driven collapse loop over a pkg/mesh.Mesh with
// per-vertex quadric-error accumulation.
package decimate

import "github.com/chazu/lignin-geo/pkg/geom"

// Quadric is the symmetric 4x4 matrix Q = n*n^T summed over a set of
// plane equations (n, d), stored as its 10 distinct entries:
// a11,a12,a13,a14,a22,a23,a24,a33,a34,a44.
type Quadric struct {
	a [10]float64
}

// NewQuadricFromPlane builds the rank-1 quadric for a single plane
// equation a*x + b*y + c*z + d = 0.
func NewQuadricFromPlane(a, b, c, d float64) Quadric {
	return Quadric{a: [10]float64{
		a * a, a * b, a * c, a * d,
		b * b, b * c, b * d,
		c * c, c * d,
		d * d,
	}}
}

// NewQuadricFromTriangle builds the plane quadric of a triangle.
func NewQuadricFromTriangle(tri geom.Triangle3) Quadric {
	pl := tri.Plane()
	return NewQuadricFromPlane(pl.Normal.X, pl.Normal.Y, pl.Normal.Z, pl.Distance)
}

// Add returns the sum of two quadrics.
func (q Quadric) Add(o Quadric) Quadric {
	var r Quadric
	for i := range q.a {
		r.a[i] = q.a[i] + o.a[i]
	}
	return r
}

// Error evaluates p^T Q p at p = (x,y,z,1).
func (q Quadric) Error(p geom.Vec3) float64 {
	x, y, z := p.X, p.Y, p.Z
	return q.a[0]*x*x + 2*q.a[1]*x*y + 2*q.a[2]*x*z + 2*q.a[3]*x +
		q.a[4]*y*y + 2*q.a[5]*y*z + 2*q.a[6]*y +
		q.a[7]*z*z + 2*q.a[8]*z +
		q.a[9]
}

// OptimalPoint solves for the point minimizing Error subject to the
// homogeneous coordinate being 1, via the top-left 3x3 block of Q and
// its right-hand column (a14,a24,a34). Falls back to mid (the edge
// midpoint) if that 3x3 system is singular.
func (q Quadric) OptimalPoint(mid geom.Vec3) geom.Vec3 {
	// Minimizing p^T Q p over p=(x,y,z,1) reduces to solving
	// A p = -b where A is the top-left 3x3 block (a11,a12,a13 / a12,a22,a23 / a13,a23,a33)
	// and b = (a14,a24,a34).
	m := [3][3]float64{
		{q.a[0], q.a[1], q.a[2]},
		{q.a[1], q.a[4], q.a[5]},
		{q.a[2], q.a[5], q.a[7]},
	}
	b := [3]float64{-q.a[3], -q.a[6], -q.a[8]}

	x, ok := solve3(m, b)
	if !ok {
		return mid
	}
	return geom.Vec3{X: x[0], Y: x[1], Z: x[2]}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// solve3 solves m*x = b via Cramer's rule, reporting failure on a
// near-singular system.
func solve3(m [3][3]float64, b [3]float64) ([3]float64, bool) {
	const singularEps = 1e-12

	d := det3(m)
	if d > -singularEps && d < singularEps {
		return [3]float64{}, false
	}

	var x [3]float64
	for col := 0; col < 3; col++ {
		mc := m
		for row := 0; row < 3; row++ {
			mc[row][col] = b[row]
		}
		x[col] = det3(mc) / d
	}
	return x, true
}
