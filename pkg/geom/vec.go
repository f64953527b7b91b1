// Package geom provides the geometric primitives shared by the mesh,
// voxel and iso-surface packages: vectors, boxes, planes, triangles,
// spheres, line segments, and the orientation/in-circle predicates the
// Delaunay triangulator needs. Per the module's scope, no particular
// linear-algebra backend is mandated; Vec3 is an alias onto sdfx's own
// vector type so primitive SDF construction (internal/extsdf) and this
// package's own math share one representation without a conversion
// layer at every call site.
package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec3 is a 3D vector / point. It is an alias for sdfx's vector type so
// values pass between this module and github.com/deadsy/sdfx without
// copying or converting.
type Vec3 = v3.Vec

// NewVec3 constructs a Vec3 from components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns v*s.
func Scale(v Vec3, s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// LengthSq returns the squared Euclidean norm of v.
func LengthSq(v Vec3) float64 {
	return Dot(v, v)
}

// Normalize returns v scaled to unit length. Returns the zero vector if v
// is (near) zero length.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l < 1e-12 {
		return Vec3{}
	}
	return Scale(v, 1/l)
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b Vec3, t float64) Vec3 {
	return Add(a, Scale(Sub(b, a), t))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return Length(Sub(a, b))
}

// MinComponents returns the component-wise minimum of a and b.
func MinComponents(a, b Vec3) Vec3 {
	return Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxComponents returns the component-wise maximum of a and b.
func MaxComponents(a, b Vec3) Vec3 {
	return Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
