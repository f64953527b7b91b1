// Package sdf builds narrow-band signed-distance voxel trees from
// closed-form primitives or from triangle meshes, against this
// module's own pkg/voxel.Tree and pkg/geom primitives.
package sdf

import (
	"math"

	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
	"github.com/chazu/lignin-geo/pkg/voxel"
)

// VolumeBuilder constructs narrow-band voxel trees at a fixed voxel size
// and band width (in voxels).
type VolumeBuilder struct {
	VoxelSize float64
	Band      int
}

// NewVolumeBuilder returns a builder with the given voxel size and
// narrow-band half-width.
func NewVolumeBuilder(voxelSize float64, band int) *VolumeBuilder {
	return &VolumeBuilder{VoxelSize: voxelSize, Band: band}
}

// sample evaluates f on the lattice within [lo,hi] and narrow-bands it
// into a fresh tree, then flood-fills the result.
func (b *VolumeBuilder) sample(lo, hi geom.Vec3, f func(geom.Vec3) float64) *voxel.Tree {
	t := voxel.New(b.VoxelSize)
	threshold := float64(b.Band+1) * b.VoxelSize

	minX := int32(math.Floor(lo.X/b.VoxelSize)) - int32(b.Band)
	maxX := int32(math.Ceil(hi.X/b.VoxelSize)) + int32(b.Band)
	minY := int32(math.Floor(lo.Y/b.VoxelSize)) - int32(b.Band)
	maxY := int32(math.Ceil(hi.Y/b.VoxelSize)) + int32(b.Band)
	minZ := int32(math.Floor(lo.Z/b.VoxelSize)) - int32(b.Band)
	maxZ := int32(math.Ceil(hi.Z/b.VoxelSize)) + int32(b.Band)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				p := geom.NewVec3(float64(x)*b.VoxelSize, float64(y)*b.VoxelSize, float64(z)*b.VoxelSize)
				d := f(p)
				if math.Abs(d) <= threshold {
					t.Insert(voxel.Coord{X: x, Y: y, Z: z}, d)
				}
			}
		}
	}
	voxel.FloodFill(t)
	return t
}

// Sphere builds a narrow-band SDF of a sphere: ||p-center|| - radius.
func (b *VolumeBuilder) Sphere(center geom.Vec3, radius float64) *voxel.Tree {
	pad := geom.NewVec3(radius, radius, radius)
	lo := geom.Sub(center, pad)
	hi := geom.Add(center, pad)
	return b.sample(lo, hi, func(p geom.Vec3) float64 {
		return geom.Sphere3{Center: center, Radius: radius}.SignedDistance(p)
	})
}

// Cuboid builds a narrow-band SDF of an axis-aligned box (geom.CuboidSDF).
func (b *VolumeBuilder) Cuboid(center, halfExtent geom.Vec3) *voxel.Tree {
	lo := geom.Sub(center, halfExtent)
	hi := geom.Add(center, halfExtent)
	return b.sample(lo, hi, func(p geom.Vec3) float64 {
		return geom.CuboidSDF(p, center, halfExtent)
	})
}

// IWP evaluates the IWP (Schwarz-family) triply-periodic minimal surface
// approximant on the full axis-aligned box [lo,hi], narrow-banded around
// its zero level.
func (b *VolumeBuilder) IWP(lo, hi geom.Vec3, period float64) *voxel.Tree {
	w := 2 * math.Pi / period
	return b.sample(lo, hi, func(p geom.Vec3) float64 {
		cx, cy, cz := math.Cos(w*p.X), math.Cos(w*p.Y), math.Cos(w*p.Z)
		return 2*(cx*cy+cy*cz+cz*cx) - (math.Cos(2*w*p.X) + math.Cos(2*w*p.Y) + math.Cos(2*w*p.Z))
	})
}

// Offset dilates (d>0) or erodes (d<0) tree's surface by re-sampling the
// distance field within the new narrow band, seeded from the existing
// zero-crossings: `value' = value - d`, renarrow-banded. This is the
// narrow-band redistance variant chosen for performance parity (see
// DESIGN.md).
func Offset(t *voxel.Tree, d float64, band int) *voxel.Tree {
	out := voxel.New(t.VoxelSize)
	threshold := float64(band+1) * t.VoxelSize
	shiftVoxels := int32(math.Ceil(math.Abs(d)/t.VoxelSize)) + int32(band)

	collector := &sampleCollector{src: t, shifted: out, d: d, threshold: threshold, pad: shiftVoxels}
	voxel.VisitLeafs(t, collector)
	voxel.FloodFill(out)
	return out
}

type sampleCollector struct {
	src       *voxel.Tree
	shifted   *voxel.Tree
	d         float64
	threshold float64
	pad       int32
}

func (c *sampleCollector) Dense(leaf *voxel.LeafNode) {
	// Re-center the band around every voxel within pad of a visited leaf.
	origin := leaf.Origin
	for x := origin.X - c.pad; x < origin.X+8+c.pad; x++ {
		for y := origin.Y - c.pad; y < origin.Y+8+c.pad; y++ {
			for z := origin.Z - c.pad; z < origin.Z+8+c.pad; z++ {
				idx := voxel.Coord{X: x, Y: y, Z: z}
				v, ok := c.src.At(idx)
				if !ok {
					continue
				}
				shifted := v - c.d
				if math.Abs(shifted) <= c.threshold {
					c.shifted.Insert(idx, shifted)
				}
			}
		}
	}
}

func (c *sampleCollector) Tile(origin voxel.Coord, span int32, value float64) {
	shifted := value - c.d
	if math.Abs(shifted) <= c.threshold {
		for x := origin.X; x < origin.X+span; x++ {
			for y := origin.Y; y < origin.Y+span; y++ {
				for z := origin.Z; z < origin.Z+span; z++ {
					c.shifted.Insert(voxel.Coord{X: x, Y: y, Z: z}, shifted)
				}
			}
		}
	}
}

// MeshToVolume converts a mesh into a signed-distance voxel tree: for
// every triangle, narrow-band voxels are inserted with scalar equal to
// the signed distance to that triangle's plane (sign via the triangle's
// consistently-wound normal); the tree is then flood-filled to resolve
// interior/exterior away from the band.
func MeshToVolume(m *mesh.Mesh, voxelSize float64, band int) *voxel.Tree {
	t := voxel.New(voxelSize)
	threshold := float64(band+1) * voxelSize

	for f := 0; f < m.RawFaceCount(); f++ {
		if m.FaceDeleted(mesh.FaceId(f)) {
			continue
		}
		tri := m.FaceTriangle(mesh.FaceId(f))
		plane := tri.Plane()

		lo := geom.MinComponents(geom.MinComponents(tri.A, tri.B), tri.C)
		hi := geom.MaxComponents(geom.MaxComponents(tri.A, tri.B), tri.C)
		pad := threshold + voxelSize
		lo = geom.NewVec3(lo.X-pad, lo.Y-pad, lo.Z-pad)
		hi = geom.NewVec3(hi.X+pad, hi.Y+pad, hi.Z+pad)

		minX := int32(math.Floor(lo.X / voxelSize))
		maxX := int32(math.Ceil(hi.X / voxelSize))
		minY := int32(math.Floor(lo.Y / voxelSize))
		maxY := int32(math.Ceil(hi.Y / voxelSize))
		minZ := int32(math.Floor(lo.Z / voxelSize))
		maxZ := int32(math.Ceil(hi.Z / voxelSize))

		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				for z := minZ; z <= maxZ; z++ {
					p := geom.NewVec3(float64(x)*voxelSize, float64(y)*voxelSize, float64(z)*voxelSize)
					d := plane.DistanceToPoint(p)
					if math.Abs(d) <= threshold {
						t.Insert(voxel.Coord{X: x, Y: y, Z: z}, d)
					}
				}
			}
		}
	}

	voxel.FloodFill(t)
	return t
}
