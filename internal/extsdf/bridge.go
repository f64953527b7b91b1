// Package extsdf bridges an externally supplied github.com/deadsy/sdfx
// sdf.SDF3 into this module's own voxel.Tree, by sampling it on the voxel
// lattice within a narrow band of its zero level.
package extsdf

import (
	"math"

	"github.com/chazu/lignin-geo/pkg/voxel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SampleIntoTree walks every lattice point inside s's bounding box
// (expanded by one band width) and inserts it into tree wherever the
// sampled distance falls within the narrow band: |value| <=
// (band+1)*voxelSize.
func SampleIntoTree(tree *voxel.Tree, s sdf.SDF3, band int) {
	voxelSize := tree.VoxelSize
	bb := s.BoundingBox()
	threshold := float64(band+1) * voxelSize

	minX := int32(math.Floor(bb.Min.X/voxelSize)) - int32(band)
	maxX := int32(math.Ceil(bb.Max.X/voxelSize)) + int32(band)
	minY := int32(math.Floor(bb.Min.Y/voxelSize)) - int32(band)
	maxY := int32(math.Ceil(bb.Max.Y/voxelSize)) + int32(band)
	minZ := int32(math.Floor(bb.Min.Z/voxelSize)) - int32(band)
	maxZ := int32(math.Ceil(bb.Max.Z/voxelSize)) + int32(band)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				p := v3.Vec{X: float64(x) * voxelSize, Y: float64(y) * voxelSize, Z: float64(z) * voxelSize}
				d := s.Evaluate(p)
				if math.Abs(d) <= threshold {
					tree.Insert(voxel.Coord{X: x, Y: y, Z: z}, d)
				}
			}
		}
	}
}
