package sdf

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
	"github.com/chazu/lignin-geo/pkg/voxel"
)

func TestVolumeBuilderSphere(t *testing.T) {
	b := NewVolumeBuilder(0.1, 2)
	tr := b.Sphere(geom.NewVec3(0, 0, 0), 1.0)

	centerV, ok := tr.At(voxel.Coord{X: 0, Y: 0, Z: 0})
	if !ok {
		t.Fatal("expected center voxel present after flood fill")
	}
	if centerV >= 0 {
		t.Fatalf("expected center inside sphere to be negative, got %v", centerV)
	}

	outside, ok := tr.At(voxel.Coord{X: 11, Y: 0, Z: 0}) // position 1.1, just outside radius 1
	if !ok {
		t.Fatal("expected a voxel just outside the sphere to be present")
	}
	if outside < 0 {
		t.Fatalf("expected voxel outside sphere to be positive, got %v", outside)
	}
}

func TestVolumeBuilderCuboid(t *testing.T) {
	b := NewVolumeBuilder(0.1, 2)
	tr := b.Cuboid(geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	v, ok := tr.At(voxel.Coord{X: 0, Y: 0, Z: 0})
	if !ok || v >= 0 {
		t.Fatalf("expected cuboid center to be inside (negative), got (%v,%v)", v, ok)
	}
}

func TestOffsetDilatesSphere(t *testing.T) {
	b := NewVolumeBuilder(0.1, 2)
	tr := b.Sphere(geom.NewVec3(0, 0, 0), 1.0)

	out := Offset(tr, 0.2, 2)

	// A point just outside the original sphere (at radius 1.1) should now
	// read as inside the dilated surface.
	x := int32(11) // 1.1 / voxelSize
	v, ok := out.At(voxel.Coord{X: x, Y: 0, Z: 0})
	if !ok {
		t.Fatal("expected dilated tree to cover the probe voxel")
	}
	if v >= 0 {
		t.Fatalf("expected dilation to pull radius-1.1 point inside, got %v", v)
	}
}

func TestMeshToVolumeTetrahedron(t *testing.T) {
	points := []geom.Vec3{
		geom.NewVec3(0, 0, 0),
		geom.NewVec3(1, 0, 0),
		geom.NewVec3(0, 1, 0),
		geom.NewVec3(0, 0, 1),
	}
	indices := []int{
		0, 2, 1,
		0, 1, 3,
		0, 3, 2,
		1, 2, 3,
	}
	m, err := mesh.FromVerticesAndFaces(points, indices)
	if err != nil {
		t.Fatalf("FromVerticesAndFaces: %v", err)
	}

	tr := MeshToVolume(m, 0.05, 2)

	inside, ok := tr.At(voxel.Coord{X: 2, Y: 2, Z: 2}) // (0.1,0.1,0.1), well inside the tetrahedron
	if !ok {
		t.Fatal("expected an interior probe voxel to be present")
	}
	if inside >= 0 {
		t.Fatalf("expected interior probe to be negative, got %v", inside)
	}

	outside, ok := tr.At(voxel.Coord{X: -3, Y: -3, Z: -3})
	if !ok {
		t.Fatal("expected an exterior probe voxel near the narrow band to be present")
	}
	if outside < 0 {
		t.Fatalf("expected exterior probe to be positive, got %v", outside)
	}
}
