package isosurface

import (
	"testing"

	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/sdf"
)

// TestMarchingCubesSphere matches spec.md scenario 2 (unit-ish sphere
// reconstruction): the resulting mesh should be non-trivial and every
// vertex should lie close to the sphere surface.
func TestMarchingCubesSphere(t *testing.T) {
	b := sdf.NewVolumeBuilder(0.1, 2)
	tr := b.Sphere(geom.NewVec3(0, 0, 0), 1.0)

	m, err := MarchingCubes(tr)
	if err != nil {
		t.Fatalf("MarchingCubes: %v", err)
	}
	if m.VertexCount() == 0 || m.FaceCount() == 0 {
		t.Fatal("expected a non-empty mesh from a sphere volume")
	}

	for i, p := range m.Positions() {
		r := geom.Length(p)
		if r < 0.8 || r > 1.2 {
			t.Fatalf("vertex %d at radius %v, expected close to 1.0", i, r)
		}
	}
}

func TestMarchingCubesParMatchesSequentialCount(t *testing.T) {
	b := sdf.NewVolumeBuilder(0.1, 2)
	tr := b.Cuboid(geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	seq, err := MarchingCubes(tr)
	if err != nil {
		t.Fatalf("MarchingCubes: %v", err)
	}
	par, err := MarchingCubesPar(tr, 4)
	if err != nil {
		t.Fatalf("MarchingCubesPar: %v", err)
	}
	if seq.FaceCount() != par.FaceCount() {
		t.Fatalf("sequential/parallel face count mismatch: %d vs %d", seq.FaceCount(), par.FaceCount())
	}
}

func TestDualContouringCuboid(t *testing.T) {
	b := sdf.NewVolumeBuilder(0.1, 2)
	tr := b.Cuboid(geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	m, err := DualContouring(tr)
	if err != nil {
		t.Fatalf("DualContouring: %v", err)
	}
	if m.VertexCount() == 0 || m.FaceCount() == 0 {
		t.Fatal("expected a non-empty mesh from a cuboid volume")
	}
}
