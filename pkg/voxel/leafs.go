package voxel

// ForEachLeafOrigin collects the origin of every dense leaf node in the
// tree, for callers (such as pkg/isosurface) that need to partition
// per-leaf work without reimplementing the traversal.
func ForEachLeafOrigin(t *Tree) []Coord {
	c := &originCollector{}
	VisitLeafs(t, c)
	return c.origins
}

type originCollector struct {
	origins []Coord
}

func (c *originCollector) Dense(leaf *LeafNode)        { c.origins = append(c.origins, leaf.Origin) }
func (c *originCollector) Tile(Coord, int32, float64) {}

// LeafSpan returns the number of voxels along one axis of a leaf node.
func LeafSpan() int32 { return leafSpan }
