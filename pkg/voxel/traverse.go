package voxel

import "sync"

// Visitor receives bulk callbacks during a tree traversal. Dense is
// called once per leaf node; Tile is called once per internal-node tile
// slot. Visitors used with VisitLeafsPar must tolerate
// concurrent calls from different goroutines (one per root-level subtree)
// and must not mutate the tree.
type Visitor interface {
	Dense(leaf *LeafNode)
	Tile(origin Coord, span int32, value float64)
}

// VisitLeafs performs a depth-first traversal of every internal node in
// the tree, calling v.Dense for every leaf child and v.Tile for every tile
// slot. Order is unspecified.
func VisitLeafs(t *Tree, v Visitor) {
	for _, n := range t.root {
		visitInternal(n, v)
	}
}

func visitInternal(n *InternalNode, v Visitor) {
	for slot := 0; slot < internalSlots; slot++ {
		switch {
		case n.hasChild(slot):
			v.Dense(n.children[slot])
		case n.hasTile(slot):
			v.Tile(n.leafOrigin(slot), leafSpan, n.tileValues[slot])
		}
	}
}

// VisitLeafsPar performs the same traversal as VisitLeafs, but fans the
// root-level subtrees out across a bounded worker pool. Each subtree is
// still walked sequentially within its own goroutine.
func VisitLeafsPar(t *Tree, v Visitor, workers int) {
	if workers < 1 {
		workers = 1
	}
	nodes := make([]*InternalNode, 0, len(t.root))
	for _, n := range t.root {
		nodes = append(nodes, n)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, n := range nodes {
		n := n
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			visitInternal(n, v)
		}()
	}
	wg.Wait()
}
