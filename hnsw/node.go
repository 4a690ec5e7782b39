package hnsw

import "github.com/arborvector/hnsw/vector"

// node is a graph vertex: it owns a vector.Vector, records its top layer,
// and holds a neighbor id set for every layer 0..level.
//
// connections is a dense slice indexed by layer rather than a map: layers
// are contiguous 0..level, neighbor sets are small (at most mMax0), and a
// flat slice with linear scans is both simpler and faster than a set for
// these sizes.
type node struct {
	vector      vector.Vector
	level       int
	connections [][]int64
}

// newNode allocates a node with an empty, initially-populated neighbor
// slice for every layer 0..level.
func newNode(v vector.Vector, level int) *node {
	conns := make([][]int64, level+1)
	for i := range conns {
		conns[i] = nil
	}
	return &node{vector: v, level: level, connections: conns}
}

// inRange reports whether layer is a valid, allocated layer for n.
func (n *node) inRange(layer int) bool {
	return layer >= 0 && layer <= n.level
}

// Neighbors returns a read-only view of n's neighbor ids at layer. An
// out-of-range layer returns an empty slice rather than panicking; correct
// callers never address a layer outside 0..level in the first place.
func (n *node) Neighbors(layer int) []int64 {
	if !n.inRange(layer) {
		return nil
	}
	return n.connections[layer]
}

// Degree returns the number of neighbors n has at layer.
func (n *node) Degree(layer int) int {
	if !n.inRange(layer) {
		return 0
	}
	return len(n.connections[layer])
}

// HasNeighbor reports whether id is a neighbor of n at layer.
func (n *node) HasNeighbor(layer int, id int64) bool {
	if !n.inRange(layer) {
		return false
	}
	for _, x := range n.connections[layer] {
		if x == id {
			return true
		}
	}
	return false
}

// AddNeighbor adds id to n's neighbor set at layer. It is a no-op if id is
// already present. It does not compare id against n's own id; keeping a
// node out of its own neighbor set is left to the caller. layer must be
// in range; callers within this package never invoke it otherwise.
func (n *node) AddNeighbor(layer int, id int64) {
	if !n.inRange(layer) {
		return
	}
	if n.HasNeighbor(layer, id) {
		return
	}
	n.connections[layer] = append(n.connections[layer], id)
}

// RemoveNeighbor removes id from n's neighbor set at layer, if present.
func (n *node) RemoveNeighbor(layer int, id int64) {
	if !n.inRange(layer) {
		return
	}
	conns := n.connections[layer]
	for i, x := range conns {
		if x == id {
			conns[i] = conns[len(conns)-1]
			n.connections[layer] = conns[:len(conns)-1]
			return
		}
	}
}
