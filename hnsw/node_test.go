package hnsw

import (
	"testing"

	"github.com/arborvector/hnsw/vector"
	"github.com/stretchr/testify/assert"
)

func TestNewNodeAllocatesEveryLayer(t *testing.T) {
	n := newNode(vector.New(1, []float32{1, 2}), 3)
	assert.Equal(t, 3, n.level)

	for layer := 0; layer <= 3; layer++ {
		assert.Empty(t, n.Neighbors(layer))
		assert.Equal(t, 0, n.Degree(layer))
	}
}

func TestAddRemoveNeighbor(t *testing.T) {
	n := newNode(vector.New(1, []float32{1, 2}), 1)

	n.AddNeighbor(0, 10)
	n.AddNeighbor(0, 20)
	assert.True(t, n.HasNeighbor(0, 10))
	assert.True(t, n.HasNeighbor(0, 20))
	assert.Equal(t, 2, n.Degree(0))

	// Adding a duplicate is a no-op.
	n.AddNeighbor(0, 10)
	assert.Equal(t, 2, n.Degree(0))

	n.RemoveNeighbor(0, 10)
	assert.False(t, n.HasNeighbor(0, 10))
	assert.Equal(t, 1, n.Degree(0))

	// Layer 1 is untouched.
	assert.Equal(t, 0, n.Degree(1))
}

func TestOutOfRangeLayerIsDefinedEmpty(t *testing.T) {
	n := newNode(vector.New(1, []float32{1}), 0)

	assert.Empty(t, n.Neighbors(-1))
	assert.Empty(t, n.Neighbors(5))
	assert.Equal(t, 0, n.Degree(5))
	assert.False(t, n.HasNeighbor(5, 1))

	// add/remove at an unmapped layer must not create a new layer.
	n.AddNeighbor(5, 1)
	assert.Equal(t, 0, n.level)
	assert.Len(t, n.connections, 1)
}
