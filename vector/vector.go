// Package vector provides the immutable Vector record the HNSW core is
// built on: an integer identifier plus a fixed-dimension float32
// coordinate sequence, with distance and similarity delegating to the
// metric package.
package vector

import (
	"fmt"

	"github.com/arborvector/hnsw/metric"
)

// ErrInvalidArgument is the sentinel wrapped by every vector error.
var ErrInvalidArgument = metric.ErrInvalidArgument

// Vector is an immutable record: an id plus a defensively-copied
// coordinate sequence. It is created once and never mutated.
type Vector struct {
	id   int64
	data []float32
}

// New constructs a Vector, cloning data so later mutation of the caller's
// slice cannot affect the stored coordinates.
func New(id int64, data []float32) Vector {
	cp := make([]float32, len(data))
	copy(cp, data)
	return Vector{id: id, data: cp}
}

// ID returns the vector's identifier.
func (v Vector) ID() int64 { return v.id }

// Dimension returns the number of coordinates in v.
func (v Vector) Dimension() int { return len(v.data) }

// DataCopy returns a defensive copy of v's coordinates. Mutating the
// returned slice does not affect v.
func (v Vector) DataCopy() []float32 {
	cp := make([]float32, len(v.data))
	copy(cp, v.data)
	return cp
}

// Distance returns the Euclidean distance between v and other.
func (v Vector) Distance(other Vector) (float32, error) {
	d, err := metric.Euclidean(v.data, other.data)
	if err != nil {
		return 0, fmt.Errorf("vector %d -> %d: %w", v.id, other.id, err)
	}
	return d, nil
}

// CosineSimilarity returns the cosine similarity between v and other.
func (v Vector) CosineSimilarity(other Vector) (float32, error) {
	s, err := metric.CosineSimilarity(v.data, other.data)
	if err != nil {
		return 0, fmt.Errorf("vector %d -> %d: %w", v.id, other.id, err)
	}
	return s, nil
}
