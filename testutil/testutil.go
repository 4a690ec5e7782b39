// Package testutil provides small fixtures shared by this module's test
// files: deterministic random vector generation for recall and
// round-trip checks.
package testutil

import (
	"math/rand"

	"github.com/arborvector/hnsw/vector"
)

// RandomVectors generates num vectors of the given dimension, ids
// numbered sequentially from 1, using a seeded RNG for reproducibility.
func RandomVectors(num, dimension int, seed int64) []vector.Vector {
	r := rand.New(rand.NewSource(seed))

	vectors := make([]vector.Vector, num)
	for i := 0; i < num; i++ {
		data := make([]float32, dimension)
		for j := range data {
			data[j] = r.Float32()
		}
		vectors[i] = vector.New(int64(i+1), data)
	}

	return vectors
}
