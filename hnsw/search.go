package hnsw

import (
	"container/heap"

	"github.com/arborvector/hnsw/vector"
	"github.com/bits-and-blooms/bitset"
)

// searchLayer runs greedy best-first exploration on a single layer,
// starting from entryPoints, and returns up to ef node ids reachable
// through layer edges, sorted by ascending distance to query.
//
// This is the one routine shared by Insert (descending zoom-in at ef=1,
// then candidate gathering at ef=M) and Search (descending zoom-in at
// ef=1, then the final ef=max(k,M) scan at layer 0). It never mutates
// index state.
func (idx *Index) searchLayer(query vector.Vector, entryPoints []int64, ef int, layer int) ([]*priorityQueueItem, error) {
	var visited bitset.BitSet

	candidates := &priorityQueue{order: false} // min-heap: closest first
	heap.Init(candidates)

	results := &priorityQueue{order: true} // max-heap: farthest at root
	heap.Init(results)

	for _, id := range entryPoints {
		visited.Set(uint(id))

		n := idx.nodes[id]

		d, err := idx.distanceFunc(query, n.vector)
		if err != nil {
			return nil, err
		}

		heap.Push(candidates, &priorityQueueItem{id: id, distance: d})
		heap.Push(results, &priorityQueueItem{id: id, distance: d})
	}

	for candidates.Len() > 0 {
		bound := results.Top().distance

		candidate, _ := heap.Pop(candidates).(*priorityQueueItem)
		if candidate.distance > bound {
			break
		}

		cn := idx.nodes[candidate.id]

		for _, nb := range cn.Neighbors(layer) {
			if visited.Test(uint(nb)) {
				continue
			}
			visited.Set(uint(nb))

			nbNode := idx.nodes[nb]

			d, err := idx.distanceFunc(query, nbNode.vector)
			if err != nil {
				return nil, err
			}

			bound = results.Top().distance

			switch {
			case results.Len() < ef:
				heap.Push(results, &priorityQueueItem{id: nb, distance: d})
				heap.Push(candidates, &priorityQueueItem{id: nb, distance: d})
			case d < bound:
				heap.Pop(results)
				heap.Push(results, &priorityQueueItem{id: nb, distance: d})
				heap.Push(candidates, &priorityQueueItem{id: nb, distance: d})
			}
		}
	}

	out := make([]*priorityQueueItem, results.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = heap.Pop(results).(*priorityQueueItem)
	}

	return out, nil
}
