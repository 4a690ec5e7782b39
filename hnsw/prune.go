package hnsw

import "sort"

// prune enforces the degree bound at layer for the node identified by id:
// it keeps the mCap neighbors closest to that node's own vector and
// symmetrically unlinks the rest — for every removed neighbor y, id is
// also removed from y's layer neighbor set, preserving the bidirectional
// edge invariant.
//
// This is the simple "keep m closest" policy, not the diversity-favoring
// Malkov-Yashunin heuristic selector.
func (idx *Index) prune(id int64, mCap int, layer int) error {
	n := idx.nodes[id]

	neighbors := n.Neighbors(layer)
	if len(neighbors) <= mCap {
		return nil
	}

	type scored struct {
		id       int64
		distance float32
	}

	items := make([]scored, len(neighbors))
	for i, nb := range neighbors {
		d, err := idx.distanceFunc(n.vector, idx.nodes[nb].vector)
		if err != nil {
			return err
		}
		items[i] = scored{id: nb, distance: d}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].distance < items[j].distance
	})

	kept := make([]int64, mCap)
	for i := 0; i < mCap; i++ {
		kept[i] = items[i].id
	}
	n.connections[layer] = kept

	for i := mCap; i < len(items); i++ {
		idx.nodes[items[i].id].RemoveNeighbor(layer, id)
	}

	return nil
}
