package hnsw

import "container/heap"

// Compile time check to ensure priorityQueue satisfies heap.Interface.
var _ heap.Interface = (*priorityQueue)(nil)

// priorityQueueItem is a candidate held in the search kernel's frontier or
// results set: a node id keyed by its distance to the query.
type priorityQueueItem struct {
	id       int64
	distance float32
	index    int // maintained by heap.Interface, needed for Swap
}

// priorityQueue implements heap.Interface over priorityQueueItems.
// Order flips it between a min-heap (closest first, used for the
// candidate frontier) and a max-heap (farthest first, used for the
// bounded results set so the farthest element sits at the root for O(1)
// eviction on overflow).
type priorityQueue struct {
	order bool // false: min-heap, true: max-heap
	items []*priorityQueueItem
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	if !pq.order {
		return pq.items[i].distance < pq.items[j].distance
	}
	return pq.items[i].distance > pq.items[j].distance
}

func (pq *priorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].index, pq.items[j].index = i, j
}

func (pq *priorityQueue) Push(x any) {
	item, _ := x.(*priorityQueueItem)
	item.index = len(pq.items)
	pq.items = append(pq.items, item)
}

func (pq *priorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	if n == 0 {
		return nil
	}
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	pq.items = old[:n-1]
	return item
}

// Top returns the root element without removing it.
func (pq *priorityQueue) Top() *priorityQueueItem {
	return pq.items[0]
}
