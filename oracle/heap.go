package oracle

import "github.com/oclpath/parastar/search"

// item is one entry in the oracle's open list: a node id with its f and
// g scores. Ties in f are broken by lower g, matching both engines'
// ordering rule.
type item struct {
	id     search.NodeID
	fScore float64
	gScore float64
	index  int
}

// openHeap implements container/heap.Interface over a slice of *item,
// the same shape as itohio-EasyRobot's fastPriorityQueue, generalized
// from float32 matrix costs to this module's float64 Euclidean costs.
type openHeap []*item

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].fScore != h[j].fScore {
		return h[i].fScore < h[j].fScore
	}
	return h[i].gScore < h[j].gScore
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}
