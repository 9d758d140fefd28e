package kdtree

import "container/heap"

// Neighbor describes a single result of a kNN search.
type Neighbor[T any] struct {
	Value    T
	Point    Point
	Distance float32
}

// candidate references an entry by its build index while a search is in
// flight; the value is only resolved for entries that survive.
type candidate struct {
	entry    int
	distance float32
}

// candidateHeap implements heap.Interface as a max-heap: the worst kept
// candidate sits on top. Among equal distances the later build index is
// worse, so earlier entries win ties deterministically.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].distance != h[j].distance {
		return h[i].distance > h[j].distance
	}
	return h[i].entry > h[j].entry
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(candidate))
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// offer records an entry, evicting the worst kept candidate once the
// heap holds k. Ties on distance keep the lower build index.
func (h *candidateHeap) offer(entry int, distance float32, k int) {
	if h.Len() < k {
		heap.Push(h, candidate{entry: entry, distance: distance})
		return
	}
	worst := (*h)[0]
	if distance < worst.distance || (distance == worst.distance && entry < worst.entry) {
		(*h)[0] = candidate{entry: entry, distance: distance}
		heap.Fix(h, 0)
	}
}

// worst returns the largest kept distance. Only valid on a non-empty heap.
func (h candidateHeap) worst() float32 { return h[0].distance }
