package kdtree

import (
	"container/heap"
	"fmt"
	"sort"
	"sync"
)

// Tree is an exact k-nearest-neighbor index over labeled points. The
// zero value is not usable; construct with New. A built tree is safe
// for concurrent readers as long as no Insert runs concurrently
// unguarded; Insert itself takes the tree's write lock.
type Tree[T any] struct {
	root             *node
	entries          []Entry[T]
	dims             int
	distanceFuncName DistanceFunction
	distanceFunc     DistanceFunc
	mu               sync.RWMutex
}

// New bulk-builds a tree from the provided entries using the given
// distance function (empty resolves to squared Euclidean). All entries
// must share the same dimensionality k >= 1, otherwise New fails with
// ErrDimensionMismatch and no tree is returned. An empty input yields
// an empty tree that answers every query with an empty result.
//
// The entries slice is copied; coordinate slices are shared with the
// caller and must not be mutated afterwards.
func New[T any](entries []Entry[T], distanceFn DistanceFunction) (*Tree[T], error) {
	if distanceFn == "" {
		distanceFn = DistanceFunctionSquaredEuclidean
	}
	t := &Tree[T]{
		distanceFuncName: distanceFn,
		distanceFunc:     distanceFn.Function(),
	}
	if len(entries) == 0 {
		return t, nil
	}
	t.dims = entries[0].Point.Dims()
	if t.dims == 0 {
		return nil, fmt.Errorf("%w: entry 0 has no coordinates", ErrDimensionMismatch)
	}
	for i := range entries {
		if entries[i].Point.Dims() != t.dims {
			return nil, fmt.Errorf("%w: entry %d has %d coordinates, want %d",
				ErrDimensionMismatch, i, entries[i].Point.Dims(), t.dims)
		}
	}
	t.entries = append([]Entry[T](nil), entries...)
	perm := make([]int, len(t.entries))
	for i := range perm {
		perm[i] = i
	}
	t.root = t.build(perm, 0)
	return t, nil
}

// build turns perm into a subtree. The pivot is the median along the
// splitting axis; the stable sort keeps equal axis coordinates in build
// order, so ties fall on a fixed side.
func (t *Tree[T]) build(perm []int, depth int) *node {
	if len(perm) == 0 {
		return nil
	}
	axis := depth % t.dims
	sort.SliceStable(perm, func(i, j int) bool {
		return t.entries[perm[i]].Point[axis] < t.entries[perm[j]].Point[axis]
	})
	median := len(perm) / 2
	n := &node{entry: perm[median], axis: axis}
	n.left = t.build(perm[:median], depth+1)
	n.right = t.build(perm[median+1:], depth+1)
	return n
}

// Len returns the number of stored entries.
func (t *Tree[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Dims returns the tree's dimensionality, zero while the tree is empty.
func (t *Tree[T]) Dims() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dims
}

// Metric returns the distance function the tree ranks and prunes with.
func (t *Tree[T]) Metric() DistanceFunction { return t.distanceFuncName }

// Insert adds a single entry by descending to its leaf position. The
// tree is not rebalanced, so a long adversarial insert stream degrades
// query cost toward a linear scan; bulk construction via New keeps the
// tree balanced.
func (t *Tree[T]) Insert(entry Entry[T]) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if entry.Point.Dims() == 0 {
		return fmt.Errorf("%w: entry has no coordinates", ErrDimensionMismatch)
	}
	if t.root == nil {
		t.dims = entry.Point.Dims()
		t.entries = append(t.entries, entry)
		t.root = &node{entry: 0}
		return nil
	}
	if entry.Point.Dims() != t.dims {
		return fmt.Errorf("%w: entry has %d coordinates, want %d",
			ErrDimensionMismatch, entry.Point.Dims(), t.dims)
	}
	idx := len(t.entries)
	t.entries = append(t.entries, entry)
	cur := t.root
	for {
		childAxis := (cur.axis + 1) % t.dims
		if entry.Point[cur.axis] <= t.entries[cur.entry].Point[cur.axis] {
			if cur.left == nil {
				cur.left = &node{entry: idx, axis: childAxis}
				return nil
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = &node{entry: idx, axis: childAxis}
				return nil
			}
			cur = cur.right
		}
	}
}

// NearestNeighbors returns the min(k, Len()) entries closest to query,
// ordered by ascending distance. Equal distances are ordered by build
// order, so repeated queries return identical results. The search is
// exact: pruning never removes an entry a full scan would return.
func (t *Tree[T]) NearestNeighbors(query Point, k int) ([]Neighbor[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, k)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.root == nil {
		return nil, nil
	}
	if query.Dims() != t.dims {
		return nil, fmt.Errorf("%w: query has %d coordinates, want %d",
			ErrDimensionMismatch, query.Dims(), t.dims)
	}
	if k == 0 {
		return nil, nil
	}
	h := &candidateHeap{}
	heap.Init(h)
	t.search(t.root, query, k, h)
	result := make([]Neighbor[T], h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		c := heap.Pop(h).(candidate)
		e := t.entries[c.entry]
		result[i] = Neighbor[T]{Value: e.Value, Point: e.Point, Distance: c.distance}
	}
	return result, nil
}

func (t *Tree[T]) search(n *node, query Point, k int, h *candidateHeap) {
	if n == nil {
		return
	}
	pivot := t.entries[n.entry].Point
	h.offer(n.entry, t.distanceFunc(query, pivot), k)

	gap := query[n.axis] - pivot[n.axis]
	near, far := n.left, n.right
	if gap > 0 {
		near, far = n.right, n.left
	}
	t.search(near, query, k, h)
	if far == nil {
		return
	}
	// The far side can only improve the result while the heap is not
	// full, or while the hyperplane is closer than the worst kept
	// candidate. <= rather than < so an equal-distance entry with a
	// lower build index is still found.
	if h.Len() < k || t.distanceFuncName.planeDistance(gap) <= h.worst() {
		t.search(far, query, k, h)
	}
}
