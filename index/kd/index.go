package kd

import (
	"fmt"

	"github.com/viant/nearest/kdtree"
)

// Index exposes kdtree.Tree through the generic index API. Build
// replaces the tree wholesale; Query is safe for concurrent use.
type Index struct {
	tree *kdtree.Tree[string]
}

// Build constructs a KD-tree over the (id, coordinates) pairs.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("kd: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	entries := make([]kdtree.Entry[string], len(ids))
	for j := range ids {
		entries[j] = kdtree.Entry[string]{Value: ids[j], Point: vectors[j]}
	}
	tree, err := kdtree.New(entries, kdtree.DistanceFunctionSquaredEuclidean)
	if err != nil {
		return fmt.Errorf("kd: %w", err)
	}
	i.tree = tree
	return nil
}

// Query returns up to k ids ordered by ascending squared Euclidean
// distance, ties in build order.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.tree == nil {
		return nil, nil, nil
	}
	neighbors, err := i.tree.NearestNeighbors(kdtree.Point(query), k)
	if err != nil {
		return nil, nil, fmt.Errorf("kd: %w", err)
	}
	if len(neighbors) == 0 {
		return nil, nil, nil
	}
	ids := make([]string, len(neighbors))
	dists := make([]float64, len(neighbors))
	for j, n := range neighbors {
		ids[j] = n.Value
		dists[j] = float64(n.Distance)
	}
	return ids, dists, nil
}
