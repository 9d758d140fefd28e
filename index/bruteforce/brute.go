package bruteforce

import (
	"fmt"
	"sort"
)

// Index is a brute-force exact nearest-neighbor index ranking by
// ascending squared Euclidean distance. It scans every vector per
// query, so it serves as the reference the tree-backed index is
// checked against and as a sane default for tiny point sets.
type Index struct {
	ids  []string
	vecs [][]float32
	dim  int
}

// Build loads ids and vectors, validating a consistent dimensionality.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	return nil
}

// Query returns up to k ids by ascending squared Euclidean distance.
// Equal distances keep build order.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if k < 0 {
		return nil, nil, fmt.Errorf("bruteforce: negative neighbor count %d", k)
	}
	if k == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	type scored struct {
		idx  int
		dist float32
	}
	scoreds := make([]scored, len(i.vecs))
	for j := range i.vecs {
		// float32 accumulation, matching the tree's metric bit for bit.
		var sum float32
		vec := i.vecs[j]
		for d := 0; d < i.dim; d++ {
			diff := query[d] - vec[d]
			sum += diff * diff
		}
		scoreds[j] = scored{idx: j, dist: sum}
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].dist < scoreds[b].dist })
	if k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outDists := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outDists[n] = float64(scoreds[n].dist)
	}
	return outIDs, outDists, nil
}
