package index

// Index defines a vector index built from (id, coordinates) pairs and
// queried for exact nearest neighbors.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length and every vector the
	// same dimensionality. Build replaces any previous content.
	Build(ids []string, vectors [][]float32) error

	// Query runs a kNN search with the provided query vector and
	// returns up to k matches as parallel slices of ids and distances,
	// ordered by ascending squared Euclidean distance. k == 0 yields an
	// empty result; a negative k is an error.
	Query(query []float32, k int) (ids []string, distances []float64, err error)
}
