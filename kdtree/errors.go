package kdtree

import "errors"

var (
	// ErrDimensionMismatch reports a point or query whose
	// dimensionality differs from the tree's.
	ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")

	// ErrNegativeCount reports a negative neighbor count passed to a
	// query.
	ErrNegativeCount = errors.New("kdtree: negative neighbor count")
)
