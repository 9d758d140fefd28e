package kdtree

// Point holds coordinates in k-dimensional space.
type Point []float32

// Dims returns the dimensionality of the point.
func (p Point) Dims() int { return len(p) }

// Entry pairs an arbitrary value with its location. The value is
// carried through queries and never participates in distance
// computation.
type Entry[T any] struct {
	Value T
	Point Point
}

// NewEntry constructs an entry for the given value and coordinates.
func NewEntry[T any](value T, coordinates ...float32) Entry[T] {
	return Entry[T]{Value: value, Point: coordinates}
}
