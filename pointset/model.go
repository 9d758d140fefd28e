package pointset

// LabeledPoint pairs an opaque label with coordinates in k-dimensional
// space. The label is carried through queries and never participates in
// distance computation.
type LabeledPoint struct {
	// Label identifies the point. It must be non-empty and unique
	// within a store.
	Label string

	// Coordinates is the point's location.
	Coordinates []float32
}
