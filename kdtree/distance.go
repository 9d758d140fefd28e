package kdtree

import "github.com/viant/vec/search"

// DistanceFunction enumerates supported distance metrics.
type DistanceFunction string

const (
	// DistanceFunctionSquaredEuclidean ranks by the sum of squared
	// per-coordinate differences. It is monotonic with Euclidean
	// distance and skips the square root, so it is the default.
	DistanceFunctionSquaredEuclidean DistanceFunction = "squared_euclidean"

	// DistanceFunctionEuclidean ranks by true Euclidean (L2) distance.
	DistanceFunctionEuclidean DistanceFunction = "euclidean"
)

// DistanceFunc computes the distance between two points of equal
// dimensionality.
type DistanceFunc func(p1, p2 Point) float32

// Function resolves the callable distance implementation. Unknown
// names resolve to squared Euclidean.
func (d DistanceFunction) Function() DistanceFunc {
	switch d {
	case DistanceFunctionEuclidean:
		return EuclideanDistance
	default:
		return SquaredEuclideanDistance
	}
}

// planeDistance maps a signed gap along a splitting axis into the
// metric's space. The result lower-bounds the metric distance between
// the query and any point on the far side of the splitting hyperplane;
// a subtree is skipped only when this bound reaches the worst kept
// distance, which keeps pruning exact.
func (d DistanceFunction) planeDistance(gap float32) float32 {
	switch d {
	case DistanceFunctionEuclidean:
		if gap < 0 {
			return -gap
		}
		return gap
	default:
		return gap * gap
	}
}

// SquaredEuclideanDistance returns the sum of squared per-coordinate
// differences between p1 and p2.
func SquaredEuclideanDistance(p1, p2 Point) float32 {
	var sum float32
	for i := range p1 {
		d := p1[i] - p2[i]
		sum += d * d
	}
	return sum
}

// EuclideanDistance returns the Euclidean distance between p1 and p2.
func EuclideanDistance(p1, p2 Point) float32 {
	return search.Float32s(p1).EuclideanDistance(search.Float32s(p2))
}
