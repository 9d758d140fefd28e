package kdtree

import (
	"math"
	"testing"
)

func TestSquaredEuclideanDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}

	if d := SquaredEuclideanDistance(a, b); d != 25 {
		t.Fatalf("SquaredEuclideanDistance((0,0),(3,4)) = %v, want 25", d)
	}
	if d := SquaredEuclideanDistance(a, a); d != 0 {
		t.Fatalf("SquaredEuclideanDistance(a,a) = %v, want 0", d)
	}
}

func TestEuclideanDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}

	if d := EuclideanDistance(a, b); math.Abs(float64(d)-5) > 1e-4 {
		t.Fatalf("EuclideanDistance((0,0),(3,4)) = %v, want 5", d)
	}
}

func TestDistanceFunction_Function(t *testing.T) {
	// Unknown and empty names resolve to the squared Euclidean default.
	for _, name := range []DistanceFunction{"", "no-such-metric", DistanceFunctionSquaredEuclidean} {
		fn := name.Function()
		if d := fn(Point{1, 1}, Point{2, 2}); d != 2 {
			t.Errorf("%q resolved function returned %v, want 2", name, d)
		}
	}
	fn := DistanceFunctionEuclidean.Function()
	if d := fn(Point{0, 0}, Point{0, 2}); math.Abs(float64(d)-2) > 1e-4 {
		t.Errorf("euclidean function returned %v, want 2", d)
	}
}

func TestDistanceFunction_PlaneDistanceBounds(t *testing.T) {
	// The plane bound must never exceed the metric distance between two
	// points separated by the splitting hyperplane, otherwise pruning
	// could drop exact results.
	a := Point{1.5, -2, 7}
	b := Point{-0.5, 4, 3}
	for _, name := range []DistanceFunction{DistanceFunctionSquaredEuclidean, DistanceFunctionEuclidean} {
		dist := name.Function()(a, b)
		for axis := range a {
			gap := a[axis] - b[axis]
			if bound := name.planeDistance(gap); bound > dist+1e-4 {
				t.Errorf("%s: plane bound %v on axis %d exceeds distance %v", name, bound, axis, dist)
			}
		}
	}
}
