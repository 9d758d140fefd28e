package engine

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"

	"github.com/viant/nearest/kdtree"
)

// RegisterDistanceFunctions registers point_sqdist with the driver so
// it is available on connections opened after this call. The function
// takes two coordinate BLOBs (the pointset encoding) and returns their
// squared Euclidean distance, so stored points can be distance-checked
// SQL-side.
// Note: existing open connections will not see new functions.
func RegisterDistanceFunctions() error {
	// Registration is global to the driver; the duplicate error on
	// repeated calls is ignored.
	_ = sqlite.RegisterDeterministicScalarFunction("point_sqdist", 2, pointSqDistImpl)
	return nil
}

func pointSqDistImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("point_sqdist: expected 2 arguments, got %d", len(args))
	}
	a, err := asCoordinates(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asCoordinates(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("point_sqdist: dimension mismatch %d vs %d", len(a), len(b))
	}
	return float64(kdtree.SquaredEuclideanDistance(a, b)), nil
}

func asCoordinates(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeCoordinates(v)
	default:
		return nil, fmt.Errorf("point_sqdist: unsupported argument type %T; want BLOB", arg)
	}
}

// Local decoder matching pointset.DecodeCoordinates; pointset's tests
// open databases through this package, so importing it back would cycle.
func decodeCoordinates(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("point_sqdist: invalid coordinate blob length %d", len(b))
	}
	coords := make([]float32, len(b)/4)
	for i := range coords {
		coords[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return coords, nil
}
