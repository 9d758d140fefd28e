package pointset

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeCoordinates encodes coordinates into a BLOB suitable for
// storage in SQLite: a little-endian sequence of IEEE 754 float32
// values without a length prefix; the dimensionality is derived from
// the BLOB size on decode.
func EncodeCoordinates(coords []float32) ([]byte, error) {
	if len(coords) == 0 {
		return nil, nil
	}
	b := make([]byte, len(coords)*4)
	for i, v := range coords {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeCoordinates decodes a BLOB produced by EncodeCoordinates.
func DecodeCoordinates(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("pointset: invalid coordinate blob length %d (not multiple of 4)", len(b))
	}
	coords := make([]float32, len(b)/4)
	for i := range coords {
		coords[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return coords, nil
}
