package pointset

import "testing"

func TestEncodeDecodeCoordinates(t *testing.T) {
	coords := []float32{0, -1.5, 255, 3.14159}

	blob, err := EncodeCoordinates(coords)
	if err != nil {
		t.Fatalf("EncodeCoordinates failed: %v", err)
	}
	if len(blob) != len(coords)*4 {
		t.Fatalf("blob length = %d, want %d", len(blob), len(coords)*4)
	}

	got, err := DecodeCoordinates(blob)
	if err != nil {
		t.Fatalf("DecodeCoordinates failed: %v", err)
	}
	if len(got) != len(coords) {
		t.Fatalf("decoded %d coordinates, want %d", len(got), len(coords))
	}
	for i := range coords {
		if got[i] != coords[i] {
			t.Errorf("coordinate %d = %v, want %v", i, got[i], coords[i])
		}
	}
}

func TestEncodeCoordinates_Empty(t *testing.T) {
	blob, err := EncodeCoordinates(nil)
	if err != nil || blob != nil {
		t.Fatalf("EncodeCoordinates(nil) = (%v, %v), want nil, nil", blob, err)
	}
	got, err := DecodeCoordinates(nil)
	if err != nil || got != nil {
		t.Fatalf("DecodeCoordinates(nil) = (%v, %v), want nil, nil", got, err)
	}
}

func TestDecodeCoordinates_InvalidLength(t *testing.T) {
	if _, err := DecodeCoordinates([]byte{1, 2, 3}); err == nil {
		t.Fatal("DecodeCoordinates with 3 bytes did not fail")
	}
}
