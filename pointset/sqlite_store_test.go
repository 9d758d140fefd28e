package pointset

import (
	"context"
	"testing"

	"github.com/viant/nearest/engine"
)

// TestStore_SaveLoadRemove exercises the SQLite-backed store: saving a
// point set, loading it back in insertion order, and removing a point.
func TestStore_SaveLoadRemove(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	store, err := NewStore(db)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	points := []LabeledPoint{
		{Label: "blue", Coordinates: []float32{0, 0, 255}},
		{Label: "red", Coordinates: []float32{255, 0, 0}},
		{Label: "light-blue", Coordinates: []float32{61, 118, 224}},
	}
	if err := store.Save(context.Background(), points); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(points) {
		t.Fatalf("Load returned %d points, want %d", len(loaded), len(points))
	}
	for i := range points {
		if loaded[i].Label != points[i].Label {
			t.Errorf("point %d label = %s, want %s (insertion order)", i, loaded[i].Label, points[i].Label)
		}
		for d := range points[i].Coordinates {
			if loaded[i].Coordinates[d] != points[i].Coordinates[d] {
				t.Errorf("point %d coordinate %d = %v, want %v",
					i, d, loaded[i].Coordinates[d], points[i].Coordinates[d])
			}
		}
	}

	if err := store.Remove(context.Background(), "red"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	loaded, err = store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load after Remove failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Label != "blue" || loaded[1].Label != "light-blue" {
		t.Fatalf("Load after Remove = %v, want [blue light-blue]", loaded)
	}
}

func TestStore_SaveValidation(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	store, err := NewStore(db)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	// Empty label aborts the transaction; nothing is stored.
	points := []LabeledPoint{
		{Label: "ok", Coordinates: []float32{1}},
		{Label: "", Coordinates: []float32{2}},
	}
	if err := store.Save(context.Background(), points); err == nil {
		t.Fatal("Save with empty label did not fail")
	}
	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("partial save leaked %d points, want 0", len(loaded))
	}
}
