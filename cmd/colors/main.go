// Command colors looks up the nearest named colors to a query color in
// RGB space. By default it searches a small built-in palette; with -db
// it loads labeled points from a SQLite points table instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/viant/nearest/engine"
	"github.com/viant/nearest/kdtree"
	"github.com/viant/nearest/pointset"
)

var palette = []kdtree.Entry[string]{
	kdtree.NewEntry("blue", 0, 0, 255),
	kdtree.NewEntry("red", 255, 0, 0),
	kdtree.NewEntry("navy", 17, 4, 89),
	kdtree.NewEntry("purple", 171, 3, 255),
	kdtree.NewEntry("light-blue", 61, 118, 224),
	kdtree.NewEntry("pink", 255, 3, 213),
	kdtree.NewEntry("yellow", 255, 234, 0),
	kdtree.NewEntry("green", 16, 145, 25),
	kdtree.NewEntry("orange", 255, 106, 0),
}

func main() {
	dbPath := flag.String("db", "", "SQLite database with a points table; empty uses the built-in palette")
	query := flag.String("query", "237,139,69", "query color as r,g,b")
	k := flag.Int("k", 2, "number of neighbors to report")
	flag.Parse()

	entries := palette
	if *dbPath != "" {
		loaded, err := loadEntries(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		entries = loaded
	}

	point, err := parsePoint(*query)
	if err != nil {
		log.Fatal(err)
	}

	tree, err := kdtree.New(entries, kdtree.DistanceFunctionSquaredEuclidean)
	if err != nil {
		log.Fatal(err)
	}
	neighbors, err := tree.NearestNeighbors(point, *k)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("the nearest colors to %v:\n", []float32(point))
	for _, n := range neighbors {
		fmt.Printf("color: %s, squared euclidean distance: %g\n", n.Value, n.Distance)
	}
}

func loadEntries(path string) ([]kdtree.Entry[string], error) {
	db, err := engine.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	store, err := pointset.NewStore(db)
	if err != nil {
		return nil, err
	}
	points, err := store.Load(context.Background())
	if err != nil {
		return nil, err
	}
	entries := make([]kdtree.Entry[string], len(points))
	for i, p := range points {
		entries[i] = kdtree.Entry[string]{Value: p.Label, Point: p.Coordinates}
	}
	return entries, nil
}

func parsePoint(s string) (kdtree.Point, error) {
	parts := strings.Split(s, ",")
	point := make(kdtree.Point, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		point = append(point, float32(v))
	}
	return point, nil
}
