package pointset

import (
	"context"
	"database/sql"
	"fmt"
)

// Store persists labeled points in a SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore ensures the points schema exists and returns a store bound
// to db.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("pointset: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save inserts points in a single transaction; either all points are
// stored or none. Labels must be non-empty and not already stored.
func (s *Store) Save(ctx context.Context, points []LabeledPoint) error {
	if len(points) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points(label, coords) VALUES(?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		if p.Label == "" {
			return fmt.Errorf("pointset: LabeledPoint.Label must be set")
		}
		blob, err := EncodeCoordinates(p.Coordinates)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, p.Label, blob); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns all stored points in insertion (rowid) order.
func (s *Store) Load(ctx context.Context) ([]LabeledPoint, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT label, coords FROM points ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LabeledPoint
	for rows.Next() {
		var p LabeledPoint
		var blob []byte
		if err := rows.Scan(&p.Label, &blob); err != nil {
			return nil, err
		}
		if p.Coordinates, err = DecodeCoordinates(blob); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a point by label.
func (s *Store) Remove(ctx context.Context, label string) error {
	if label == "" {
		return fmt.Errorf("pointset: Remove called with empty label")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM points WHERE label = ?`, label)
	return err
}
