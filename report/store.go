package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmriqc/hemicheck/vec3"
)

// Record is one persisted hemisphere-check outcome.
type Record struct {
	// ID identifies the checked scan or scheme; it must be set by the
	// caller and is unique within a store.
	ID string

	// BvalPath and BvecPath record where the scheme came from. Empty when
	// the check ran on a prebuilt table.
	BvalPath string
	BvecPath string

	// Tolerance is the unit-norm tolerance the check ran with.
	Tolerance float64

	// NumDirections is the count of non-b0 directions tested.
	NumDirections int

	// IsHemispherical and Pole mirror hemi.Result.
	IsHemispherical bool
	Pole            vec3.Vec3

	// CreatedAt is assigned by the store on Save.
	CreatedAt time.Time
}

// Store provides durable storage for check records on a SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore creates a SQLite-backed Store, ensuring the hemi_checks schema
// exists in the provided database.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("report: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save inserts a record, replacing any previous record with the same ID so
// that re-running a check updates the stored verdict.
func (s *Store) Save(ctx context.Context, r Record) error {
	if r.ID == "" {
		return fmt.Errorf("report: Record.ID must be set")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO hemi_checks(id, bval_path, bvec_path, tolerance, n_dirs, is_hemi, pole, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  bval_path  = excluded.bval_path,
  bvec_path  = excluded.bvec_path,
  tolerance  = excluded.tolerance,
  n_dirs     = excluded.n_dirs,
  is_hemi    = excluded.is_hemi,
  pole       = excluded.pole,
  created_at = excluded.created_at`,
		r.ID, r.BvalPath, r.BvecPath, r.Tolerance, r.NumDirections,
		boolToInt(r.IsHemispherical), EncodePole(r.Pole), createdAt)
	return err
}

// Get loads the record with the given ID. sql.ErrNoRows is returned when no
// such record exists.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	row := s.db.QueryRowContext(ctx, `
SELECT id, bval_path, bvec_path, tolerance, n_dirs, is_hemi, pole, created_at
FROM hemi_checks WHERE id = ?`, id)
	return scanRecord(row)
}

// List returns up to limit records, newest first. When limit <= 0, all
// records are returned.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	q := `
SELECT id, bval_path, bvec_path, tolerance, n_dirs, is_hemi, pole, created_at
FROM hemi_checks ORDER BY created_at DESC, id`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes the record with the given ID.
func (s *Store) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("report: Remove called with empty id")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM hemi_checks WHERE id = ?`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		r      Record
		isHemi int
		blob   []byte
	)
	if err := row.Scan(&r.ID, &r.BvalPath, &r.BvecPath, &r.Tolerance, &r.NumDirections,
		&isHemi, &blob, &r.CreatedAt); err != nil {
		return Record{}, err
	}
	r.IsHemispherical = isHemi != 0
	pole, err := DecodePole(blob)
	if err != nil {
		return Record{}, err
	}
	r.Pole = pole
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
