package report

import (
	"context"
	"math"
	"sort"

	"github.com/dmriqc/hemicheck/vec3"
)

// PoleMatch is a single hit from NearestPoles.
type PoleMatch struct {
	ID    string
	Score float64
	Pole  vec3.Vec3
}

// NearestPoles ranks stored hemispherical records by cosine similarity of
// their pole to the query direction and returns up to k matches, best
// first. Records without a usable pole (zero vector) are skipped. When
// k <= 0, all matches are returned.
//
// The record count per study is small, so a full scan is used rather than
// an index.
func (s *Store) NearestPoles(ctx context.Context, query vec3.Vec3, k int) ([]PoleMatch, error) {
	qn := query.Norm()
	if qn == 0 {
		return nil, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, pole FROM hemi_checks WHERE is_hemi = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PoleMatch
	for rows.Next() {
		var (
			id   string
			blob []byte
		)
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, err
		}
		pole, err := DecodePole(blob)
		if err != nil {
			return nil, err
		}
		pn := pole.Norm()
		if pn == 0 {
			continue
		}
		score := query.Dot(pole) / (qn * pn)
		if math.IsNaN(score) {
			continue
		}
		out = append(out, PoleMatch{ID: id, Score: score, Pole: pole})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].ID < out[b].ID
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, nil
}
