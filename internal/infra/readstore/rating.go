package readstore

import (
	"context"

	"github.com/google/uuid"

	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
	"netcafe-booking/internal/usecase/queries"
)

type RatingReadStore struct {
	db db.DBTX
}

func NewRatingReadStore(dbtx db.DBTX) *RatingReadStore {
	return &RatingReadStore{db: dbtx}
}

func (s *RatingReadStore) ListByPC(ctx context.Context, pcID uuid.UUID) ([]queries.RatingView, error) {
	const query = `
		SELECT id, pc_id, user_id, stars, comment, created_at
		FROM ratings
		WHERE pc_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, pcID)
	if err != nil {
		return nil, infra.WrapDBError("failed to list ratings", err)
	}
	defer rows.Close()

	var views []queries.RatingView
	for rows.Next() {
		var v queries.RatingView
		if err := rows.Scan(&v.ID, &v.PCID, &v.UserID, &v.Stars, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapDBError("failed to scan rating", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate ratings", err)
	}
	return views, nil
}
