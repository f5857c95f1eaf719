package repository

import (
	"context"

	"netcafe-booking/internal/domain/rating"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
)

type RatingRepository struct {
	db db.DBTX
}

func NewRatingRepository(dbtx db.DBTX) *RatingRepository {
	return &RatingRepository{db: dbtx}
}

func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	const query = `
		INSERT INTO ratings (id, pc_id, user_id, stars, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		rt.ID(), rt.PCID(), rt.UserID(), rt.Stars(), rt.Comment(), rt.CreatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to insert rating", err)
	}
	return nil
}
