package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
)

type PCRepository struct {
	db db.DBTX
}

func NewPCRepository(dbtx db.DBTX) *PCRepository {
	return &PCRepository{db: dbtx}
}

func (r *PCRepository) Create(ctx context.Context, p *pc.PC) error {
	const query = `
		INSERT INTO pcs (id, room_id, number, cpu, gpu, ram, monitor, status,
			hourly_rate_cents, rating_avg, rating_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	specs := p.Specs()
	_, err := r.db.Exec(ctx, query,
		p.ID(), p.RoomID(), p.Number(),
		specs.CPU, specs.GPU, specs.RAM, specs.Monitor,
		p.Status().String(), p.HourlyRateCents(),
		p.RatingAvg(), p.RatingCount(),
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to insert pc", err)
	}
	return nil
}

func (r *PCRepository) Get(ctx context.Context, id uuid.UUID) (*pc.PC, error) {
	const query = `
		SELECT id, room_id, number, cpu, gpu, ram, monitor, status,
			hourly_rate_cents, rating_avg, rating_count, created_at, updated_at
		FROM pcs
		WHERE id = $1`

	var (
		pcID, roomID         uuid.UUID
		number               int
		specs                pc.Specs
		status               string
		rateCents            int64
		ratingAvg            float64
		ratingCount          int
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pcID, &roomID, &number,
		&specs.CPU, &specs.GPU, &specs.RAM, &specs.Monitor,
		&status, &rateCents, &ratingAvg, &ratingCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapDBError("failed to get pc", err)
	}
	return pc.Reconstruct(pcID, roomID, number, specs, pc.Status(status),
		rateCents, ratingAvg, ratingCount, createdAt, updatedAt), nil
}

func (r *PCRepository) Update(ctx context.Context, p *pc.PC) error {
	const query = `
		UPDATE pcs
		SET number = $2, cpu = $3, gpu = $4, ram = $5, monitor = $6,
			status = $7, hourly_rate_cents = $8,
			rating_avg = $9, rating_count = $10, updated_at = $11
		WHERE id = $1`

	specs := p.Specs()
	tag, err := r.db.Exec(ctx, query,
		p.ID(), p.Number(),
		specs.CPU, specs.GPU, specs.RAM, specs.Monitor,
		p.Status().String(), p.HourlyRateCents(),
		p.RatingAvg(), p.RatingCount(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to update pc", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "pc not found", nil)
	}
	return nil
}

func (r *PCRepository) SetStatus(ctx context.Context, id uuid.UUID, status pc.Status, now time.Time) error {
	const query = `
		UPDATE pcs
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status <> 'disabled'`

	_, err := r.db.Exec(ctx, query, id, status.String(), now)
	if err != nil {
		return infra.WrapDBError("failed to update pc status", err)
	}
	return nil
}

func (r *PCRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pcs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapDBError("failed to delete pc", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "pc not found", nil)
	}
	return nil
}
