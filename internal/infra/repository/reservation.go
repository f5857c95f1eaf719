package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
	"netcafe-booking/internal/usecase/shared"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (id, pc_id, user_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		res.ID(), res.PCID(), res.UserID(),
		res.Slot().Start(), res.Slot().End(),
		res.Status().String(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, pc_id, user_id, start_time, end_time, status, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	return scanReservation(row)
}

func (r *ReservationRepository) SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status, now time.Time) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'active'`

	tag, err := r.db.Exec(ctx, query, id, status.String(), now)
	if err != nil {
		return infra.WrapDBError("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "no active reservation to update", nil)
	}
	return nil
}

func (r *ReservationRepository) CompleteExpired(ctx context.Context, now time.Time) ([]shared.ExpiredReservation, error) {
	const query = `
		UPDATE reservations
		SET status = 'completed', updated_at = $1
		WHERE status = 'active' AND end_time <= $1
		RETURNING id, pc_id`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapDBError("failed to complete expired reservations", err)
	}
	defer rows.Close()

	var expired []shared.ExpiredReservation
	for rows.Next() {
		var e shared.ExpiredReservation
		if err := rows.Scan(&e.ID, &e.PCID); err != nil {
			return nil, infra.WrapDBError("failed to scan expired reservation", err)
		}
		expired = append(expired, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate expired reservations", err)
	}
	return expired, nil
}

func (r *ReservationRepository) HasActiveCovering(ctx context.Context, pcID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE pc_id = $1 AND status = 'active'
			  AND start_time <= $2 AND end_time > $2
		)`

	var covered bool
	if err := r.db.QueryRow(ctx, query, pcID, at).Scan(&covered); err != nil {
		return false, infra.WrapDBError("failed to check active coverage", err)
	}
	return covered, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, pcID, userID     uuid.UUID
		start, end           time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &pcID, &userID, &start, &end, &status, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapDBError("failed to scan reservation", err)
	}

	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, infra.NewRepositoryError(infra.KindUnknown, "corrupt reservation interval", err)
	}
	return reservation.Reconstruct(id, pcID, userID, slot, reservation.Status(status), createdAt, updatedAt), nil
}
