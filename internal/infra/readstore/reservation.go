package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
	"netcafe-booking/internal/usecase/queries"
)

// ReservationReadStore serves both the query layer and the admission
// engine's index warm-up.
type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewColumns = `
	id, pc_id, user_id, start_time, end_time, status, created_at, updated_at`

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.ReservationView, error) {
	const query = `
		SELECT` + reservationViewColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapDBError("failed to list reservations by user", err)
	}
	return collectViews(rows)
}

func (s *ReservationReadStore) ListAll(ctx context.Context) ([]queries.ReservationView, error) {
	const query = `
		SELECT` + reservationViewColumns + `
		FROM reservations
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBError("failed to list reservations", err)
	}
	return collectViews(rows)
}

func (s *ReservationReadStore) Find(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT` + reservationViewColumns + `
		FROM reservations
		WHERE id = $1`

	view, err := scanView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *ReservationReadStore) ActiveOverlapping(ctx context.Context, pcID uuid.UUID, iv reservation.Interval) ([]reservation.Interval, error) {
	const query = `
		SELECT start_time, end_time
		FROM reservations
		WHERE pc_id = $1 AND status = 'active'
		  AND start_time < $3 AND end_time > $2
		ORDER BY start_time`

	rows, err := s.db.Query(ctx, query, pcID, iv.Start, iv.End)
	if err != nil {
		return nil, infra.WrapDBError("failed to query overlapping reservations", err)
	}
	defer rows.Close()

	var out []reservation.Interval
	for rows.Next() {
		var cur reservation.Interval
		if err := rows.Scan(&cur.Start, &cur.End); err != nil {
			return nil, infra.WrapDBError("failed to scan interval", err)
		}
		out = append(out, cur)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate intervals", err)
	}
	return out, nil
}

// ActiveEntries loads the active intervals for one PC, used to warm the
// conflict index.
func (s *ReservationReadStore) ActiveEntries(ctx context.Context, pcID uuid.UUID) ([]reservation.Entry, error) {
	const query = `
		SELECT id, start_time, end_time
		FROM reservations
		WHERE pc_id = $1 AND status = 'active'
		ORDER BY start_time`

	rows, err := s.db.Query(ctx, query, pcID)
	if err != nil {
		return nil, infra.WrapDBError("failed to load active reservations", err)
	}
	defer rows.Close()

	var entries []reservation.Entry
	for rows.Next() {
		var e reservation.Entry
		if err := rows.Scan(&e.ID, &e.Interval.Start, &e.Interval.End); err != nil {
			return nil, infra.WrapDBError("failed to scan active reservation", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate active reservations", err)
	}
	return entries, nil
}

// Get returns the reservation entity for command-side ownership checks.
func (s *ReservationReadStore) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT` + reservationViewColumns + `
		FROM reservations
		WHERE id = $1`

	var (
		resID, pcID, userID  uuid.UUID
		start, end           time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&resID, &pcID, &userID, &start, &end, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapDBError("failed to get reservation", err)
	}

	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, infra.NewRepositoryError(infra.KindUnknown, "corrupt reservation interval", err)
	}
	return reservation.Reconstruct(resID, pcID, userID, slot, reservation.Status(status), createdAt, updatedAt), nil
}

func collectViews(rows pgx.Rows) ([]queries.ReservationView, error) {
	defer rows.Close()

	var views []queries.ReservationView
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate reservations", err)
	}
	return views, nil
}

func scanView(row pgx.Row) (queries.ReservationView, error) {
	var (
		view   queries.ReservationView
		status string
	)
	err := row.Scan(
		&view.ID, &view.PCID, &view.UserID,
		&view.Start, &view.End, &status,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return queries.ReservationView{}, infra.WrapDBError("failed to scan reservation view", err)
	}
	view.Status = status
	view.TotalHours = int(view.End.Sub(view.Start) / time.Hour)
	return view, nil
}
