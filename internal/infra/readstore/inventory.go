package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
	"netcafe-booking/internal/usecase/queries"
	"netcafe-booking/internal/usecase/shared"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (s *InventoryReadStore) ListRooms(ctx context.Context) ([]queries.RoomView, error) {
	const query = `
		SELECT r.id, r.name, r.description, r.room_type, COUNT(p.id), r.created_at
		FROM rooms r
		LEFT JOIN pcs p ON p.room_id = r.id
		GROUP BY r.id
		ORDER BY r.name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBError("failed to list rooms", err)
	}
	defer rows.Close()

	var views []queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.RoomType, &v.PCCount, &v.CreatedAt); err != nil {
			return nil, infra.WrapDBError("failed to scan room", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate rooms", err)
	}
	return views, nil
}

func (s *InventoryReadStore) GetRoom(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `
		SELECT r.id, r.name, r.description, r.room_type, COUNT(p.id), r.created_at
		FROM rooms r
		LEFT JOIN pcs p ON p.room_id = r.id
		WHERE r.id = $1
		GROUP BY r.id`

	var v queries.RoomView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.RoomType, &v.PCCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapDBError("failed to get room", err)
	}
	return &v, nil
}

const pcViewColumns = `
	id, room_id, number, cpu, gpu, ram, monitor, status,
	hourly_rate_cents, rating_avg, rating_count, created_at`

func (s *InventoryReadStore) ListPCsByRoom(ctx context.Context, roomID uuid.UUID) ([]queries.PCView, error) {
	const query = `
		SELECT` + pcViewColumns + `
		FROM pcs
		WHERE room_id = $1
		ORDER BY number`

	rows, err := s.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapDBError("failed to list pcs", err)
	}
	defer rows.Close()

	var views []queries.PCView
	for rows.Next() {
		v, err := scanPCView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate pcs", err)
	}
	return views, nil
}

func (s *InventoryReadStore) GetPC(ctx context.Context, id uuid.UUID) (*queries.PCView, error) {
	const query = `
		SELECT` + pcViewColumns + `
		FROM pcs
		WHERE id = $1`

	v, err := scanPCView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Snapshot serves the command side's pre-admission PC lookup.
func (s *InventoryReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.PCSnapshot, error) {
	v, err := s.GetPC(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.PCSnapshot{
		ID:              v.ID,
		RoomID:          v.RoomID,
		Number:          v.Number,
		Specs:           v.Specs,
		Status:          pc.Status(v.Status),
		HourlyRateCents: v.HourlyRateCents,
		RatingAvg:       v.RatingAvg,
		RatingCount:     v.RatingCount,
	}, nil
}

func scanPCView(row pgx.Row) (queries.PCView, error) {
	var v queries.PCView
	err := row.Scan(
		&v.ID, &v.RoomID, &v.Number,
		&v.Specs.CPU, &v.Specs.GPU, &v.Specs.RAM, &v.Specs.Monitor,
		&v.Status, &v.HourlyRateCents, &v.RatingAvg, &v.RatingCount,
		&v.CreatedAt,
	)
	if err != nil {
		return queries.PCView{}, infra.WrapDBError("failed to scan pc", err)
	}
	return v, nil
}
