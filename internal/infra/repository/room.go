package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/room"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	const query = `
		INSERT INTO rooms (id, name, description, room_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		rm.ID(), rm.Name(), rm.Description(), rm.Type().String(), rm.CreatedAt(), rm.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) Get(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, name, description, room_type, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var (
		roomID               uuid.UUID
		name, description    string
		roomType             string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomID, &name, &description, &roomType, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapDBError("failed to get room", err)
	}
	return room.Reconstruct(roomID, name, description, room.Type(roomType), createdAt, updatedAt), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const query = `
		UPDATE rooms
		SET name = $2, description = $3, room_type = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		rm.ID(), rm.Name(), rm.Description(), rm.Type().String(), rm.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapDBError("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "room not found", nil)
	}
	return nil
}
