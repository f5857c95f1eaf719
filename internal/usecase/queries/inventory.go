package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/errs"
)

type RoomView struct {
	ID          uuid.UUID
	Name        string
	Description string
	RoomType    string
	PCCount     int
	CreatedAt   time.Time
}

type PCView struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	Number          int
	Specs           pc.Specs
	Status          string
	HourlyRateCents int64
	RatingAvg       float64
	RatingCount     int
	CreatedAt       time.Time
}

type InventoryReadStore interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListPCsByRoom(ctx context.Context, roomID uuid.UUID) ([]PCView, error)
	GetPC(ctx context.Context, id uuid.UUID) (*PCView, error)
}

// StatusHint reads the cached "reserved right now" flag for browse
// responses. Best effort: a miss or an error leaves the stored status.
type StatusHint interface {
	IsReserved(ctx context.Context, pcID uuid.UUID) (bool, error)
}

type InventoryQueries struct {
	store InventoryReadStore
	hints StatusHint
}

func NewInventoryQueries(store InventoryReadStore, hints StatusHint) *InventoryQueries {
	return &InventoryQueries{store: store, hints: hints}
}

func (q *InventoryQueries) ListRooms(ctx context.Context) ([]RoomView, error) {
	return q.store.ListRooms(ctx)
}

func (q *InventoryQueries) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.GetRoom(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrRoomNotFound)
	}
	return view, err
}

func (q *InventoryQueries) ListPCsByRoom(ctx context.Context, roomID uuid.UUID) ([]PCView, error) {
	if _, err := q.store.GetRoom(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}
	views, err := q.store.ListPCsByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		q.overlayHint(ctx, &views[i])
	}
	return views, nil
}

func (q *InventoryQueries) GetPC(ctx context.Context, id uuid.UUID) (*PCView, error) {
	view, err := q.store.GetPC(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPCNotFound)
		}
		return nil, err
	}
	q.overlayHint(ctx, view)
	return view, nil
}

// overlayHint upgrades a stored "available" to "reserved" when the cache
// says the PC is occupied right now. Disabled is never overridden and the
// ledger stays authoritative for admission either way.
func (q *InventoryQueries) overlayHint(ctx context.Context, view *PCView) {
	if view.Status != pc.StatusAvailable.String() {
		return
	}
	reserved, err := q.hints.IsReserved(ctx, view.ID)
	if err != nil {
		return
	}
	if reserved {
		view.Status = pc.StatusReserved.String()
	}
}
