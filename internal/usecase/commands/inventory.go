package commands

import (
	"context"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/domain/room"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/usecase/shared"
)

// InventoryCommands covers the admin CRUD surface for rooms and PCs.
type InventoryCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInventoryCommands(uow shared.UnitOfWork, clk clock.Clock) *InventoryCommands {
	return &InventoryCommands{uow: uow, clock: clk}
}

type CreateRoomInput struct {
	Name        string
	Description string
	RoomType    room.Type
}

func (c *InventoryCommands) CreateRoom(ctx context.Context, in CreateRoomInput) (uuid.UUID, error) {
	rm, err := room.NewRoom(in.Name, in.Description, in.RoomType, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, rm)
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create room")
	}
	return rm.ID(), nil
}

func (c *InventoryCommands) UpdateRoom(ctx context.Context, id uuid.UUID, in CreateRoomInput) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().Get(ctx, id)
		if err != nil {
			return err
		}
		if err := rm.Update(in.Name, in.Description, in.RoomType, c.clock.Now()); err != nil {
			return err
		}
		return tx.Rooms().Update(ctx, rm)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrRoomNotFound)
	}
	return err
}

func (c *InventoryCommands) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, id)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrRoomNotFound)
	}
	return err
}

type CreatePCInput struct {
	RoomID          uuid.UUID
	Number          int
	Specs           pc.Specs
	HourlyRateCents int64
}

func (c *InventoryCommands) CreatePC(ctx context.Context, in CreatePCInput) (uuid.UUID, error) {
	p, err := pc.NewPC(in.RoomID, in.Number, in.Specs, in.HourlyRateCents, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PCs().Create(ctx, p)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, errs.Mark(err, ErrDuplicatePC)
		}
		if infra.IsKind(err, infra.KindForeignKey) {
			return uuid.Nil, errs.Mark(err, ErrRoomNotFound)
		}
		return uuid.Nil, errs.Wrap(err, "failed to create pc")
	}
	return p.ID(), nil
}

type UpdatePCInput struct {
	Number          int
	Specs           pc.Specs
	HourlyRateCents int64
	Status          pc.Status
}

func (c *InventoryCommands) UpdatePC(ctx context.Context, id uuid.UUID, in UpdatePCInput) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.PCs().Get(ctx, id)
		if err != nil {
			return err
		}
		if err := p.Update(in.Number, in.Specs, in.HourlyRateCents, in.Status, c.clock.Now()); err != nil {
			return err
		}
		return tx.PCs().Update(ctx, p)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrPCNotFound)
	}
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrDuplicatePC)
	}
	return err
}

func (c *InventoryCommands) DeletePC(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PCs().Delete(ctx, id)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrPCNotFound)
	}
	return err
}
