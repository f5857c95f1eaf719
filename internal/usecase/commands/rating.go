package commands

import (
	"context"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/rating"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/usecase/shared"
)

type RatingCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock) *RatingCommands {
	return &RatingCommands{uow: uow, clock: clk}
}

type RatePCInput struct {
	PCID    uuid.UUID
	UserID  uuid.UUID
	Stars   int
	Comment string
}

// RatePC records a rating and folds it into the PC's running average in the
// same transaction.
func (c *RatingCommands) RatePC(ctx context.Context, in RatePCInput) (uuid.UUID, error) {
	now := c.clock.Now()
	rt, err := rating.NewRating(in.PCID, in.UserID, in.Stars, in.Comment, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.PCs().Get(ctx, in.PCID)
		if err != nil {
			return err
		}
		if err := tx.Ratings().Create(ctx, rt); err != nil {
			return err
		}
		p.ApplyRating(in.Stars, now)
		return tx.PCs().Update(ctx, p)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrPCNotFound)
		}
		return uuid.Nil, errs.Wrap(err, "failed to rate pc")
	}
	return rt.ID(), nil
}
