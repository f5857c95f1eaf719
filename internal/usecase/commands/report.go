package commands

import (
	"context"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/report"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/usecase/shared"
)

type ReportCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReportCommands(uow shared.UnitOfWork, clk clock.Clock) *ReportCommands {
	return &ReportCommands{uow: uow, clock: clk}
}

type SubmitReportInput struct {
	PCID        uuid.UUID
	UserID      uuid.UUID
	IssueType   report.IssueType
	Description string
}

func (c *ReportCommands) Submit(ctx context.Context, in SubmitReportInput) (uuid.UUID, error) {
	rp, err := report.NewReport(in.PCID, in.UserID, in.IssueType, in.Description, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reports().Create(ctx, rp)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKey) {
			return uuid.Nil, errs.Mark(err, ErrPCNotFound)
		}
		return uuid.Nil, errs.Wrap(err, "failed to submit report")
	}
	return rp.ID(), nil
}

func (c *ReportCommands) Resolve(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(rp *report.Report) error {
		return rp.Resolve(c.clock.Now())
	})
}

func (c *ReportCommands) Close(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(rp *report.Report) error {
		return rp.Close(c.clock.Now())
	})
}

func (c *ReportCommands) transition(ctx context.Context, id uuid.UUID, fn func(*report.Report) error) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rp, err := tx.Reports().Get(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(rp); err != nil {
			return err
		}
		return tx.Reports().Update(ctx, rp)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReportNotFound)
	}
	return err
}
