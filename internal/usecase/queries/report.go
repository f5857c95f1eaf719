package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/report"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/errs"
)

type ReportView struct {
	ID          uuid.UUID
	PCID        uuid.UUID
	UserID      uuid.UUID
	IssueType   string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReportReadStore interface {
	// List returns reports newest first, optionally filtered by status.
	List(ctx context.Context, status *report.Status) ([]ReportView, error)
	Find(ctx context.Context, id uuid.UUID) (*ReportView, error)
}

type ReportQueries struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) *ReportQueries {
	return &ReportQueries{store: store}
}

func (q *ReportQueries) List(ctx context.Context, status *report.Status) ([]ReportView, error) {
	return q.store.List(ctx, status)
}

func (q *ReportQueries) Get(ctx context.Context, id uuid.UUID) (*ReportView, error) {
	view, err := q.store.Find(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrReportNotFound)
	}
	return view, err
}
