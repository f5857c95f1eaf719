package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/report"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
)

type ReportRepository struct {
	db db.DBTX
}

func NewReportRepository(dbtx db.DBTX) *ReportRepository {
	return &ReportRepository{db: dbtx}
}

func (r *ReportRepository) Create(ctx context.Context, rp *report.Report) error {
	const query = `
		INSERT INTO reports (id, pc_id, user_id, issue_type, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		rp.ID(), rp.PCID(), rp.UserID(),
		string(rp.IssueType()), rp.Description(), string(rp.Status()),
		rp.CreatedAt(), rp.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapDBError("failed to insert report", err)
	}
	return nil
}

func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	const query = `
		SELECT id, pc_id, user_id, issue_type, description, status, created_at, updated_at
		FROM reports
		WHERE id = $1`

	var (
		reportID, pcID, userID uuid.UUID
		issueType, description string
		status                 string
		createdAt, updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reportID, &pcID, &userID, &issueType, &description, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapDBError("failed to get report", err)
	}
	return report.Reconstruct(reportID, pcID, userID,
		report.IssueType(issueType), description, report.Status(status),
		createdAt, updatedAt), nil
}

func (r *ReportRepository) Update(ctx context.Context, rp *report.Report) error {
	const query = `
		UPDATE reports
		SET status = $2, updated_at = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, rp.ID(), string(rp.Status()), rp.UpdatedAt())
	if err != nil {
		return infra.WrapDBError("failed to update report", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "report not found", nil)
	}
	return nil
}
