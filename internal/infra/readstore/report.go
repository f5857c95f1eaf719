package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"netcafe-booking/internal/domain/report"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/db"
	"netcafe-booking/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

const reportViewColumns = `
	id, pc_id, user_id, issue_type, description, status, created_at, updated_at`

func (s *ReportReadStore) List(ctx context.Context, status *report.Status) ([]queries.ReportView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		const query = `
			SELECT` + reportViewColumns + `
			FROM reports
			WHERE status = $1
			ORDER BY created_at DESC`
		rows, err = s.db.Query(ctx, query, string(*status))
	} else {
		const query = `
			SELECT` + reportViewColumns + `
			FROM reports
			ORDER BY created_at DESC`
		rows, err = s.db.Query(ctx, query)
	}
	if err != nil {
		return nil, infra.WrapDBError("failed to list reports", err)
	}
	defer rows.Close()

	var views []queries.ReportView
	for rows.Next() {
		v, err := scanReportView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBError("failed to iterate reports", err)
	}
	return views, nil
}

func (s *ReportReadStore) Find(ctx context.Context, id uuid.UUID) (*queries.ReportView, error) {
	const query = `
		SELECT` + reportViewColumns + `
		FROM reports
		WHERE id = $1`

	v, err := scanReportView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanReportView(row pgx.Row) (queries.ReportView, error) {
	var v queries.ReportView
	err := row.Scan(
		&v.ID, &v.PCID, &v.UserID,
		&v.IssueType, &v.Description, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return queries.ReportView{}, infra.WrapDBError("failed to scan report", err)
	}
	return v, nil
}
