package response

import (
	"time"

	"netcafe-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReportResponse struct {
	ID          uuid.UUID `json:"id"`
	PCID        uuid.UUID `json:"pcId"`
	UserID      uuid.UUID `json:"userId"`
	IssueType   string    `json:"issueType"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromReportView(rm *queries.ReportView) *ReportResponse {
	var resp ReportResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReportViews(rms []queries.ReportView) []ReportResponse {
	out := make([]ReportResponse, 0, len(rms))
	for i := range rms {
		out = append(out, *FromReportView(&rms[i]))
	}
	return out
}
