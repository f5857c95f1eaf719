package request

type CreateReportRequest struct {
	IssueType   string `json:"issue_type" binding:"required,oneof=hardware software network other"`
	Description string `json:"description" binding:"required"`
}
