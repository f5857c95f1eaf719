package report

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidIssueType  = errors.New("invalid issue type")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrAlreadyResolved   = errors.New("report is already resolved")
	ErrInvalidTransition = errors.New("invalid report status transition")
)

type IssueType string

const (
	IssueHardware IssueType = "hardware"
	IssueSoftware IssueType = "software"
	IssueNetwork  IssueType = "network"
	IssueOther    IssueType = "other"
)

func (t IssueType) IsValid() bool {
	switch t {
	case IssueHardware, IssueSoftware, IssueNetwork, IssueOther:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

type Report struct {
	id          uuid.UUID
	pcID        uuid.UUID
	userID      uuid.UUID
	issueType   IssueType
	description string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReport(pcID, userID uuid.UUID, issueType IssueType, description string, now time.Time) (*Report, error) {
	if !issueType.IsValid() {
		return nil, ErrInvalidIssueType
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Report{
		id:          uuid.New(),
		pcID:        pcID,
		userID:      userID,
		issueType:   issueType,
		description: description,
		status:      StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, pcID, userID uuid.UUID,
	issueType IssueType,
	description string,
	status Status,
	createdAt, updatedAt time.Time,
) *Report {
	return &Report{
		id:          id,
		pcID:        pcID,
		userID:      userID,
		issueType:   issueType,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Report) ID() uuid.UUID        { return r.id }
func (r *Report) PCID() uuid.UUID      { return r.pcID }
func (r *Report) UserID() uuid.UUID    { return r.userID }
func (r *Report) IssueType() IssueType { return r.issueType }
func (r *Report) Description() string  { return r.description }
func (r *Report) Status() Status       { return r.status }
func (r *Report) CreatedAt() time.Time { return r.createdAt }
func (r *Report) UpdatedAt() time.Time { return r.updatedAt }

func (r *Report) Resolve(now time.Time) error {
	if r.status != StatusOpen {
		return ErrAlreadyResolved
	}
	r.status = StatusResolved
	r.updatedAt = now
	return nil
}

func (r *Report) Close(now time.Time) error {
	if r.status == StatusClosed {
		return ErrInvalidTransition
	}
	r.status = StatusClosed
	r.updatedAt = now
	return nil
}
