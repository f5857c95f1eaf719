package rating

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStars   = errors.New("stars must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds 1000 characters")
)

const maxCommentLength = 1000

type Rating struct {
	id        uuid.UUID
	pcID      uuid.UUID
	userID    uuid.UUID
	stars     int
	comment   string
	createdAt time.Time
}

func NewRating(pcID, userID uuid.UUID, stars int, comment string, now time.Time) (*Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, ErrCommentTooLong
	}
	return &Rating{
		id:        uuid.New(),
		pcID:      pcID,
		userID:    userID,
		stars:     stars,
		comment:   comment,
		createdAt: now,
	}, nil
}

func Reconstruct(id, pcID, userID uuid.UUID, stars int, comment string, createdAt time.Time) *Rating {
	return &Rating{
		id:        id,
		pcID:      pcID,
		userID:    userID,
		stars:     stars,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) PCID() uuid.UUID      { return r.pcID }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) Stars() int           { return r.stars }
func (r *Rating) Comment() string      { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
