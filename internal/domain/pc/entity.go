package pc

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber = errors.New("pc number must be positive")
	ErrInvalidRate   = errors.New("hourly rate cannot be negative")
	ErrInvalidStatus = errors.New("invalid pc status")
	ErrNoRoom        = errors.New("pc must belong to a room")
)

type PC struct {
	id              uuid.UUID
	roomID          uuid.UUID
	number          int
	specs           Specs
	status          Status
	hourlyRateCents int64
	ratingAvg       float64
	ratingCount     int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPC(roomID uuid.UUID, number int, specs Specs, hourlyRateCents int64, now time.Time) (*PC, error) {
	if roomID == uuid.Nil {
		return nil, ErrNoRoom
	}
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if hourlyRateCents < 0 {
		return nil, ErrInvalidRate
	}
	return &PC{
		id:              uuid.New(),
		roomID:          roomID,
		number:          number,
		specs:           specs,
		status:          StatusAvailable,
		hourlyRateCents: hourlyRateCents,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, roomID uuid.UUID,
	number int,
	specs Specs,
	status Status,
	hourlyRateCents int64,
	ratingAvg float64,
	ratingCount int,
	createdAt, updatedAt time.Time,
) *PC {
	return &PC{
		id:              id,
		roomID:          roomID,
		number:          number,
		specs:           specs,
		status:          status,
		hourlyRateCents: hourlyRateCents,
		ratingAvg:       ratingAvg,
		ratingCount:     ratingCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *PC) ID() uuid.UUID          { return p.id }
func (p *PC) RoomID() uuid.UUID      { return p.roomID }
func (p *PC) Number() int            { return p.number }
func (p *PC) Specs() Specs           { return p.specs }
func (p *PC) Status() Status         { return p.status }
func (p *PC) HourlyRateCents() int64 { return p.hourlyRateCents }
func (p *PC) RatingAvg() float64     { return p.ratingAvg }
func (p *PC) RatingCount() int       { return p.ratingCount }
func (p *PC) CreatedAt() time.Time   { return p.createdAt }
func (p *PC) UpdatedAt() time.Time   { return p.updatedAt }

// IsBookable reports whether the PC can accept new reservations. A reserved
// hint does not block booking; only disabled does.
func (p *PC) IsBookable() bool {
	return p.status != StatusDisabled
}

func (p *PC) Update(number int, specs Specs, hourlyRateCents int64, status Status, now time.Time) error {
	if number <= 0 {
		return ErrInvalidNumber
	}
	if hourlyRateCents < 0 {
		return ErrInvalidRate
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	p.number = number
	p.specs = specs
	p.hourlyRateCents = hourlyRateCents
	p.status = status
	p.updatedAt = now
	return nil
}

// ApplyRating folds one new star rating into the running average.
func (p *PC) ApplyRating(stars int, now time.Time) {
	total := p.ratingAvg*float64(p.ratingCount) + float64(stars)
	p.ratingCount++
	p.ratingAvg = total / float64(p.ratingCount)
	p.updatedAt = now
}
