package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("room name cannot be empty")
	ErrInvalidType = errors.New("invalid room type")
)

type Type string

const (
	TypeVIP      Type = "VIP"
	TypeNormal   Type = "Normal"
	TypeTraining Type = "Training"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeVIP, TypeNormal, TypeTraining:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

type Room struct {
	id          uuid.UUID
	name        string
	description string
	roomType    Type
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRoom builds a room; an empty type defaults to Normal.
func NewRoom(name, description string, roomType Type, now time.Time) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if roomType == "" {
		roomType = TypeNormal
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	return &Room{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		roomType:    roomType,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, description string, roomType Type, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		name:        name,
		description: description,
		roomType:    roomType,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Description() string  { return r.description }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// Update replaces the room's attributes; as with NewRoom an empty type
// means Normal.
func (r *Room) Update(name, description string, roomType Type, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if roomType == "" {
		roomType = TypeNormal
	}
	if !roomType.IsValid() {
		return ErrInvalidType
	}
	r.name = name
	r.description = strings.TrimSpace(description)
	r.roomType = roomType
	r.updatedAt = now
	return nil
}
