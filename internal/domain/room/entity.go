package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber = errors.New("room number is required")
	ErrInvalidStatus     = errors.New("invalid housekeeping status")
)

// Status is the housekeeping state of a physical room.
type Status string

const (
	StatusClean       Status = "CLEAN"
	StatusDirty       Status = "DIRTY"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusClean, StatusDirty, StatusInProgress, StatusMaintenance:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Room struct {
	id         uuid.UUID
	number     string
	roomTypeID uuid.UUID
	floor      int
	status     Status
}

func NewRoom(number string, roomTypeID uuid.UUID, floor int) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}
	return &Room{
		id:         uuid.New(),
		number:     number,
		roomTypeID: roomTypeID,
		floor:      floor,
		status:     StatusClean,
	}, nil
}

func Reconstruct(id uuid.UUID, number string, roomTypeID uuid.UUID, floor int, status Status) *Room {
	return &Room{id: id, number: number, roomTypeID: roomTypeID, floor: floor, status: status}
}

func (r *Room) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	r.status = s
	return nil
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Number() string        { return r.number }
func (r *Room) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Room) Floor() int            { return r.floor }
func (r *Room) Status() Status        { return r.status }
