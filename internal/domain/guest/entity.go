package guest

import (
	"errors"
	"strings"

	"hotel-reservation/internal/domain/user"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("guest name is required")

// Guest is the person a reservation is held for. A guest may exist without a
// login account when staff book on someone's behalf.
type Guest struct {
	id     uuid.UUID
	userID *uuid.UUID
	name   string
	email  user.Email
	phone  string
}

func NewGuest(name, email, phone string, userID *uuid.UUID) (*Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Guest{
		id:     uuid.New(),
		userID: userID,
		name:   name,
		email:  e,
		phone:  strings.TrimSpace(phone),
	}, nil
}

func Reconstruct(id uuid.UUID, userID *uuid.UUID, name string, email user.Email, phone string) *Guest {
	return &Guest{id: id, userID: userID, name: name, email: email, phone: phone}
}

// FirstName and LastName split the display name the way the payment gateway expects.
func (g *Guest) FirstName() string {
	first, _, _ := strings.Cut(g.name, " ")
	return first
}

func (g *Guest) LastName() string {
	_, last, _ := strings.Cut(g.name, " ")
	return strings.TrimSpace(last)
}

func (g *Guest) ID() uuid.UUID      { return g.id }
func (g *Guest) UserID() *uuid.UUID { return g.userID }
func (g *Guest) Name() string       { return g.name }
func (g *Guest) Email() user.Email  { return g.email }
func (g *Guest) Phone() string      { return g.phone }
