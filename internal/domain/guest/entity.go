package guest

import (
	"time"

	"github.com/google/uuid"
)

// Guest is a person identified by email who has made one or more
// reservations. Registered guests carry a link to an operator-console user
// account; walk-ins do not. The distinction affects which workflows are
// offered, never the reservation model.
type Guest struct {
	id        uuid.UUID
	name      Name
	email     Email
	phone     Phone
	notes     string
	userID    *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(name Name, email Email, phone Phone, notes string) *Guest {
	return &Guest{
		id:    uuid.New(),
		name:  name,
		email: email,
		phone: phone,
		notes: notes,
	}
}

func ReconstructGuest(
	id uuid.UUID,
	name Name,
	email Email,
	phone Phone,
	notes string,
	userID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		notes:     notes,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *Guest) IsRegistered() bool {
	return g.userID != nil
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) Name() Name           { return g.name }
func (g *Guest) Email() Email         { return g.email }
func (g *Guest) Phone() Phone         { return g.phone }
func (g *Guest) Notes() string        { return g.notes }
func (g *Guest) UserID() *uuid.UUID   { return g.userID }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }
