package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUserInactive = errors.New("user is inactive")

// User is the booking owner as seen by this service. Accounts are managed elsewhere.
type User struct {
	id       uuid.UUID
	email    Email
	role     Role
	isActive bool
}

func ReconstructUser(id uuid.UUID, email string, role string, isActive bool) (*User, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	r, err := NewRole(role)
	if err != nil {
		return nil, err
	}
	return &User{id: id, email: e, role: r, isActive: isActive}, nil
}

func (u *User) ID() uuid.UUID  { return u.id }
func (u *User) Email() Email   { return u.email }
func (u *User) Role() Role     { return u.role }
func (u *User) IsActive() bool { return u.isActive }

// EnsureCanBook rejects accounts that have been deactivated.
func (u *User) EnsureCanBook() error {
	if !u.isActive {
		return ErrUserInactive
	}
	return nil
}
