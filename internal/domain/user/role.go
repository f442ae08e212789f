package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may act on bookings it does not own.
func (r Role) IsStaff() bool {
	return r == RoleOperator || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
