package user

import (
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

var ErrInvalidRole = errs.New("invalid role")

var roleRank = map[Role]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank nowhere.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	want, okMin := roleRank[min]
	return ok && okMin && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errs.Wrapf(ErrInvalidRole, "%q", s)
	}
	return role, nil
}

// Principal is the authenticated caller as carried by an access token.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin is the only role that bypasses the cancellation window.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
