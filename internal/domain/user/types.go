package user

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleStaff       Role = "staff"
	RoleHousekeeper Role = "housekeeper"
	RoleGuest       Role = "guest"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleStaff, RoleHousekeeper, RoleGuest:
		return true
	default:
		return false
	}
}

// IsStaff is true for every back-office role.
func (r Role) IsStaff() bool {
	return r.IsValid() && r != RoleGuest
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
