package domain

// Role is the access level assigned to an administrative user
type Role string

const (
	RoleSuperuser    Role = "SUPERUSER"
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
)

// AllRoles contains all valid roles in descending privilege order
var AllRoles = []Role{RoleSuperuser, RoleAdmin, RoleReceptionist}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperuser, RoleAdmin, RoleReceptionist:
		return true
	}
	return false
}

// In reports whether the role is a member of the allowed set
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
