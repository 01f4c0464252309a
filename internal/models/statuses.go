package models

type UserRole string

const (
	UserRoleEmployer UserRole = "employer"
	UserRoleEmployee UserRole = "employee"
)

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role UserRole) bool {
	return role == UserRoleEmployer || role == UserRoleEmployee
}
