package constants

import "fmt"

const (
	RoleUser      = "user"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
)

// Role error templates
const (
	ErrOnlyStaffCanAccess  = "Only librarians or admins may access %s."
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var (
	StaffRoles = []string{
		RoleLibrarian,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
