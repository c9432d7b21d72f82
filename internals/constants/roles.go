package constants

import "fmt"

// Role vocabulary. Parent and student are disjoint peers; superadmin is a
// strict superset of admin. This ordering is relied on by the access guard.
const (
	RoleParent     = "parent"
	RoleStudent    = "student"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess     = "❌ Only admins may access %s."
	ErrOnlySuperadminCanAccess = "❌ Only the superadmin may access %s."
	ErrOnlyParentsCanAccess    = "❌ Only parents may access %s."
	ErrOnlyStudentsCanAccess   = "❌ Only students may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleParent,
		RoleStudent,
		RoleAdmin,
		RoleSuperadmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}

	ParentOnly = []string{
		RoleParent,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
