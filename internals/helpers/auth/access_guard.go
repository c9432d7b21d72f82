// file: internals/helpers/auth/access_guard.go
package helper

import (
	"weonamission_backend/internals/constants"
)

// View entry points used as redirect targets by the access guard.
const (
	PathSignIn      = "/login"
	PathStudentView = "/student"
	PathParentView  = "/parent"
	PathAdminView   = "/admin"
)

// Decision is the guard's verdict for one (required, actual) role pair.
// Either Authorize is true, or RedirectTo names the view to send the user to.
type Decision struct {
	Authorize  bool
	RedirectTo string
}

var (
	Authorized = Decision{Authorize: true}
)

func RedirectTo(target string) Decision {
	return Decision{RedirectTo: target}
}

// DecideAccess is the role-compatibility table. The asymmetry is deliberate
// and must stay exactly as written: parent and student are mutually
// exclusive peers (each bounced to the student view or their own view, never
// authorized for the other), while admin/superadmin form a superset chain.
// Superadmin passes every gate; admin does NOT pass the superadmin gate.
func DecideAccess(requiredRole, actualRole string) Decision {
	if actualRole == constants.RoleSuperadmin {
		return Authorized
	}

	switch requiredRole {
	case constants.RoleSuperadmin:
		return RedirectTo(PathSignIn)

	case constants.RoleAdmin:
		if actualRole == constants.RoleAdmin {
			return Authorized
		}
		return RedirectTo(PathStudentView)

	case constants.RoleParent:
		if actualRole == constants.RoleStudent {
			return RedirectTo(PathStudentView)
		}
		return Authorized

	case constants.RoleStudent:
		switch actualRole {
		case constants.RoleStudent:
			return Authorized
		case constants.RoleAdmin:
			return RedirectTo(PathAdminView)
		case constants.RoleParent:
			return RedirectTo(PathParentView)
		default:
			return RedirectTo(PathSignIn)
		}
	}

	return Authorized
}
