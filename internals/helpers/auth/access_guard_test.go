package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weonamission_backend/internals/constants"
)

// The full role-compatibility table. Every (required, actual) pair is pinned
// so a future "cleanup" of the asymmetry fails loudly.
func TestDecideAccess_FullTable(t *testing.T) {
	type pair struct {
		required string
		actual   string
		want     Decision
	}

	cases := []pair{
		// actual = superadmin passes every gate
		{constants.RoleParent, constants.RoleSuperadmin, Authorized},
		{constants.RoleStudent, constants.RoleSuperadmin, Authorized},
		{constants.RoleAdmin, constants.RoleSuperadmin, Authorized},
		{constants.RoleSuperadmin, constants.RoleSuperadmin, Authorized},

		// required = superadmin: everyone else bounced to sign-in
		{constants.RoleSuperadmin, constants.RoleAdmin, RedirectTo(PathSignIn)},
		{constants.RoleSuperadmin, constants.RoleParent, RedirectTo(PathSignIn)},
		{constants.RoleSuperadmin, constants.RoleStudent, RedirectTo(PathSignIn)},

		// required = admin
		{constants.RoleAdmin, constants.RoleAdmin, Authorized},
		{constants.RoleAdmin, constants.RoleParent, RedirectTo(PathStudentView)},
		{constants.RoleAdmin, constants.RoleStudent, RedirectTo(PathStudentView)},

		// required = parent: student is the only excluded peer
		{constants.RoleParent, constants.RoleParent, Authorized},
		{constants.RoleParent, constants.RoleStudent, RedirectTo(PathStudentView)},
		{constants.RoleParent, constants.RoleAdmin, Authorized},

		// required = student: everyone else goes to their own view
		{constants.RoleStudent, constants.RoleStudent, Authorized},
		{constants.RoleStudent, constants.RoleAdmin, RedirectTo(PathAdminView)},
		{constants.RoleStudent, constants.RoleParent, RedirectTo(PathParentView)},
	}

	assert.Len(t, cases, 16, "table must cover all role pairs")

	for _, tc := range cases {
		got := DecideAccess(tc.required, tc.actual)
		assert.Equalf(t, tc.want, got, "required=%s actual=%s", tc.required, tc.actual)
	}
}

func TestDecideAccess_AdminIsNotSuperadmin(t *testing.T) {
	// an admin visiting a superadmin-only view is sent to sign-in, not the
	// admin view
	got := DecideAccess(constants.RoleSuperadmin, constants.RoleAdmin)
	assert.False(t, got.Authorize)
	assert.Equal(t, PathSignIn, got.RedirectTo)
}

func TestDecideAccess_ParentOnStudentView(t *testing.T) {
	got := DecideAccess(constants.RoleStudent, constants.RoleParent)
	assert.False(t, got.Authorize)
	assert.Equal(t, PathParentView, got.RedirectTo)
}
