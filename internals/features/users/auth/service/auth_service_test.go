package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weonamission_backend/internals/constants"
	userModel "weonamission_backend/internals/features/users/user/model"
)

func TestComputeRefreshHashIsDeterministic(t *testing.T) {
	a := computeRefreshHash("token-one", "secret")
	b := computeRefreshHash("token-one", "secret")
	assert.Equal(t, a, b)

	other := computeRefreshHash("token-two", "secret")
	assert.NotEqual(t, a, other)

	rekeyed := computeRefreshHash("token-one", "different-secret")
	assert.NotEqual(t, a, rekeyed)
}

func TestBuildAccessClaims(t *testing.T) {
	churchID := uuid.New()
	u := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Dana",
		Role:     constants.RoleParent,
		ChurchID: &churchID,
	}

	claims := buildAccessClaims(u, 24*time.Hour)

	assert.Equal(t, u.ID.String(), claims["id"])
	assert.Equal(t, "Dana", claims["user_name"])
	assert.Equal(t, constants.RoleParent, claims["role"])
	assert.Equal(t, churchID.String(), claims["church_id"])
	assert.Equal(t, true, claims["profile_ready"])

	exp, ok := claims["exp"].(int64)
	require.True(t, ok)
	iat, ok := claims["iat"].(int64)
	require.True(t, ok)
	assert.InDelta(t, (24 * time.Hour).Seconds(), float64(exp-iat), 1)
}

func TestBuildAccessClaimsSuperadminHasNoChurch(t *testing.T) {
	u := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Root",
		Role:     constants.RoleSuperadmin,
	}
	claims := buildAccessClaims(u, time.Hour)
	_, hasChurch := claims["church_id"]
	assert.False(t, hasChurch)
}
