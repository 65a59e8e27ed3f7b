package services

import (
	"context"
	"testing"

	"recipe-book/backend/app/session"
	"recipe-book/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	store := testutil.SeededStore(t)
	sessions := session.NewRegistry()
	auth := NewAuthService(store.Repos().Users, sessions)
	ctx := context.Background()

	u, token, err := auth.Login(ctx, "admin", "password")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Len(t, token, session.TokenLength)

	id, ok := sessions.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, uint(1), id)

	for _, tc := range []struct{ name, password string }{
		{"admin", "wrongPassword"},
		{"username", "password"},
		{"Admin", "password"},
		{"admin", "Password"},
		{"", ""},
	} {
		_, _, err := auth.Login(ctx, tc.name, tc.password)
		assert.ErrorIs(t, err, ErrWrongCredentials, "%s/%s", tc.name, tc.password)
	}
	assert.Equal(t, 1, sessions.Len())
}

func TestLogoutEndsOnlyThatSession(t *testing.T) {
	store := testutil.SeededStore(t)
	sessions := session.NewRegistry()
	auth := NewAuthService(store.Repos().Users, sessions)
	ctx := context.Background()

	_, first, err := auth.Login(ctx, "chef1", "password")
	require.NoError(t, err)
	_, second, err := auth.Login(ctx, "chef1", "password")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(first))
	_, ok := sessions.Resolve(first)
	assert.False(t, ok)
	_, ok = sessions.Resolve(second)
	assert.True(t, ok)

	assert.ErrorIs(t, auth.Logout(first), ErrNotLoggedIn)
	assert.ErrorIs(t, auth.Logout("unexisting sessionId"), ErrNotLoggedIn)
}
