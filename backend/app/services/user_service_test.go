package services

import (
	"context"
	"errors"
	"testing"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notified struct{ users []models.User }

func (n *notified) AccountCreated(u models.User) { n.users = append(n.users, u) }

func newTestUserService(t *testing.T) (*UserService, *repo.Store, *notified) {
	store := testutil.SeededStore(t)
	n := &notified{}
	return NewUserService(store, n), store, n
}

func TestCreateUser(t *testing.T) {
	svc, _, n := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, dto.UserRequest{Role: "CHEF", UserName: "chef3", UserPassword: "password", UserEmail: "chef3@recipes.local"})
	require.NoError(t, err)
	assert.Equal(t, uint(6), u.ID)
	assert.Equal(t, models.RoleChef, u.Role)
	require.Len(t, n.users, 1)
	assert.Equal(t, "chef3", n.users[0].UserName)

	_, err = svc.Create(ctx, dto.UserRequest{Role: "CHEF", UserName: "chef1", UserPassword: "password", UserEmail: "new@recipes.local"})
	assert.ErrorIs(t, err, ErrUserExists)
	_, err = svc.Create(ctx, dto.UserRequest{Role: "CHEF", UserName: "chef9", UserPassword: "password", UserEmail: "chef1@recipes.local"})
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, n.users, 1, "rejected users get no email")
}

func TestCreateUserValidation(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.UserRequest{Role: "COOK", UserName: "a", UserPassword: "b", UserEmail: "c"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Unsupported role COOK", apiErr.Reason)

	_, err = svc.Create(ctx, dto.UserRequest{Role: "USER", UserName: " ", UserPassword: "b", UserEmail: "c"})
	assert.ErrorIs(t, err, ErrUserNameEmpty)
	_, err = svc.Create(ctx, dto.UserRequest{Role: "USER", UserName: "a", UserEmail: "c"})
	assert.ErrorIs(t, err, ErrUserPasswordEmpty)
	_, err = svc.Create(ctx, dto.UserRequest{Role: "USER", UserName: "a", UserPassword: "b"})
	assert.ErrorIs(t, err, ErrUserEmailEmpty)
}

func TestUpdateUser(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 5, dto.UserRequest{Role: "USER", UserName: "user1", UserPassword: "password", UserEmail: "user2@recipes.local"})
	assert.ErrorIs(t, err, ErrUserInfoTaken)
	_, err = svc.Update(ctx, 5, dto.UserRequest{Role: "USER", UserName: "user2", UserPassword: "password", UserEmail: "user1@recipes.local"})
	assert.ErrorIs(t, err, ErrUserInfoTaken)

	// matching its own name and email is fine
	u, err := svc.Update(ctx, 5, dto.UserRequest{Role: "USER", UserName: "user2", UserPassword: "changed", UserEmail: "user2@recipes.local"})
	require.NoError(t, err)
	assert.Equal(t, "changed", u.UserPassword)

	u, err = svc.Update(ctx, 5, dto.UserRequest{Role: "CHEF", UserName: "chef4", UserPassword: "password", UserEmail: "chef4@recipes.local"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), u.ID)

	stored, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 5, Role: models.RoleChef, UserName: "chef4", UserPassword: "password", UserEmail: "chef4@recipes.local"}, *stored)

	_, err = svc.Update(ctx, 10, dto.UserRequest{Role: "USER", UserName: "x", UserPassword: "y", UserEmail: "z"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	svc, store, _ := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 3)) // chef2 wrote recipes 4-6

	_, err := svc.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrUserNotFound)
	for _, id := range []uint{4, 5, 6} {
		_, err := store.Repos().Recipes.Get(ctx, id)
		assert.ErrorIs(t, err, repo.ErrNotFound, "recipe %d", id)
	}
	left, err := store.Repos().Recipes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, left, 3)

	// user1 commented on recipes 1 and 4
	require.NoError(t, svc.Delete(ctx, 4))
	comments, err := store.Repos().Comments.FindByRecipe(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.ErrorIs(t, svc.Delete(ctx, 3), ErrUserNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	store := testutil.NewStore(t)
	svc := NewUserService(store, nil)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "password", "admin@recipes.local"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "other", "admin@recipes.local"))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "password", users[0].UserPassword)
}
