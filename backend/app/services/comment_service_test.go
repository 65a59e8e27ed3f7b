package services

import (
	"context"
	"testing"
	"time"

	"recipe-book/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	store := testutil.SeededStore(t)
	ctx := context.Background()
	svc := NewCommentService(store)
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	user1, err := store.Repos().Users.Get(ctx, 4)
	require.NoError(t, err)
	recipe, err := store.Repos().Recipes.Get(ctx, 2)
	require.NoError(t, err)

	c, err := svc.Create(ctx, user1, recipe, "Great with rice")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "user1", c.Author.UserName)
	assert.True(t, stamp.Equal(c.Created))

	list, err := svc.ListByRecipe(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Great with rice", list[0].Text)
	assert.Equal(t, "user1", list[0].Author.UserName)

	_, err = svc.Create(ctx, user1, recipe, "   ")
	assert.ErrorIs(t, err, ErrCommentEmpty)
}
