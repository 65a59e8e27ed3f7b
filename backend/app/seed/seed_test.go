package seed_test

import (
	"context"
	"testing"

	"recipe-book/backend/app/seed"
	"recipe-book/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixturesProduceStableIDs(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	empty, err := seed.Empty(ctx, store)
	require.NoError(t, err)
	assert.True(t, empty)

	fx, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(ctx, store, fx))

	repos := store.Repos()
	admin, err := repos.Users.FindByUserName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, uint(1), admin.ID)

	chef1, err := repos.Users.FindByUserName(ctx, "chef1")
	require.NoError(t, err)
	assert.Equal(t, uint(2), chef1.ID)

	salt, err := repos.Ingredients.FindByName(ctx, "Ingredient 4")
	require.NoError(t, err)
	assert.Equal(t, uint(4), salt.ID)

	recipes, err := repos.Recipes.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 6)
	assert.Equal(t, "Recipe 1 by user 2", recipes[0].RecipeName)
	assert.Equal(t, "chef1", recipes[0].Author.UserName)
	require.Len(t, recipes[0].Comments, 1)
	assert.Equal(t, "user1", recipes[0].Comments[0].Author.UserName)

	empty, err = seed.Empty(ctx, store)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestApplyRejectsUnknownAuthor(t *testing.T) {
	store := testutil.NewStore(t)
	fx, err := seed.Parse([]byte(`
users:
  - {role: CHEF, userName: chef, userPassword: pw, userEmail: chef@x}
recipes:
  - {author: ghost, recipeName: Soup}
`))
	require.NoError(t, err)

	assert.Error(t, seed.Apply(context.Background(), store, fx))

	empty, err := seed.Empty(context.Background(), store)
	require.NoError(t, err)
	assert.True(t, empty, "failed fixtures roll back")
}

func TestApplyRejectsBadRole(t *testing.T) {
	store := testutil.NewStore(t)
	fx, err := seed.Parse([]byte("users:\n  - {role: COOK, userName: a, userPassword: b, userEmail: c}\n"))
	require.NoError(t, err)
	assert.Error(t, seed.Apply(context.Background(), store, fx))
}

func TestDump(t *testing.T) {
	store := testutil.SeededStore(t)
	assert.NoError(t, seed.Dump(context.Background(), store))
}
