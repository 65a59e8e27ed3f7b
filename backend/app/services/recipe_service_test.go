package services

import (
	"context"
	"testing"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeRequest(name string, ingredients []string, keywords []string) dto.RecipeRequest {
	req := dto.RecipeRequest{RecipeName: name}
	for _, i := range ingredients {
		req.Ingredients = append(req.Ingredients, dto.IngredientDTO{Ingredient: i})
	}
	for _, k := range keywords {
		req.Keywords = append(req.Keywords, dto.KeywordDTO{Keyword: k})
	}
	return req
}

func newTestRecipeService(t *testing.T) (*RecipeService, *repo.Store, *models.User, *models.User) {
	store := testutil.SeededStore(t)
	ctx := context.Background()
	chef1, err := store.Repos().Users.Get(ctx, 2)
	require.NoError(t, err)
	chef2, err := store.Repos().Users.Get(ctx, 3)
	require.NoError(t, err)
	return NewRecipeService(store), store, chef1, chef2
}

func ingredientIDs(r *models.Recipe) []uint {
	var ids []uint
	for _, i := range r.Ingredients {
		ids = append(ids, i.ID)
	}
	return ids
}

func keywordIDs(r *models.Recipe) []uint {
	var ids []uint
	for _, k := range r.Keywords {
		ids = append(ids, k.ID)
	}
	return ids
}

func TestCreateRecipeReusesIngredients(t *testing.T) {
	svc, _, chef1, _ := newTestRecipeService(t)

	rec, err := svc.Create(context.Background(), chef1, recipeRequest("Recipe 7 by user 2",
		[]string{"Ingredient 4", "Ingredient 13"}, []string{"Keyword6", "Keyword13"}))
	require.NoError(t, err)

	assert.Equal(t, uint(7), rec.ID)
	assert.Equal(t, "chef1", rec.Author.UserName)
	assert.Equal(t, []uint{4, 13}, ingredientIDs(rec))
	assert.Equal(t, []uint{6, 13}, keywordIDs(rec))
	assert.Empty(t, rec.Comments)
}

func TestIngredientSharedAcrossRecipes(t *testing.T) {
	svc, store, chef1, chef2 := newTestRecipeService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, chef1, recipeRequest("A", []string{"Salt"}, nil))
	require.NoError(t, err)
	b, err := svc.Create(ctx, chef2, recipeRequest("B", []string{"Salt", "Pepper"}, nil))
	require.NoError(t, err)

	assert.Equal(t, a.Ingredients[0].ID, b.Ingredients[0].ID)
	n, err := store.Repos().Ingredients.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(14), n)
}

func TestCreateRecipeNameUniquePerAuthor(t *testing.T) {
	svc, _, chef1, chef2 := newTestRecipeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, chef1, recipeRequest("Recipe 1 by user 2", nil, nil))
	assert.ErrorIs(t, err, ErrRecipeExists)

	_, err = svc.Create(ctx, chef2, recipeRequest("Recipe 1 by user 2", nil, nil))
	assert.NoError(t, err, "another author may reuse the name")

	_, err = svc.Create(ctx, chef1, recipeRequest("  ", nil, nil))
	assert.ErrorIs(t, err, ErrRecipeNameEmpty)
}

func TestCreateRecipeRollsBackReconciledRows(t *testing.T) {
	svc, store, chef1, _ := newTestRecipeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, chef1, recipeRequest("Soup", []string{"Leek"}, []string{"Keyword1", ""}))
	assert.ErrorIs(t, err, ErrKeywordEmpty)

	_, err = store.Repos().Ingredients.FindByName(ctx, "Leek")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUpdateRecipe(t *testing.T) {
	svc, _, chef1, _ := newTestRecipeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, chef1, recipeRequest("Recipe 7 by user 2",
		[]string{"Ingredient 4", "Ingredient 13"}, []string{"Keyword6", "Keyword13"}))
	require.NoError(t, err)

	rec, err := svc.Update(ctx, chef1, 7, recipeRequest("New name",
		[]string{"Ingredient 4"}, []string{"Keyword10", "Keyword11", "Keyword13"}))
	require.NoError(t, err)
	assert.Equal(t, "New name", rec.RecipeName)
	assert.Equal(t, []uint{4}, ingredientIDs(rec))
	assert.Equal(t, []uint{10, 11, 13}, keywordIDs(rec))
	assert.Equal(t, chef1.ID, rec.AuthorID)

	_, err = svc.Update(ctx, chef1, 10, recipeRequest("Recipe", nil, nil))
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = svc.Update(ctx, chef1, 1, recipeRequest("Recipe 2 by user 2", nil, nil))
	assert.ErrorIs(t, err, ErrRecipeNameTaken)
}

func TestUpdateRecipeKeepsOwnNameAndComments(t *testing.T) {
	svc, _, chef1, _ := newTestRecipeService(t)

	rec, err := svc.Update(context.Background(), chef1, 1, recipeRequest("Recipe 1 by user 2", []string{"Ingredient 1"}, nil))
	require.NoError(t, err)
	assert.Equal(t, "Recipe 1 by user 2", rec.RecipeName)
	assert.Len(t, rec.Comments, 1)
	assert.Empty(t, rec.Keywords)
}

func TestUpdateRecipeOfAnotherChef(t *testing.T) {
	svc, _, chef1, _ := newTestRecipeService(t)

	_, err := svc.Update(context.Background(), chef1, 4, recipeRequest("Mine now", nil, nil))
	require.Error(t, err)
	assert.Equal(t, "The recipe doesn't belong to the user chef1", err.Error())
}

func TestDeleteRecipe(t *testing.T) {
	svc, store, chef1, _ := newTestRecipeService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, chef1, 4)
	require.Error(t, err)
	assert.Equal(t, "The recipe doesn't belong to the user chef1", err.Error())

	require.NoError(t, svc.Delete(ctx, chef1, 1))
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	comments, err := store.Repos().Comments.FindByRecipe(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// ingredients outlive the recipes using them
	_, err = store.Repos().Ingredients.FindByName(ctx, "Ingredient 1")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, chef1, 1), ErrRecipeNotFound)
}

func TestListRecipes(t *testing.T) {
	svc, _, chef1, _ := newTestRecipeService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	byKeyword, err := svc.List(ctx, []string{"Keyword4"})
	require.NoError(t, err)
	require.Len(t, byKeyword, 2)
	assert.Equal(t, uint(2), byKeyword[0].ID)
	assert.Equal(t, uint(4), byKeyword[1].ID)

	combined, err := svc.List(ctx, []string{"Keyword1,Keyword6", "Keyword9", "nothing"})
	require.NoError(t, err)
	assert.Len(t, combined, 3)

	none, err := svc.List(ctx, []string{"nothing"})
	require.NoError(t, err)
	assert.Empty(t, none)

	none, err = svc.List(ctx, []string{""})
	require.NoError(t, err)
	assert.Empty(t, none)

	mine, err := svc.ListByAuthor(ctx, chef1.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}
