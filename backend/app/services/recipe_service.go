package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/global"
)

type RecipeService struct {
	store *repo.Store
}

func NewRecipeService(store *repo.Store) *RecipeService {
	return &RecipeService{store: store}
}

// List returns every recipe when keywords is nil. Otherwise each entry may
// hold several comma separated names; names that match no keyword are
// ignored and a recipe matches when it carries any resolved keyword.
func (s *RecipeService) List(ctx context.Context, keywords []string) ([]models.Recipe, error) {
	repos := s.store.Repos()
	if keywords == nil {
		return repos.Recipes.List(ctx)
	}
	found, err := repos.Keywords.FindByNames(ctx, splitKeywords(keywords))
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(found))
	for _, k := range found {
		ids = append(ids, k.ID)
	}
	return repos.Recipes.FindByKeywordIDs(ctx, ids)
}

func (s *RecipeService) ListByAuthor(ctx context.Context, authorID uint) ([]models.Recipe, error) {
	return s.store.Repos().Recipes.FindByAuthor(ctx, authorID)
}

func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	rec, err := s.store.Repos().Recipes.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrRecipeNotFound
	}
	return rec, err
}

// Create stores a recipe for author. Ingredients and keywords are matched by
// name against the stored ones and created when missing, in the same
// transaction as the recipe.
func (s *RecipeService) Create(ctx context.Context, author *models.User, req dto.RecipeRequest) (*models.Recipe, error) {
	name := strings.TrimSpace(req.RecipeName)
	if name == "" {
		return nil, ErrRecipeNameEmpty
	}
	var id uint
	err := s.store.InTx(ctx, func(tx repo.Set) error {
		_, err := tx.Recipes.FindByAuthorAndName(ctx, author.ID, name)
		if err == nil {
			return ErrRecipeExists
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		ingredients, err := reconcileIngredients(ctx, tx.Ingredients, req.IngredientNames())
		if err != nil {
			return err
		}
		keywords, err := reconcileKeywords(ctx, tx.Keywords, req.KeywordNames())
		if err != nil {
			return err
		}
		rec := &models.Recipe{
			AuthorID:    author.ID,
			RecipeName:  name,
			Ingredients: ingredients,
			Keywords:    keywords,
		}
		if err := tx.Recipes.Insert(ctx, rec); err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		id = rec.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	global.Logger.Info().Uint("recipe", id).Uint("author", author.ID).Msg("recipe created")
	return s.Get(ctx, id)
}

// Update renames the recipe and replaces its ingredients and keywords. The
// author and comments never change, and only the author may update.
func (s *RecipeService) Update(ctx context.Context, caller *models.User, id uint, req dto.RecipeRequest) (*models.Recipe, error) {
	name := strings.TrimSpace(req.RecipeName)
	if name == "" {
		return nil, ErrRecipeNameEmpty
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.AuthorID != caller.ID {
		return nil, ErrNotOwner(caller.UserName)
	}
	err = s.store.InTx(ctx, func(tx repo.Set) error {
		same, err := tx.Recipes.FindByAuthorAndName(ctx, current.AuthorID, name)
		switch {
		case err == nil && same.ID != current.ID:
			return ErrRecipeNameTaken
		case err != nil && !errors.Is(err, repo.ErrNotFound):
			return err
		}
		ingredients, err := reconcileIngredients(ctx, tx.Ingredients, req.IngredientNames())
		if err != nil {
			return err
		}
		keywords, err := reconcileKeywords(ctx, tx.Keywords, req.KeywordNames())
		if err != nil {
			return err
		}
		if err := tx.Recipes.Rewrite(ctx, current, name, ingredients, keywords); err != nil {
			return fmt.Errorf("update recipe %d: %w", current.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	global.Logger.Info().Uint("recipe", current.ID).Msg("recipe updated")
	return s.Get(ctx, current.ID)
}

// Delete removes the recipe, its comments and its join rows. Only the author
// may delete.
func (s *RecipeService) Delete(ctx context.Context, caller *models.User, id uint) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec.AuthorID != caller.ID {
		return ErrNotOwner(caller.UserName)
	}
	if err := s.store.Repos().Recipes.Remove(ctx, rec); err != nil {
		return fmt.Errorf("delete recipe %d: %w", rec.ID, err)
	}
	global.Logger.Info().Uint("recipe", rec.ID).Msg("recipe deleted")
	return nil
}

func splitKeywords(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
