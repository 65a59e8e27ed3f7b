package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
)

type CommentService struct {
	store *repo.Store
	now   func() time.Time
}

func NewCommentService(store *repo.Store) *CommentService {
	return &CommentService{store: store, now: time.Now}
}

// Create attaches a comment by author to the recipe, stamped with the
// server time.
func (s *CommentService) Create(ctx context.Context, author *models.User, recipe *models.Recipe, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommentEmpty
	}
	c := &models.Comment{
		RecipeID: recipe.ID,
		AuthorID: author.ID,
		Created:  s.now(),
		Text:     text,
	}
	if err := s.store.Repos().Comments.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	c.Author = *author
	return c, nil
}

func (s *CommentService) ListByRecipe(ctx context.Context, recipeID uint) ([]models.Comment, error) {
	return s.store.Repos().Comments.FindByRecipe(ctx, recipeID)
}
