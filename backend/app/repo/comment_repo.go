package repo

import (
	"context"

	"recipe-book/backend/app/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	crud[models.Comment]
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{crud[models.Comment]{db: db}}
}

func (r *CommentRepository) FindByRecipe(ctx context.Context, recipeID uint) ([]models.Comment, error) {
	out := []models.Comment{}
	err := r.db.WithContext(ctx).Preload("Author").Where("recipe_id = ?", recipeID).Order("id").Find(&out).Error
	return out, err
}

func (r *CommentRepository) DeleteByAuthor(ctx context.Context, authorID uint) error {
	return r.db.WithContext(ctx).Where("author_id = ?", authorID).Delete(&models.Comment{}).Error
}

// Insert writes the comment row only; the author already exists.
func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	return r.db.WithContext(ctx).Omit("Author").Create(c).Error
}
