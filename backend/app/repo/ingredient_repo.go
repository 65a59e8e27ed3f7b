package repo

import (
	"context"

	"recipe-book/backend/app/models"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	crud[models.Ingredient]
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{crud[models.Ingredient]{db: db}}
}

func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var i models.Ingredient
	if err := r.db.WithContext(ctx).Where("ingredient = ?", name).First(&i).Error; err != nil {
		return nil, notFound(err)
	}
	return &i, nil
}
