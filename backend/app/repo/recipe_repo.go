package repo

import (
	"context"

	"recipe-book/backend/app/models"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	crud[models.Recipe]
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{crud[models.Recipe]{db: db}}
}

// full preloads everything a recipe response renders.
func (r *RecipeRepository) full(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredients.id") }).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB { return db.Order("keywords.id") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id") }).
		Preload("Comments.Author")
}

func (r *RecipeRepository) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var rec models.Recipe
	if err := r.full(ctx).First(&rec, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *RecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	err := r.full(ctx).Order("recipes.id").Find(&out).Error
	return out, err
}

func (r *RecipeRepository) FindByAuthor(ctx context.Context, authorID uint) ([]models.Recipe, error) {
	var out []models.Recipe
	err := r.full(ctx).Where("author_id = ?", authorID).Order("recipes.id").Find(&out).Error
	return out, err
}

func (r *RecipeRepository) FindByAuthorAndName(ctx context.Context, authorID uint, name string) (*models.Recipe, error) {
	var rec models.Recipe
	err := r.db.WithContext(ctx).Where("author_id = ? AND recipe_name = ?", authorID, name).First(&rec).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

// FindByKeywordIDs returns recipes carrying at least one of the keywords.
func (r *RecipeRepository) FindByKeywordIDs(ctx context.Context, keywordIDs []uint) ([]models.Recipe, error) {
	out := []models.Recipe{}
	if len(keywordIDs) == 0 {
		return out, nil
	}
	matching := r.db.WithContext(ctx).
		Table("keywords_recipes").
		Select("recipe_id").
		Where("keyword_id IN ?", keywordIDs)
	err := r.full(ctx).Where("recipes.id IN (?)", matching).Order("recipes.id").Find(&out).Error
	return out, err
}

// Insert creates the recipe row and its join rows. Ingredients and keywords
// must already exist; their rows are never written here.
func (r *RecipeRepository) Insert(ctx context.Context, rec *models.Recipe) error {
	return r.db.WithContext(ctx).Omit("Author", "Comments", "Ingredients.*", "Keywords.*").Create(rec).Error
}

// Rewrite renames the recipe and swaps its ingredient/keyword sets. Author
// and comments are left untouched.
func (r *RecipeRepository) Rewrite(ctx context.Context, rec *models.Recipe, name string, ingredients []models.Ingredient, keywords []models.Keyword) error {
	db := r.db.WithContext(ctx)
	target := &models.Recipe{ID: rec.ID}
	if err := db.Model(target).Update("recipe_name", name).Error; err != nil {
		return err
	}
	if err := db.Model(target).Omit("Ingredients.*").Association("Ingredients").Replace(ingredients); err != nil {
		return err
	}
	return db.Model(target).Omit("Keywords.*").Association("Keywords").Replace(keywords)
}

// Remove deletes the recipe with its comments and join rows.
func (r *RecipeRepository) Remove(ctx context.Context, rec *models.Recipe) error {
	return r.db.WithContext(ctx).Select("Comments", "Ingredients", "Keywords").Delete(rec).Error
}
