package repo

import (
	"context"

	"recipe-book/backend/app/models"

	"gorm.io/gorm"
)

type KeywordRepository struct {
	crud[models.Keyword]
}

func NewKeywordRepository(db *gorm.DB) *KeywordRepository {
	return &KeywordRepository{crud[models.Keyword]{db: db}}
}

func (r *KeywordRepository) FindByName(ctx context.Context, name string) (*models.Keyword, error) {
	var k models.Keyword
	if err := r.db.WithContext(ctx).Where("keyword = ?", name).First(&k).Error; err != nil {
		return nil, notFound(err)
	}
	return &k, nil
}

// FindByNames resolves the names that exist; unknown names are skipped.
func (r *KeywordRepository) FindByNames(ctx context.Context, names []string) ([]models.Keyword, error) {
	out := []models.Keyword{}
	if len(names) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("keyword IN ?", names).Order("id").Find(&out).Error
	return out, err
}
