package repo

import (
	"context"

	"recipe-book/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	crud[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{crud[models.User]{db: db}}
}

func (r *UserRepository) CountByUserName(ctx context.Context, userName string) (int64, error) {
	var count int64
	return count, r.db.WithContext(ctx).Model(&models.User{}).Where("user_name = ?", userName).Count(&count).Error
}

func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindByUserNameOrEmail returns every user clashing with either natural key.
func (r *UserRepository) FindByUserNameOrEmail(ctx context.Context, userName, email string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("user_name = ? OR user_email = ?", userName, email).
		Order("id").
		Find(&users).Error
	return users, err
}
