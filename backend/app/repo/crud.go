package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// crud is the shared get/list/save/delete surface every entity repository
// embeds. Save inserts when the primary key is zero and updates otherwise.
type crud[T any] struct{ db *gorm.DB }

func (r crud[T]) Get(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r crud[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r crud[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	var v T
	err := r.db.WithContext(ctx).Model(&v).Count(&n).Error
	return n, err
}

func (r crud[T]) Save(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r crud[T]) Create(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r crud[T]) Delete(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Delete(v).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
