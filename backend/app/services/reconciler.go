package services

import (
	"context"
	"errors"
	"strings"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
)

// namedStore is the natural-key lookup/insert pair the reconciler needs.
type namedStore[T any] interface {
	FindByName(ctx context.Context, name string) (*T, error)
	Create(ctx context.Context, v *T) error
}

// reconcile maps each name to a stored record, reusing the row that already
// carries the name or inserting a new one. Repeated names in one call map to
// the same record and appear once in the result, in first-seen order.
func reconcile[T any](ctx context.Context, store namedStore[T], names []string, build func(string) *T, empty error) ([]T, error) {
	out := make([]T, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, empty
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		found, err := store.FindByName(ctx, name)
		switch {
		case err == nil:
			out = append(out, *found)
		case errors.Is(err, repo.ErrNotFound):
			fresh := build(name)
			if err := store.Create(ctx, fresh); err != nil {
				return nil, err
			}
			out = append(out, *fresh)
		default:
			return nil, err
		}
	}
	return out, nil
}

func reconcileIngredients(ctx context.Context, store namedStore[models.Ingredient], names []string) ([]models.Ingredient, error) {
	return reconcile(ctx, store, names, func(n string) *models.Ingredient {
		return &models.Ingredient{Name: n}
	}, ErrIngredientEmpty)
}

func reconcileKeywords(ctx context.Context, store namedStore[models.Keyword], names []string) ([]models.Keyword, error) {
	return reconcile(ctx, store, names, func(n string) *models.Keyword {
		return &models.Keyword{Name: n}
	}, ErrKeywordEmpty)
}
