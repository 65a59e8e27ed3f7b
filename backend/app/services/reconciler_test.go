package services

import (
	"context"
	"errors"
	"testing"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeywords struct {
	rows    []models.Keyword
	created int
	failOn  string
}

func (f *fakeKeywords) FindByName(_ context.Context, name string) (*models.Keyword, error) {
	for i := range f.rows {
		if f.rows[i].Name == name {
			k := f.rows[i]
			return &k, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeKeywords) Create(_ context.Context, k *models.Keyword) error {
	if k.Name == f.failOn {
		return errors.New("disk full")
	}
	k.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *k)
	f.created++
	return nil
}

func TestReconcileReusesExisting(t *testing.T) {
	store := &fakeKeywords{rows: []models.Keyword{{ID: 1, Name: "vegan"}, {ID: 2, Name: "quick"}}}

	got, err := reconcileKeywords(context.Background(), store, []string{"quick", "spicy"})
	require.NoError(t, err)

	assert.Equal(t, []models.Keyword{{ID: 2, Name: "quick"}, {ID: 3, Name: "spicy"}}, got)
	assert.Equal(t, 1, store.created)
}

func TestReconcileCollapsesDuplicates(t *testing.T) {
	store := &fakeKeywords{}

	got, err := reconcileKeywords(context.Background(), store, []string{"soup", " soup ", "soup"})
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, 1, store.created)
}

func TestReconcileRejectsBlankNames(t *testing.T) {
	_, err := reconcileKeywords(context.Background(), &fakeKeywords{}, []string{"ok", "  "})
	assert.ErrorIs(t, err, ErrKeywordEmpty)

	_, err = reconcileIngredients(context.Background(), nil, []string{""})
	assert.ErrorIs(t, err, ErrIngredientEmpty)
}

func TestReconcilePropagatesStoreErrors(t *testing.T) {
	_, err := reconcileKeywords(context.Background(), &fakeKeywords{failOn: "bad"}, []string{"bad"})
	assert.EqualError(t, err, "disk full")
}

func TestReconcileEmptyInput(t *testing.T) {
	got, err := reconcileKeywords(context.Background(), &fakeKeywords{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
