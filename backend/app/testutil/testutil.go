// Package testutil builds throwaway stores for tests.
package testutil

import (
	"context"
	"testing"

	"recipe-book/backend/app/db"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/seed"
	"recipe-book/backend/config"

	"github.com/stretchr/testify/require"
)

// NewStore returns an empty, migrated in-memory sqlite store private to t.
func NewStore(t testing.TB) *repo.Store {
	t.Helper()
	gdb, err := db.Connect(config.DB{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repo.NewStore(gdb)
}

// SeededStore is NewStore loaded with the built-in demo data: users admin(1),
// chef1(2), chef2(3), user1(4), user2(5); recipes 1-3 by chef1 and 4-6 by
// chef2; ingredients "Ingredient 1".."Ingredient 12" and keywords
// "Keyword1".."Keyword12" with matching ids.
func SeededStore(t testing.TB) *repo.Store {
	t.Helper()
	store := NewStore(t)
	fx, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), store, fx))
	return store
}
