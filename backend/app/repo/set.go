package repo

import (
	"context"

	"gorm.io/gorm"
)

// Set bundles the repositories bound to one *gorm.DB, which may be a
// transaction handle.
type Set struct {
	Users       *UserRepository
	Recipes     *RecipeRepository
	Ingredients *IngredientRepository
	Keywords    *KeywordRepository
	Comments    *CommentRepository
}

func NewSet(db *gorm.DB) Set {
	return Set{
		Users:       NewUserRepository(db),
		Recipes:     NewRecipeRepository(db),
		Ingredients: NewIngredientRepository(db),
		Keywords:    NewKeywordRepository(db),
		Comments:    NewCommentRepository(db),
	}
}

// Store owns the database handle and hands out repository sets.
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Repos() Set { return NewSet(s.db) }

// InTx runs fn with repositories bound to a single transaction. Any error
// returned by fn rolls the transaction back.
func (s *Store) InTx(ctx context.Context, fn func(Set) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSet(tx))
	})
}

func (s *Store) DB() *gorm.DB { return s.db }
