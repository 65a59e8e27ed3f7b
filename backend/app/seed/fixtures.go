// Package seed loads YAML fixtures into the store and dumps its contents at
// startup.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/global"

	"gopkg.in/yaml.v3"
)

type User struct {
	Role         string `yaml:"role"`
	UserName     string `yaml:"userName"`
	UserPassword string `yaml:"userPassword"`
	UserEmail    string `yaml:"userEmail"`
}

type Comment struct {
	Author  string `yaml:"author"`
	Comment string `yaml:"comment"`
}

type Recipe struct {
	Author      string    `yaml:"author"`
	RecipeName  string    `yaml:"recipeName"`
	Ingredients []string  `yaml:"ingredients"`
	Keywords    []string  `yaml:"keywords"`
	Comments    []Comment `yaml:"comments"`
}

// Fixtures are applied in file order, so ids follow the order of each list.
// Ingredients and keywords listed at the top level are created before any
// recipe refers to them.
type Fixtures struct {
	Users       []User   `yaml:"users"`
	Ingredients []string `yaml:"ingredients"`
	Keywords    []string `yaml:"keywords"`
	Recipes     []Recipe `yaml:"recipes"`
}

func Parse(data []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

// Empty reports whether the store has no users yet.
func Empty(ctx context.Context, store *repo.Store) (bool, error) {
	n, err := store.Repos().Users.Count(ctx)
	return n == 0, err
}

// Apply writes fx in a single transaction.
func Apply(ctx context.Context, store *repo.Store, fx *Fixtures) error {
	return store.InTx(ctx, func(tx repo.Set) error {
		users := make(map[string]*models.User, len(fx.Users))
		for _, f := range fx.Users {
			role, err := models.ParseRole(f.Role)
			if err != nil {
				return fmt.Errorf("user %s: %w", f.UserName, err)
			}
			u := &models.User{Role: role, UserName: f.UserName, UserPassword: f.UserPassword, UserEmail: f.UserEmail}
			if err := tx.Users.Create(ctx, u); err != nil {
				return fmt.Errorf("user %s: %w", f.UserName, err)
			}
			users[u.UserName] = u
		}

		for _, name := range fx.Ingredients {
			if _, err := ingredient(ctx, tx, name); err != nil {
				return err
			}
		}
		for _, name := range fx.Keywords {
			if _, err := keyword(ctx, tx, name); err != nil {
				return err
			}
		}

		for _, f := range fx.Recipes {
			author, ok := users[f.Author]
			if !ok {
				return fmt.Errorf("recipe %q: unknown author %q", f.RecipeName, f.Author)
			}
			rec := &models.Recipe{AuthorID: author.ID, RecipeName: f.RecipeName}
			for _, name := range f.Ingredients {
				i, err := ingredient(ctx, tx, name)
				if err != nil {
					return err
				}
				rec.Ingredients = append(rec.Ingredients, *i)
			}
			for _, name := range f.Keywords {
				k, err := keyword(ctx, tx, name)
				if err != nil {
					return err
				}
				rec.Keywords = append(rec.Keywords, *k)
			}
			if err := tx.Recipes.Insert(ctx, rec); err != nil {
				return fmt.Errorf("recipe %q: %w", f.RecipeName, err)
			}

			for _, c := range f.Comments {
				by, ok := users[c.Author]
				if !ok {
					return fmt.Errorf("comment on %q: unknown author %q", f.RecipeName, c.Author)
				}
				comment := &models.Comment{RecipeID: rec.ID, AuthorID: by.ID, Created: time.Now(), Text: c.Comment}
				if err := tx.Comments.Insert(ctx, comment); err != nil {
					return err
				}
			}
		}
		global.Logger.Info().
			Int("users", len(fx.Users)).
			Int("recipes", len(fx.Recipes)).
			Msg("fixtures loaded")
		return nil
	})
}

func ingredient(ctx context.Context, tx repo.Set, name string) (*models.Ingredient, error) {
	i, err := tx.Ingredients.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		i = &models.Ingredient{Name: name}
		err = tx.Ingredients.Create(ctx, i)
	}
	if err != nil {
		return nil, fmt.Errorf("ingredient %q: %w", name, err)
	}
	return i, nil
}

func keyword(ctx context.Context, tx repo.Set, name string) (*models.Keyword, error) {
	k, err := tx.Keywords.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		k = &models.Keyword{Name: name}
		err = tx.Keywords.Create(ctx, k)
	}
	if err != nil {
		return nil, fmt.Errorf("keyword %q: %w", name, err)
	}
	return k, nil
}
