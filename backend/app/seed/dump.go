package seed

import (
	"context"

	"recipe-book/backend/app/repo"
	"recipe-book/backend/global"
)

// Dump logs every recipe and user, read in one transaction so the two lists
// are consistent with each other.
func Dump(ctx context.Context, store *repo.Store) error {
	return store.InTx(ctx, func(tx repo.Set) error {
		recipes, err := tx.Recipes.List(ctx)
		if err != nil {
			return err
		}
		users, err := tx.Users.List(ctx)
		if err != nil {
			return err
		}

		global.Logger.Info().Int("count", len(recipes)).Msg("recipes")
		for _, r := range recipes {
			ingredients := make([]string, 0, len(r.Ingredients))
			for _, i := range r.Ingredients {
				ingredients = append(ingredients, i.Name)
			}
			keywords := make([]string, 0, len(r.Keywords))
			for _, k := range r.Keywords {
				keywords = append(keywords, k.Name)
			}
			global.Logger.Info().
				Uint("id", r.ID).
				Str("name", r.RecipeName).
				Str("author", r.Author.UserName).
				Strs("ingredients", ingredients).
				Strs("keywords", keywords).
				Int("comments", len(r.Comments)).
				Msg("recipe")
		}

		global.Logger.Info().Int("count", len(users)).Msg("users")
		for _, u := range users {
			global.Logger.Info().
				Uint("id", u.ID).
				Str("role", string(u.Role)).
				Str("name", u.UserName).
				Str("email", u.UserEmail).
				Msg("user")
		}
		return nil
	})
}
