package services

import (
	"context"
	"errors"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/session"
	"recipe-book/backend/global"
)

type userGetter interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

type recipeGetter interface {
	Get(ctx context.Context, id uint) (*models.Recipe, error)
}

// Guard centralizes the session, role and existence checks every protected
// handler performs. Callers check the session first so an anonymous request
// never learns whether a user or recipe exists.
type Guard struct {
	sessions *session.Registry
	users    userGetter
	recipes  recipeGetter
}

func NewGuard(sessions *session.Registry, users userGetter, recipes recipeGetter) *Guard {
	return &Guard{sessions: sessions, users: users, recipes: recipes}
}

func (g *Guard) RequireSession(token string) (uint, error) {
	id, ok := g.sessions.Resolve(token)
	if !ok {
		global.Logger.Warn().Msg("request without a valid session")
		return 0, ErrNotLoggedIn
	}
	return id, nil
}

// RequireUser loads the user and checks its role is one of roles. With no
// roles only existence is checked.
func (g *Guard) RequireUser(ctx context.Context, id uint, roles ...models.Role) (*models.User, error) {
	u, err := g.users.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		global.Logger.Warn().Uint("user", id).Msg("user doesn't exist")
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(roles) > 0 && !u.Role.In(roles...) {
		global.Logger.Warn().Uint("user", id).Str("role", string(u.Role)).Msg("role doesn't allow the operation")
		return nil, ErrRoleNotAllowed
	}
	return u, nil
}

func (g *Guard) RequireRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	r, err := g.recipes.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		global.Logger.Warn().Uint("recipe", id).Msg("recipe doesn't exist")
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
