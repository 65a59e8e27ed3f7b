package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/global"
)

// Notifier is told about accounts right after they are stored. It must not
// block the caller for long.
type Notifier interface {
	AccountCreated(u models.User)
}

type nopNotifier struct{}

func (nopNotifier) AccountCreated(models.User) {}

type UserService struct {
	store  *repo.Store
	notify Notifier
}

func NewUserService(store *repo.Store, notify Notifier) *UserService {
	if notify == nil {
		notify = nopNotifier{}
	}
	return &UserService{store: store, notify: notify}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.Repos().Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.store.Repos().Users.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	u, err := userFromRequest(req)
	if err != nil {
		return nil, err
	}
	users := s.store.Repos().Users
	clashes, err := users.FindByUserNameOrEmail(ctx, u.UserName, u.UserEmail)
	if err != nil {
		return nil, err
	}
	if len(clashes) > 0 {
		return nil, ErrUserExists
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	global.Logger.Info().Uint("user", u.ID).Str("role", string(u.Role)).Msg("user created")
	s.notify.AccountCreated(*u)
	return u, nil
}

// Update replaces every field but the id. Matching its own name or email is
// fine; matching another user's is not.
func (s *UserService) Update(ctx context.Context, id uint, req dto.UserRequest) (*models.User, error) {
	users := s.store.Repos().Users
	current, err := users.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	next, err := userFromRequest(req)
	if err != nil {
		return nil, err
	}
	clashes, err := users.FindByUserNameOrEmail(ctx, next.UserName, next.UserEmail)
	if err != nil {
		return nil, err
	}
	for _, c := range clashes {
		if c.ID != current.ID {
			return nil, ErrUserInfoTaken
		}
	}
	next.ID = current.ID
	if err := users.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return next, nil
}

// Delete removes the user together with the recipes they authored and the
// comments they wrote.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.store.InTx(ctx, func(tx repo.Set) error {
		u, err := tx.Users.Get(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		recipes, err := tx.Recipes.FindByAuthor(ctx, u.ID)
		if err != nil {
			return err
		}
		for i := range recipes {
			if err := tx.Recipes.Remove(ctx, &recipes[i]); err != nil {
				return fmt.Errorf("delete recipe %d: %w", recipes[i].ID, err)
			}
		}
		if err := tx.Comments.DeleteByAuthor(ctx, u.ID); err != nil {
			return err
		}
		if err := tx.Users.Delete(ctx, u); err != nil {
			return err
		}
		global.Logger.Info().Uint("user", u.ID).Int("recipes", len(recipes)).Msg("user deleted")
		return nil
	})
}

// EnsureAdmin creates the bootstrap administrator unless a user with that
// name already exists.
func (s *UserService) EnsureAdmin(ctx context.Context, userName, password, email string) error {
	users := s.store.Repos().Users
	count, err := users.CountByUserName(ctx, userName)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return users.Create(ctx, &models.User{
		Role:         models.RoleAdmin,
		UserName:     userName,
		UserPassword: password,
		UserEmail:    email,
	})
}

func userFromRequest(req dto.UserRequest) (*models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, errUnsupportedRole(req.Role)
	}
	switch {
	case strings.TrimSpace(req.UserName) == "":
		return nil, ErrUserNameEmpty
	case req.UserPassword == "":
		return nil, ErrUserPasswordEmpty
	case strings.TrimSpace(req.UserEmail) == "":
		return nil, ErrUserEmailEmpty
	}
	return &models.User{
		Role:         role,
		UserName:     strings.TrimSpace(req.UserName),
		UserPassword: req.UserPassword,
		UserEmail:    strings.TrimSpace(req.UserEmail),
	}, nil
}
