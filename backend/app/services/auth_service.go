package services

import (
	"context"
	"errors"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/session"
	"recipe-book/backend/global"
)

type userFinder interface {
	FindByUserName(ctx context.Context, userName string) (*models.User, error)
}

type AuthService struct {
	users    userFinder
	sessions *session.Registry
}

func NewAuthService(users userFinder, sessions *session.Registry) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login opens a session for the user whose stored name and password match
// exactly. Unknown names and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*models.User, string, error) {
	u, err := s.users.FindByUserName(ctx, userName)
	if errors.Is(err, repo.ErrNotFound) {
		global.Logger.Warn().Str("user", userName).Msg("login with unknown user name")
		return nil, "", ErrWrongCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if u.UserPassword != password {
		global.Logger.Warn().Str("user", userName).Msg("login with wrong password")
		return nil, "", ErrWrongCredentials
	}
	token, err := s.sessions.Create(u.ID)
	if err != nil {
		return nil, "", err
	}
	global.Logger.Info().Uint("user", u.ID).Int("sessions", s.sessions.Len()).Msg("user logged in")
	return u, token, nil
}

func (s *AuthService) Logout(token string) error {
	if !s.sessions.End(token) {
		return ErrNotLoggedIn
	}
	global.Logger.Info().Int("sessions", s.sessions.Len()).Msg("session ended")
	return nil
}
