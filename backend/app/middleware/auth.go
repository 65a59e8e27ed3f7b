package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"recipe-book/backend/app/services"
)

type sessionGuard interface {
	RequireSession(token string) (uint, error)
}

// Session rejects requests whose session header does not resolve to a user
// and stores the user id and token in the request context otherwise.
type Session struct {
	Guard  sessionGuard
	Header string
}

func (s *Session) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(s.Header)
		userID, err := s.Guard.RequireSession(token)
		if err != nil {
			var apiErr *services.APIError
			if !errors.As(err, &apiErr) {
				apiErr = services.ErrNotLoggedIn
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(apiErr.Status)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": apiErr.Status, "error": apiErr.Reason})
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
