package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"recipe-book/backend/app/middleware"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/services"
	"recipe-book/backend/global"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"status": status, "error": msg})
}

// writeError renders client failures with their own status and reason and
// everything else as a logged 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		writeJSONError(w, apiErr.Status, apiErr.Reason)
		return
	}
	global.Logger.Error().Err(err).
		Str("request_id", middleware.RequestID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	writeJSONError(w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return services.ErrMalformedBody
	}
	return nil
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, services.ErrMalformedID
	}
	return uint(id), nil
}

type userGuard interface {
	RequireUser(ctx context.Context, id uint, roles ...models.Role) (*models.User, error)
}

// caller loads the logged in user and checks its role against roles.
func caller(r *http.Request, guard userGuard, roles ...models.Role) (*models.User, error) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		return nil, services.ErrNotLoggedIn
	}
	return guard.RequireUser(r.Context(), id, roles...)
}
