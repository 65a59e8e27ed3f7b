package controllers

import (
	"net/http"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/middleware"
	"recipe-book/backend/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, token, err := c.Auth.Login(r.Context(), req.UserName, req.UserPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewLoginResponse(u, token))
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Auth.Logout(middleware.SessionToken(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, true)
}
