package controllers

import (
	"net/http"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/services"
)

type UserController struct {
	Guard *services.Guard
	Users *services.UserService
}

func NewUserController(guard *services.Guard, users *services.UserService) *UserController {
	return &UserController{Guard: guard, Users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponses(users))
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := c.Users.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := caller(r, c.Guard, models.RoleAdmin); err != nil {
		writeError(w, r, err)
		return
	}
	var req dto.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, err := c.Users.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := caller(r, c.Guard, models.RoleAdmin); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req dto.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, err := c.Users.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := caller(r, c.Guard, models.RoleAdmin); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := c.Users.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
