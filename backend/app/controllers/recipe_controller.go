package controllers

import (
	"net/http"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/services"
)

type RecipeController struct {
	Guard   *services.Guard
	Recipes *services.RecipeService
}

func NewRecipeController(guard *services.Guard, recipes *services.RecipeService) *RecipeController {
	return &RecipeController{Guard: guard, Recipes: recipes}
}

// List serves GET /recipes, optionally filtered by ?keywords=a,b.
func (c *RecipeController) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := c.Recipes.List(r.Context(), r.URL.Query()["keywords"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeResponses(recipes))
}

// Mine serves GET /recipe: the recipes written by the calling chef.
func (c *RecipeController) Mine(w http.ResponseWriter, r *http.Request) {
	chef, err := caller(r, c.Guard, models.RoleChef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recipes, err := c.Recipes.ListByAuthor(r.Context(), chef.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeResponses(recipes))
}

func (c *RecipeController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := c.Guard.RequireRecipe(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeResponse(rec))
}

func (c *RecipeController) Create(w http.ResponseWriter, r *http.Request) {
	chef, err := caller(r, c.Guard, models.RoleChef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req dto.RecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := c.Recipes.Create(r.Context(), chef, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeResponse(rec))
}

func (c *RecipeController) Update(w http.ResponseWriter, r *http.Request) {
	chef, err := caller(r, c.Guard, models.RoleChef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req dto.RecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := c.Recipes.Update(r.Context(), chef, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeResponse(rec))
}

func (c *RecipeController) Delete(w http.ResponseWriter, r *http.Request) {
	chef, err := caller(r, c.Guard, models.RoleChef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := c.Recipes.Delete(r.Context(), chef, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
