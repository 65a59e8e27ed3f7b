package dto

import (
	"time"

	"recipe-book/backend/app/models"
)

type IngredientDTO struct {
	ID         uint   `json:"id,omitempty"`
	Ingredient string `json:"ingredient"`
}

type KeywordDTO struct {
	ID      uint   `json:"id,omitempty"`
	Keyword string `json:"keyword"`
}

type RecipeRequest struct {
	RecipeName  string          `json:"recipeName"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Keywords    []KeywordDTO    `json:"keywords"`
}

func (r RecipeRequest) IngredientNames() []string {
	out := make([]string, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		out = append(out, i.Ingredient)
	}
	return out
}

func (r RecipeRequest) KeywordNames() []string {
	out := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		out = append(out, k.Keyword)
	}
	return out
}

type RecipeResponse struct {
	ID          uint              `json:"id"`
	Author      UserResponse      `json:"author"`
	RecipeName  string            `json:"recipeName"`
	Ingredients []IngredientDTO   `json:"ingredients"`
	Keywords    []KeywordDTO      `json:"keywords"`
	Comments    []CommentResponse `json:"comments"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

type CommentResponse struct {
	ID       uint          `json:"id"`
	RecipeID uint          `json:"recipeId"`
	Author   CommentAuthor `json:"author"`
	Created  time.Time     `json:"created"`
	Comment  string        `json:"comment"`
}

func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:          r.ID,
		Author:      NewAuthorResponse(&r.Author),
		RecipeName:  r.RecipeName,
		Ingredients: make([]IngredientDTO, 0, len(r.Ingredients)),
		Keywords:    make([]KeywordDTO, 0, len(r.Keywords)),
		Comments:    NewCommentResponses(r.Comments),
	}
	for _, i := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientDTO{ID: i.ID, Ingredient: i.Name})
	}
	for _, k := range r.Keywords {
		resp.Keywords = append(resp.Keywords, KeywordDTO{ID: k.ID, Keyword: k.Name})
	}
	return resp
}

func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:       c.ID,
		RecipeID: c.RecipeID,
		Author:   CommentAuthor{ID: c.Author.ID, UserName: c.Author.UserName, Role: string(c.Author.Role)},
		Created:  c.Created,
		Comment:  c.Text,
	}
}

func NewCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
