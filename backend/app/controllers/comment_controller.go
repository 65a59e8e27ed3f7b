package controllers

import (
	"net/http"

	"recipe-book/backend/app/dto"
	"recipe-book/backend/app/models"
	"recipe-book/backend/app/services"
)

type CommentController struct {
	Guard    *services.Guard
	Comments *services.CommentService
}

func NewCommentController(guard *services.Guard, comments *services.CommentService) *CommentController {
	return &CommentController{Guard: guard, Comments: comments}
}

func (c *CommentController) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := c.Guard.RequireRecipe(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	comments, err := c.Comments.ListByRecipe(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCommentResponses(comments))
}

func (c *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	author, err := caller(r, c.Guard, models.RoleUser)
	if err != nil {
		writeError(w, r, err)
		return
	}
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
	var req dto.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	comment, err := c.Comments.Create(r.Context(), author, rec, req.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCommentResponse(comment))
}
