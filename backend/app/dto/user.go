package dto

import "recipe-book/backend/app/models"

type UserRequest struct {
	Role         string `json:"role"`
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword"`
	UserEmail    string `json:"userEmail"`
}

type UserResponse struct {
	ID           uint   `json:"id"`
	Role         string `json:"role"`
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword,omitempty"`
	UserEmail    string `json:"userEmail,omitempty"`
}

// NewUserResponse renders the full user record, password included, as the
// user administration endpoints always have.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Role:         string(u.Role),
		UserName:     u.UserName,
		UserPassword: u.UserPassword,
		UserEmail:    u.UserEmail,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// NewAuthorResponse is the public view of a user embedded in recipes.
func NewAuthorResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Role: string(u.Role), UserName: u.UserName, UserEmail: u.UserEmail}
}

// CommentAuthor is the minimal author view shown next to a comment.
type CommentAuthor struct {
	ID       uint   `json:"id"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}
