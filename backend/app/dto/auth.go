package dto

import "recipe-book/backend/app/models"

type LoginRequest struct {
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword"`
}

// LoginResponse echoes the user without its password, plus the session token
// to send back in the session header.
type LoginResponse struct {
	ID        uint   `json:"id"`
	Role      string `json:"role"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	SessionID string `json:"sessionId"`
}

func NewLoginResponse(u *models.User, token string) LoginResponse {
	return LoginResponse{
		ID:        u.ID,
		Role:      string(u.Role),
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		SessionID: token,
	}
}
