package services

import (
	"fmt"
	"net/http"
)

// APIError is a failure the client caused. It carries the HTTP status and the
// reason rendered in the error envelope.
type APIError struct {
	Status int
	Reason string
}

func (e *APIError) Error() string { return e.Reason }

func badRequest(reason string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Reason: reason}
}

var (
	ErrNotLoggedIn       = &APIError{Status: http.StatusUnauthorized, Reason: "The user wasn't logged in"}
	ErrWrongCredentials  = badRequest("The user login or password is wrong")
	ErrUserNotFound      = badRequest("The user doesn't exist")
	ErrRoleNotAllowed    = badRequest("The role of the user doesn't allow the requested operation")
	ErrRecipeNotFound    = badRequest("The recipe doesn't exist")
	ErrUserExists        = badRequest("There is already a user with that username or email. Please change them")
	ErrUserInfoTaken     = badRequest("The user information already exists for another user")
	ErrRecipeExists      = badRequest("The recipe already exists. Change the name of the recipe")
	ErrRecipeNameTaken   = badRequest("There is already an existing recipe with this name. Please, change the name")
	ErrRecipeNameEmpty   = badRequest("The recipe name can't be empty")
	ErrIngredientEmpty   = badRequest("The ingredient name can't be empty")
	ErrKeywordEmpty      = badRequest("The keyword name can't be empty")
	ErrCommentEmpty      = badRequest("The comment can't be empty")
	ErrUserNameEmpty     = badRequest("The user name can't be empty")
	ErrUserPasswordEmpty = badRequest("The user password can't be empty")
	ErrUserEmailEmpty    = badRequest("The user email can't be empty")
	ErrMalformedBody     = badRequest("The request body is malformed")
	ErrMalformedID       = badRequest("The id must be a number")
)

func ErrNotOwner(userName string) *APIError {
	return badRequest("The recipe doesn't belong to the user " + userName)
}

func errUnsupportedRole(role string) *APIError {
	return badRequest(fmt.Sprintf("Unsupported role %s", role))
}
