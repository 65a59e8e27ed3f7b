package router

import (
	"net/http"

	"recipe-book/backend/app/controllers"
	"recipe-book/backend/app/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	HTTP     *controllers.HTTPController
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Recipes  *controllers.RecipeController
	Comments *controllers.CommentController
}

// NewRouter mounts the API under /api/v1. Everything but login and ping
// needs a session.
func NewRouter(c Controllers, session *middleware.Session, origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", session.Header, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// public
		r.Get("/ping", c.HTTP.Ping)
		r.Post("/login", c.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(session.Require)

			r.Get("/logout", c.Auth.Logout)

			r.Get("/users", c.Users.List)
			r.Get("/user/{id}", c.Users.Get)
			r.Post("/user", c.Users.Create)
			r.Put("/user/{id}", c.Users.Update)
			r.Delete("/user/{id}", c.Users.Delete)

			r.Get("/recipes", c.Recipes.List)
			r.Get("/recipe", c.Recipes.Mine)
			r.Post("/recipe", c.Recipes.Create)
			r.Get("/recipe/{id}", c.Recipes.Get)
			r.Put("/recipe/{id}", c.Recipes.Update)
			r.Delete("/recipe/{id}", c.Recipes.Delete)

			r.Get("/recipe/{id}/comments", c.Comments.List)
			r.Post("/recipe/{id}/comment", c.Comments.Create)
		})
	})
	return r
}
