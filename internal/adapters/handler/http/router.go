package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	bookmarkHandler *BookmarkHandler,
	guard func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", authHandler.SignUp)
		r.Post("/sign-in", authHandler.SignIn)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(guard)
		r.Get("/test", userHandler.GetCurrent)
		r.Patch("/", userHandler.Edit)
	})

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(guard)
		r.Get("/", bookmarkHandler.List)
		r.Post("/", bookmarkHandler.Create)
		r.Get("/{id}", bookmarkHandler.Get)
		r.Patch("/{id}", bookmarkHandler.Edit)
		r.Delete("/{id}", bookmarkHandler.Delete)
	})

	return r
}
