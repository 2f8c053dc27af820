package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"blog-api/internal/store"
)

type Handler struct {
	Auth  *AuthHandler
	Posts *PostHandler
}

func NewHandler(users store.UserStore, posts store.PostStore, secret string, log *slog.Logger) *Handler {
	validate := validator.New()
	return &Handler{
		Auth:  NewAuthHandler(users, secret, validate, log),
		Posts: NewPostHandler(posts, validate, log),
	}
}
