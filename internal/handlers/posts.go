package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-api/internal/models"
	"blog-api/internal/store"
	"blog-api/internal/utils"
)

type PostHandler struct {
	posts    store.PostStore
	validate *validator.Validate
	log      *slog.Logger
}

func NewPostHandler(posts store.PostStore, validate *validator.Validate, log *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, validate: validate, log: log}
}

type createPostReq struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

type postResp struct {
	Success bool         `json:"success"`
	Post    *models.Post `json:"post"`
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "title, content and author are required")
		return
	}

	post, err := h.posts.CreatePost(r.Context(), &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		h.log.Error("post insert failed", slog.String("error", err.Error()))
		utils.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	utils.JSON(w, http.StatusCreated, postResp{Success: true, Post: post})
}
