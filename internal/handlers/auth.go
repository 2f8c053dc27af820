package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/models"
	"blog-api/internal/store"
	"blog-api/internal/utils"
)

const (
	msgDuplicateUser = "Username or email already exists"
	msgBadLogin      = "Invalid username or email or password"
	msgInternal      = "Internal Server Error"
)

type AuthHandler struct {
	users    store.UserStore
	secret   string
	validate *validator.Validate
	log      *slog.Logger
}

func NewAuthHandler(users store.UserStore, secret string, validate *validator.Validate, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		secret:   secret,
		validate: validate,
		log:      log,
	}
}

type signUpReq struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResp struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

type loginResp struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// SignUp registers a new account. A username or email collision maps
// to 400 whether caught by the pre-check or by the uniqueness
// constraint on insert.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	_, err := h.users.UserByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err == nil {
		utils.JSONError(w, http.StatusBadRequest, msgDuplicateUser)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.log.Error("signup lookup failed", slog.String("error", err.Error()))
		utils.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("password hash failed", slog.String("error", err.Error()))
		utils.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	user, err := h.users.CreateUser(r.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	})
	if errors.Is(err, store.ErrDuplicate) {
		utils.JSONError(w, http.StatusBadRequest, msgDuplicateUser)
		return
	}
	if err != nil {
		h.log.Error("signup insert failed", slog.String("error", err.Error()))
		utils.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	utils.JSON(w, http.StatusCreated, userResp{Success: true, User: user})
}

// Login authenticates by email and password and issues a bearer
// token. The client gets the same 401 whether the email is unknown or
// the password is wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.UserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		h.log.Debug("login: unknown email", slog.String("email", req.Email))
		utils.JSONError(w, http.StatusUnauthorized, msgBadLogin)
		return
	}
	if err != nil {
		h.log.Error("login lookup failed", slog.String("error", err.Error()))
		utils.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.log.Debug("login: password mismatch", slog.Int64("user_id", user.ID))
		utils.JSONError(w, http.StatusUnauthorized, msgBadLogin)
		return
	}

	token, err := utils.GenerateToken(user.ID, h.secret, utils.TokenTTL)
	if err != nil {
		h.log.Error("token issue failed", slog.String("error", err.Error()))
		utils.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	utils.JSON(w, http.StatusOK, loginResp{Success: true, User: user, Token: token})
}
