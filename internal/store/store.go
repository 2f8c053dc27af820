package store

import (
	"context"
	"errors"

	"blog-api/internal/models"
)

var (
	// ErrNotFound is returned by lookups that match no row.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when an insert hits a uniqueness constraint.
	ErrDuplicate = errors.New("store: duplicate")
)

// UserStore persists accounts.
type UserStore interface {
	// CreateUser inserts a user and returns it with the assigned id.
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	// UserByUsernameOrEmail finds a user matching either field.
	UserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	// UserByEmail finds a user by email only.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// PostStore persists blog posts.
type PostStore interface {
	// CreatePost inserts a post and returns it with the assigned id
	// and creation timestamp.
	CreatePost(ctx context.Context, p *models.Post) (*models.Post, error)
}
