package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"blog-api/internal/models"
)

const uniqueViolation = "23505"

// Postgres implements UserStore and PostStore over a sqlx connection
// pool.
type Postgres struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewPostgres(db *sqlx.DB, log *slog.Logger) *Postgres {
	return &Postgres{db: db, log: log}
}

// EnsureSchema creates the tables if they do not exist. It never drops
// or migrates existing data.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS blog_users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			author VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("store: create table: %w", err)
		}
	}
	return nil
}

func (s *Postgres) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	var created models.User
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO blog_users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password
	`, u.Username, u.Email, u.Password).StructScan(&created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		s.log.Error("insert user failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("store: insert user: %w", err)
	}
	return &created, nil
}

func (s *Postgres) UserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `
		SELECT id, username, email, password
		FROM blog_users
		WHERE username = $1 OR email = $2
	`, username, email)
	return s.userResult(&u, err)
}

func (s *Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `
		SELECT id, username, email, password
		FROM blog_users
		WHERE email = $1
	`, email)
	return s.userResult(&u, err)
}

func (s *Postgres) userResult(u *models.User, err error) (*models.User, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("user lookup failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("store: find user: %w", err)
	}
	return u, nil
}

func (s *Postgres) CreatePost(ctx context.Context, p *models.Post) (*models.Post, error) {
	var created models.Post
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO posts (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author, created_at
	`, p.Title, p.Content, p.Author).StructScan(&created)

	if err != nil {
		s.log.Error("insert post failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("store: insert post: %w", err)
	}
	return &created, nil
}
