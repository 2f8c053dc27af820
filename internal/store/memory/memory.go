// Package memory holds an in-memory store implementation used by
// handler and middleware tests.
package memory

import (
	"context"
	"sync"
	"time"

	"blog-api/internal/models"
	"blog-api/internal/store"
)

type Store struct {
	mu         sync.Mutex
	users      []models.User
	posts      []models.Post
	nextUserID int64
	nextPostID int64
}

func New() *Store {
	return &Store{nextUserID: 1, nextPostID: 1}
}

func (s *Store) CreateUser(_ context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, store.ErrDuplicate
		}
	}

	created := *u
	created.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, created)
	return &created, nil
}

func (s *Store) UserByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			match := u
			return &match, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			match := u
			return &match, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreatePost(_ context.Context, p *models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *p
	created.ID = s.nextPostID
	created.CreatedAt = time.Now()
	s.nextPostID++
	s.posts = append(s.posts, created)
	return &created, nil
}
