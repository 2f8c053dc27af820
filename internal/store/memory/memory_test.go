package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/models"
	"blog-api/internal/store"
	"blog-api/internal/store/memory"
)

func TestCreateUser_AssignsIDs(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	alice, err := st.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "h1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)

	bob, err := st.CreateUser(ctx, &models.User{Username: "bob", Email: "b@x.com", Password: "h2"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)
}

func TestCreateUser_Duplicate(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	_, err := st.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "h"})
	require.NoError(t, err)

	_, err = st.CreateUser(ctx, &models.User{Username: "alice", Email: "other@x.com", Password: "h"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	_, err = st.CreateUser(ctx, &models.User{Username: "other", Email: "a@x.com", Password: "h"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserLookups(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	created, err := st.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "h"})
	require.NoError(t, err)

	byEither, err := st.UserByUsernameOrEmail(ctx, "alice", "none@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEither.ID)

	byEmail, err := st.UserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = st.UserByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.UserByUsernameOrEmail(ctx, "nobody", "missing@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreatePost(t *testing.T) {
	st := memory.New()

	post, err := st.CreatePost(context.Background(), &models.Post{
		Title:   "t",
		Content: "c",
		Author:  "a",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.False(t, post.CreatedAt.IsZero())
}
