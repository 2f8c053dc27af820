package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_Success(t *testing.T) {
	h, _ := newTestHandler()

	rec := doJSON(t, h.Posts.CreatePost, map[string]string{
		"title":   "First Post",
		"content": "Hello world",
		"author":  "alice",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	post, ok := body["post"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), post["id"])
	assert.Equal(t, "First Post", post["title"])
	assert.Equal(t, "Hello world", post["content"])
	assert.Equal(t, "alice", post["author"])
	assert.NotEmpty(t, post["created_at"])
}

func TestCreatePost_MissingFields(t *testing.T) {
	h, _ := newTestHandler()

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "no title", body: map[string]string{"content": "c", "author": "a"}},
		{name: "no content", body: map[string]string{"title": "t", "author": "a"}},
		{name: "no author", body: map[string]string{"title": "t", "content": "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.Posts.CreatePost, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
