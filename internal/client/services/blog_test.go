package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogclient/internal/client/models"
	"github.com/dmitrijs2005/blogclient/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogService_ListPosts_SendsOnlySetParams(t *testing.T) {
	b := newBackend(t)
	var query map[string][]string
	b.mux.Get("/blog/list", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, `[{"id":1,"title":"a"},{"id":2,"title":"b"}]`)
	})

	posts, err := NewBlogService(b.api).ListPosts(context.Background(), models.ListParams{Page: 2, Keyword: "go"})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[1].Title)
	assert.Equal(t, map[string][]string{"page": {"2"}, "keyword": {"go"}}, query)
}

func TestBlogService_GetPost(t *testing.T) {
	b := newBackend(t)
	b.mux.Get("/blog/get", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", r.URL.Query().Get("id"))
		writeJSON(w, http.StatusOK, `{"id":9,"title":"hello","content":"world","author":"ann"}`)
	})

	p, err := NewBlogService(b.api).GetPost(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, &models.Post{ID: 9, Title: "hello", Content: "world", Author: "ann"}, p)
}

func TestBlogService_GetPost_NotFound(t *testing.T) {
	b := newBackend(t)
	b.mux.Get("/blog/get", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such post", http.StatusNotFound)
	})

	_, err := NewBlogService(b.api).GetPost(context.Background(), 1)
	require.ErrorContains(t, err, "get post 1")
	require.ErrorContains(t, err, "404")
}

func TestBlogService_CreateAndUpdatePost_SendBody(t *testing.T) {
	b := newBackend(t)
	var created, updated models.PostInput
	b.mux.Post("/blog/add", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		writeJSON(w, http.StatusOK, `{"id":5,"title":"t"}`)
	})
	b.mux.Put("/blog/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", chi.URLParam(r, "id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&updated))
		writeJSON(w, http.StatusOK, `{"id":5,"title":"t2"}`)
	})

	svc := NewBlogService(b.api)
	p, err := svc.CreatePost(context.Background(), models.PostInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, models.PostInput{Title: "t", Content: "c"}, created)

	p, err = svc.UpdatePost(context.Background(), 5, models.PostInput{Title: "t2", Content: "c2"})
	require.NoError(t, err)
	assert.Equal(t, "t2", p.Title)
	assert.Equal(t, "c2", updated.Content)
}

func TestBlogService_DeletePost(t *testing.T) {
	b := newBackend(t)
	var hit bool
	b.mux.Delete("/blog/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		hit = chi.URLParam(r, "id") == "3"
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, NewBlogService(b.api).DeletePost(context.Background(), 3))
	assert.True(t, hit)
}

func TestBlogService_Comments(t *testing.T) {
	b := newBackend(t)
	b.mux.Get("/posts/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":1,"postId":4,"content":"nice"}]`)
	})
	b.mux.Post("/posts/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"content":"me too"}`, string(body))
		writeJSON(w, http.StatusOK, `{"id":2,"postId":4,"content":"me too"}`)
	})
	var deleted string
	b.mux.Delete("/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = chi.URLParam(r, "id")
		w.WriteHeader(http.StatusOK)
	})

	svc := NewBlogService(b.api)
	ctx := context.Background()

	cs, err := svc.ListComments(ctx, 4)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, int64(4), cs[0].PostID)

	c, err := svc.AddComment(ctx, 4, models.CommentInput{Content: "me too"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)

	require.NoError(t, svc.DeleteComment(ctx, 2))
	assert.Equal(t, "2", deleted)
}

func TestBlogService_WritesCarryCredential(t *testing.T) {
	b := newBackend(t)
	require.NoError(t, b.store.Save(context.Background(), "tok"))

	var header string
	b.mux.Post("/blog/add", func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get(common.AuthHeaderName)
		writeJSON(w, http.StatusOK, `{"id":1}`)
	})

	_, err := NewBlogService(b.api).CreatePost(context.Background(), models.PostInput{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tok", header)
}

func TestBlogService_InvalidInputNeverReachesServer(t *testing.T) {
	b := newBackend(t)
	var hits int
	b.mux.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	svc := NewBlogService(b.api)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, models.PostInput{Content: "no title"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdatePost(ctx, 1, models.PostInput{Title: strings.Repeat("x", 201)})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddComment(ctx, 1, models.CommentInput{})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, hits)
}
