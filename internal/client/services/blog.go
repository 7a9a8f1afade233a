package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/blogclient/internal/client/models"
)

// BlogService covers posts and comments.
type BlogService interface {
	ListPosts(ctx context.Context, params models.ListParams) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, postID int64, in models.CommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type blogService struct {
	api Requester
}

func NewBlogService(api Requester) BlogService {
	return &blogService{api: api}
}

func (b *blogService) ListPosts(ctx context.Context, params models.ListParams) ([]models.Post, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}

	var posts []models.Post
	if err := b.api.Get(ctx, "/blog/list", q, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (b *blogService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	q := url.Values{"id": {strconv.FormatInt(id, 10)}}
	if err := b.api.Get(ctx, "/blog/get", q, &p); err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &p, nil
}

func (b *blogService) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var p models.Post
	if err := b.api.Post(ctx, "/blog/add", nil, in, &p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &p, nil
}

func (b *blogService) UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var p models.Post
	if err := b.api.Put(ctx, postPath(id), in, &p); err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return &p, nil
}

func (b *blogService) DeletePost(ctx context.Context, id int64) error {
	if err := b.api.Delete(ctx, postPath(id), nil); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}

func (b *blogService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var cs []models.Comment
	if err := b.api.Get(ctx, commentsPath(postID), nil, &cs); err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return cs, nil
}

func (b *blogService) AddComment(ctx context.Context, postID int64, in models.CommentInput) (*models.Comment, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var c models.Comment
	if err := b.api.Post(ctx, commentsPath(postID), nil, in, &c); err != nil {
		return nil, fmt.Errorf("add comment to post %d: %w", postID, err)
	}
	return &c, nil
}

func (b *blogService) DeleteComment(ctx context.Context, id int64) error {
	if err := b.api.Delete(ctx, "/comments/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}

func postPath(id int64) string {
	return "/blog/posts/" + strconv.FormatInt(id, 10)
}

func commentsPath(postID int64) string {
	return "/posts/" + strconv.FormatInt(postID, 10) + "/comments"
}
