package models

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// PostInput is the writable subset of a Post.
type PostInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content"`
}

// ListParams are the query parameters of GET /blog/list. Zero values are
// not sent.
type ListParams struct {
	Page     int
	PageSize int
	Keyword  string
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type CommentInput struct {
	Content string `json:"content" validate:"required"`
}
