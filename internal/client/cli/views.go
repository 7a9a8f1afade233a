package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogclient/internal/client/models"
)

const pageSize = 20

func (a *App) homeView(ctx context.Context) error {
	posts, err := a.blog.ListPosts(ctx, models.ListParams{Page: 1, PageSize: pageSize})
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		a.println("No posts yet.")
		return nil
	}
	for _, p := range posts {
		a.printf("%5d  %s%s\n", p.ID, p.Title, byline(p.Author))
	}
	return nil
}

func (a *App) blogDetailView(ctx context.Context, id int64) error {
	post, err := a.blog.GetPost(ctx, id)
	if err != nil {
		return err
	}

	a.printf("# %s%s\n", post.Title, byline(post.Author))
	if !post.CreatedAt.IsZero() {
		a.println(post.CreatedAt.Format(time.DateTime))
	}
	a.println()
	a.println(post.Content)
	a.println()

	comments, err := a.blog.ListComments(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "failed to load comments", "post_id", id, "error", err)
		a.println("Comments unavailable.")
	} else {
		a.printf("Comments (%d)\n", len(comments))
		for _, c := range comments {
			a.printf("  [%d]%s %s\n", c.ID, byline(c.Author), c.Content)
		}
	}

	if !a.isAuthenticated() {
		return nil
	}

	text, err := getSimpleText(a.reader, "Add a comment (empty to skip)", a.out)
	if err != nil {
		return endOfInput(err)
	}
	if text == "" {
		return nil
	}
	c, err := a.blog.AddComment(ctx, id, models.CommentInput{Content: text})
	if err != nil {
		return err
	}
	a.printf("Comment %d added.\n", c.ID)
	return nil
}

// postEditorView writes a new post when id is 0 and edits post id otherwise.
// Empty answers keep the current values of an existing post.
func (a *App) postEditorView(ctx context.Context, id int64) error {
	var in models.PostInput
	if id > 0 {
		post, err := a.blog.GetPost(ctx, id)
		if err != nil {
			return err
		}
		in = models.PostInput{Title: post.Title, Content: post.Content}
		a.printf("Editing post %d: %s\n", id, post.Title)
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		in.Title = title
	}

	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		in.Content = content
	}

	if strings.TrimSpace(in.Title) == "" {
		return errors.New("title is required")
	}

	var saved *models.Post
	if id > 0 {
		saved, err = a.blog.UpdatePost(ctx, id, in)
	} else {
		saved, err = a.blog.CreatePost(ctx, in)
	}
	if err != nil {
		return err
	}
	a.printf("Saved post %d.\n", saved.ID)
	return nil
}

func (a *App) loginView(ctx context.Context) error {
	if a.isAuthenticated() {
		a.println("Already logged in.")
		return nil
	}
	return a.Login(ctx)
}

func (a *App) userDetailView(ctx context.Context) error {
	u := a.session.LazyLoad(ctx)
	if u == nil {
		a.println("Profile unavailable, try 'reload'.")
		return nil
	}

	a.printf("Name:   %s\n", u.Name)
	a.printf("ID:     %d\n", u.ID)
	if u.Email != "" {
		a.printf("Email:  %s\n", u.Email)
	}
	if u.Avatar != "" {
		a.printf("Avatar: %s\n", u.Avatar)
	}

	answer, err := getSimpleText(a.reader, "Edit profile? [y/N]", a.out)
	if err != nil {
		return endOfInput(err)
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}
	return a.editProfile(ctx, *u)
}

func (a *App) editProfile(ctx context.Context, u models.User) error {
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name (empty to keep)", &u.Name},
		{"Email (empty to keep)", &u.Email},
		{"Avatar URL (empty to keep)", &u.Avatar},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	if _, err := a.users.UpdateProfile(ctx, u); err != nil {
		return err
	}
	if !a.session.ForceLoad(ctx) {
		a.println("Profile updated, but it could not be reloaded. Try 'reload'.")
		return nil
	}
	a.println("Profile updated.")
	return nil
}

// endOfInput treats a closed input as "no answer" and reports anything else.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func byline(author string) string {
	if author == "" {
		return ""
	}
	return " by " + author
}
