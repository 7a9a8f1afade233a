package cli

import (
	"context"
	"strings"
)

// DeletePost removes post id after confirmation. Without a session the
// Login view runs first, as for protected views.
func (a *App) DeletePost(ctx context.Context, raw string) error {
	id, err := parseID(raw)
	if err != nil {
		return err
	}
	if !a.confirm(ctx, "Delete post "+raw+"? [y/N]") {
		return nil
	}
	if err := a.ensureLogin(ctx); err != nil {
		return err
	}

	if err := a.blog.DeletePost(ctx, id); err != nil {
		return err
	}
	a.printf("Post %d deleted.\n", id)

	if a.location == "/post/"+raw || a.location == "/editor/"+raw {
		a.location = "/"
	}
	return nil
}

// DeleteComment removes comment id after confirmation.
func (a *App) DeleteComment(ctx context.Context, raw string) error {
	id, err := parseID(raw)
	if err != nil {
		return err
	}
	if !a.confirm(ctx, "Delete comment "+raw+"? [y/N]") {
		return nil
	}
	if err := a.ensureLogin(ctx); err != nil {
		return err
	}

	if err := a.blog.DeleteComment(ctx, id); err != nil {
		return err
	}
	a.printf("Comment %d deleted.\n", id)
	return nil
}

func (a *App) ensureLogin(ctx context.Context) error {
	if a.isAuthenticated() {
		return nil
	}
	a.println("Please log in to continue.")
	return a.Login(ctx)
}

func (a *App) confirm(ctx context.Context, prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		a.logger.Debug(ctx, "no confirmation", "error", err)
		return false
	}
	return strings.EqualFold(answer, "y")
}
