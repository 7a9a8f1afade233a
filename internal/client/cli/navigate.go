package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/blogclient/internal/client/router"
	"github.com/dmitrijs2005/blogclient/internal/common"
)

// Navigate shows the view at path. A protected view requested without a
// session goes through the Login view first and then continues to path.
func (a *App) Navigate(ctx context.Context, path string) error {
	d := a.guard.Check(path)

	if !d.Allowed {
		a.logger.Debug(ctx, "navigation redirected", "from", path, "to", d.Redirect)
		a.location = d.Redirect
		a.println("Please log in to continue.")
		if err := a.Login(ctx); err != nil {
			return err
		}

		d = a.guard.Check(path)
		if !d.Allowed {
			return common.ErrNotLoggedIn
		}
	}

	if !d.Known {
		a.println("Not found:", path)
		return nil
	}

	a.location = d.Match.Path
	return a.render(ctx, d.Match)
}

func (a *App) render(ctx context.Context, m router.Match) error {
	switch m.Route.Name {
	case router.Home:
		return a.homeView(ctx)
	case router.PostDetail:
		id, err := parseID(m.Param("id"))
		if err != nil {
			return err
		}
		return a.blogDetailView(ctx, id)
	case router.Editor:
		var id int64
		if raw := m.Param("id"); raw != "" {
			v, err := parseID(raw)
			if err != nil {
				return err
			}
			id = v
		}
		return a.postEditorView(ctx, id)
	case router.Login:
		return a.loginView(ctx)
	case router.UserDetail:
		return a.userDetailView(ctx)
	default:
		return fmt.Errorf("no view for route %s", m.Route.Name)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
