// Package router resolves client paths to views and decides, before every
// transition, whether the transition may proceed.
package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route names.
const (
	Home       = "home"
	PostDetail = "post-detail"
	Login      = "login"
	Editor     = "editor"
	UserDetail = "user"
)

// LoginPath is where unauthenticated navigation to a protected route lands.
const LoginPath = "/login"

// Route describes one view. Paths use chi pattern syntax; an optional
// trailing parameter is expressed as two paths.
type Route struct {
	Name         string
	Paths        []string
	RequiresAuth bool
}

func DefaultRoutes() []Route {
	return []Route{
		{Name: Home, Paths: []string{"/"}},
		{Name: PostDetail, Paths: []string{"/post/{id}"}},
		{Name: Login, Paths: []string{LoginPath}},
		{Name: Editor, Paths: []string{"/editor", "/editor/{id}"}, RequiresAuth: true},
		{Name: UserDetail, Paths: []string{"/user"}, RequiresAuth: true},
	}
}

// Match is a resolved path.
type Match struct {
	Route  *Route
	Path   string
	Params map[string]string
}

// Param returns a URL parameter, or "" when absent.
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Table is an immutable set of routes.
type Table struct {
	mux       *chi.Mux
	byPattern map[string]*Route
}

var noop = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

// NewTable compiles routes. Every path must be absolute and unique.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{mux: chi.NewRouter(), byPattern: make(map[string]*Route)}

	for i := range routes {
		r := &routes[i]
		if r.Name == "" || len(r.Paths) == 0 {
			return nil, fmt.Errorf("route #%d: name and at least one path required", i)
		}
		for _, p := range r.Paths {
			if !strings.HasPrefix(p, "/") {
				return nil, fmt.Errorf("route %s: path %q must start with /", r.Name, p)
			}
			if other, ok := t.byPattern[p]; ok {
				return nil, fmt.Errorf("route %s: path %q already used by %s", r.Name, p, other.Name)
			}
			t.byPattern[p] = r
			t.mux.Get(p, noop)
		}
	}
	return t, nil
}

// Resolve finds the route serving path. Query strings and fragments are
// ignored.
func (t *Table) Resolve(path string) (Match, bool) {
	u, err := url.Parse(path)
	if err != nil {
		return Match{}, false
	}
	p := u.Path
	if p == "" {
		p = "/"
	}

	rctx := chi.NewRouteContext()
	if !t.mux.Match(rctx, http.MethodGet, p) || len(rctx.RoutePatterns) == 0 {
		return Match{}, false
	}

	route, ok := t.byPattern[rctx.RoutePatterns[len(rctx.RoutePatterns)-1]]
	if !ok {
		return Match{}, false
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		params[k] = rctx.URLParams.Values[i]
	}
	return Match{Route: route, Path: p, Params: params}, true
}
