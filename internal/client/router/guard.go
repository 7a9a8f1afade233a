package router

// AuthState is the session flag the guard consults. Reads must not block.
type AuthState interface {
	IsAuthenticated() bool
}

// Decision is the outcome of one transition check.
type Decision struct {
	// Allowed transitions proceed to Match; denied ones go to Redirect.
	Allowed  bool
	Redirect string
	Match    Match
	// Known is false for paths no route serves.
	Known bool
}

type Guard struct {
	table     *Table
	auth      AuthState
	loginPath string
}

func NewGuard(table *Table, auth AuthState, loginPath string) *Guard {
	if loginPath == "" {
		loginPath = LoginPath
	}
	return &Guard{table: table, auth: auth, loginPath: loginPath}
}

// Check decides a transition to path. It reads the current session flag
// once and never waits for a profile fetch.
func (g *Guard) Check(path string) Decision {
	m, ok := g.table.Resolve(path)
	if !ok {
		return Decision{Allowed: true}
	}

	if m.Route.RequiresAuth && !g.auth.IsAuthenticated() {
		return Decision{Redirect: g.loginPath, Match: m, Known: true}
	}
	return Decision{Allowed: true, Match: m, Known: true}
}
