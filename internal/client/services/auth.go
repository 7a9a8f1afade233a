package services

import (
	"context"

	"github.com/dmitrijs2005/blogclient/internal/client/models"
	"github.com/dmitrijs2005/blogclient/internal/client/session"
	"github.com/dmitrijs2005/blogclient/internal/logging"
)

// Session is the part of *session.Session that login and logout drive.
type Session interface {
	Login(ctx context.Context, token string) error
	Invalidate(ctx context.Context)
	State() session.State
}

// AuthService orchestrates login, logout and registration.
//
//   - Login exchanges credentials for a token and hands it to the session,
//     which persists it and loads the profile.
//   - Logout tells the server (best effort) and always ends the local session.
//   - Register creates an account; it does not log in.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, reg models.Registration) error
}

type authService struct {
	users   UserService
	session Session
	logger  logging.Logger
}

func NewAuthService(users UserService, sess Session, logger logging.Logger) AuthService {
	return &authService{users: users, session: sess, logger: logger}
}

// Login returns the loaded profile, or nil when the token was stored but the
// profile could not be fetched yet.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	token, err := a.users.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := a.session.Login(ctx, token); err != nil {
		return nil, err
	}

	st := a.session.State()
	if !st.Loaded {
		a.logger.Warn(ctx, "logged in but profile not loaded", "username", creds.Username)
	}
	return st.User, nil
}

// Logout returns the server error, if any, after the local session has been
// ended regardless.
func (a *authService) Logout(ctx context.Context) error {
	err := a.users.Logout(ctx)
	if err != nil {
		a.logger.Warn(ctx, "server logout failed", "error", err)
	}
	a.session.Invalidate(ctx)
	return err
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	return a.users.Register(ctx, reg)
}
