package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blogclient/internal/client/credentials"
	"github.com/dmitrijs2005/blogclient/internal/client/models"
)

// Login prompts for credentials and starts a session. A profile that cannot
// be loaded right after login does not fail the login.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.logger.Warn(ctx, "login failed", "username", username, "error", err)
		a.println("Login unsuccessful.")
		return err
	}

	if u != nil {
		a.println("Logged in as", u.Name)
	} else {
		a.println("Logged in. Profile not available yet, try 'reload'.")
	}
	return nil
}

// Logout always ends the local session. If the current view is protected
// the client falls back to Home.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.println("Logged out.")

	if !a.guard.Check(a.location).Allowed {
		a.location = "/"
	}
	if err != nil {
		a.println("The server could not be notified.")
	}
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	reg := models.Registration{Username: username, Password: password, Email: email}
	if err := a.auth.Register(ctx, reg); err != nil {
		return err
	}

	a.println("Success! You can log in now.")
	return nil
}

// WhoAmI describes the stored credential and the cached profile. Token
// claims are read without verification and shown for information only.
func (a *App) WhoAmI(ctx context.Context) error {
	token, ok := a.store.Read(ctx)
	if !ok {
		a.println("Not logged in.")
		return nil
	}

	if st := a.session.State(); st.User != nil {
		a.printf("User: %s (id %d)\n", st.User.Name, st.User.ID)
	} else {
		a.println("User: profile not loaded")
	}

	info := credentials.Inspect(token)
	if !info.JWT {
		a.println("Token: opaque")
		return nil
	}

	a.printf("Token subject: %s\n", info.Subject)
	if !info.ExpiresAt.IsZero() {
		exp := info.ExpiresAt.Local().Format(time.DateTime)
		if info.Expired(time.Now()) {
			exp += " (expired)"
		}
		a.printf("Token expires: %s\n", exp)
	}
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	if a.session.ForceLoad(ctx) {
		a.println("Profile reloaded.")
		return nil
	}
	if !a.isAuthenticated() {
		a.println("Not logged in.")
		return nil
	}
	a.println("Could not load profile.")
	return nil
}
