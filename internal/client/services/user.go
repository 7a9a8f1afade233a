package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/blogclient/internal/client/models"
	"github.com/dmitrijs2005/blogclient/internal/common"
)

// UserService wraps the account endpoints. CurrentUser doubles as the
// session's profile fetcher.
type UserService interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, u models.User) (*models.User, error)
	Logout(ctx context.Context) error
}

type userService struct {
	api Requester
}

func NewUserService(api Requester) UserService {
	return &userService{api: api}
}

// Login posts the credentials as query parameters and returns the issued
// token. The server answers with the token as the whole payload.
func (u *userService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := validateInput(creds); err != nil {
		return "", err
	}

	q := url.Values{
		"username": {creds.Username},
		"password": {creds.Password},
	}

	var token string
	if err := u.api.Post(ctx, "/login", q, nil, &token); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("login: %w", common.ErrEmptyToken)
	}
	return token, nil
}

func (u *userService) Register(ctx context.Context, reg models.Registration) error {
	if err := validateInput(reg); err != nil {
		return err
	}
	if err := u.api.Post(ctx, "/auth/register", nil, reg, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (u *userService) CurrentUser(ctx context.Context) (*models.User, error) {
	var usr models.User
	if err := u.api.Get(ctx, "/user/current", nil, &usr); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &usr, nil
}

func (u *userService) UpdateProfile(ctx context.Context, usr models.User) (*models.User, error) {
	var out models.User
	if err := u.api.Put(ctx, "/auth/profile", usr, &out); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &out, nil
}

func (u *userService) Logout(ctx context.Context) error {
	if err := u.api.Post(ctx, "/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
