// Package services contains application services for the blog client.
// Blog and user services are thin passthroughs over the HTTP client;
// AuthService ties the login endpoints to the session.
package services

import (
	"context"
	"net/url"
)

// Requester is the subset of *api.Client the services need.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, query url.Values, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
