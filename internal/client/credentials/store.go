// Package credentials persists the bearer token that identifies the user's
// session. The store is the single source of truth for "a credential
// exists"; every other component asks it rather than keeping a copy.
package credentials

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/blogclient/internal/common"
)

// Store is a durable single-slot token store.
//
// Save overwrites any previous token. Read reports ("", false) when no token
// is stored; storage failures are logged by the implementation and also read
// as absent. Clear is idempotent.
type Store interface {
	Save(ctx context.Context, token string) error
	Read(ctx context.Context) (string, bool)
	Clear(ctx context.Context) error
}

func validate(token string) error {
	if strings.TrimSpace(token) == "" {
		return common.ErrEmptyToken
	}
	return nil
}
