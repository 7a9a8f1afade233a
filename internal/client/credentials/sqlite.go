package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/blogclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blogclient/internal/common"
	"github.com/dmitrijs2005/blogclient/internal/dbx"
	"github.com/dmitrijs2005/blogclient/internal/logging"
)

// SQLiteStore keeps the token under common.TokenKey in the metadata table.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger}
}

// Save writes the token and drops the legacy login flag in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	if err := validate(token); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Delete(ctx, common.LegacyLoggedInKey)
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context) (string, bool) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenKey)
	if err != nil {
		s.logger.Warn(ctx, "credential store unavailable, treating token as absent", "error", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, common.TokenKey, common.LegacyLoggedInKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
