package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogclient/internal/logging"
	"github.com/spf13/afero"
)

type fileCredentials struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore keeps the token in a JSON file readable only by the owner.
type FileStore struct {
	fs     afero.Fs
	path   string
	logger logging.Logger
	mu     sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the parent directory of path on fs. Use
// afero.NewOsFs() for the real filesystem.
func NewFileStore(fs afero.Fs, path string, logger logging.Logger) (*FileStore, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}
	return &FileStore{fs: fs, path: path, logger: logger}, nil
}

func (s *FileStore) Save(ctx context.Context, token string) error {
	if err := validate(token); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fileCredentials{Token: token, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Read(ctx context.Context) (string, bool) {
	s.mu.Lock()
	data, err := afero.ReadFile(s.fs, s.path)
	s.mu.Unlock()

	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn(ctx, "failed to read credentials file", "path", s.path, "error", err)
		}
		return "", false
	}

	var creds fileCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Warn(ctx, "failed to unmarshal credentials", "path", s.path, "error", err)
		return "", false
	}
	if validate(creds.Token) != nil {
		return "", false
	}
	return creds.Token, true
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
