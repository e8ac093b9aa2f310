// Package session manages the customer login session: token persistence
// across process restarts and restoration of the account profile on start.
package session

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// ErrNoSession reports that no stored session exists.
var ErrNoSession = errors.New("no stored session")

// TokenStore persists a session token between runs.
type TokenStore interface {
	// Load returns the stored token, or "" with a nil error when no
	// token has been saved.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single file, readable only by the owner.
type FileStore struct {
	path string
}

var _ TokenStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read token file")
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileStore) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "create token dir")
		}
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return errors.Wrap(err, "write token file")
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "remove token file")
	}
	return nil
}
