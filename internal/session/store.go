// Package session owns the signed-in user: one explicit manager plus a
// file-backed store, instead of ambient global state. Persistence is a
// deliberate side effect of login/logout/update.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ucampus/reservas-cli/internal/entity"
)

type persisted struct {
	User  *entity.User `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
}

// Store keeps the session in memory and mirrors it into a JSON file so
// it survives between invocations. The file may be mutated externally;
// Load re-reads it.
type Store struct {
	path string

	mu    sync.RWMutex
	user  *entity.User
	token string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the session file. A missing file is an empty session, not
// an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.set(nil, "")

		return nil
	}

	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}

	s.set(p.User, p.Token)

	return nil
}

func (s *Store) User() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return entity.User{}, false
	}

	return *s.user, true
}

// Token implements transport.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Save replaces the session and persists it.
func (s *Store) Save(user entity.User, token string) error {
	s.set(&user, token)

	return s.flush()
}

// UpdateUser refreshes the user record in place, keeping the token.
func (s *Store) UpdateUser(user entity.User) error {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return s.flush()
}

// Clear destroys the session in memory and on disk.
func (s *Store) Clear() error {
	s.set(nil, "")

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

func (s *Store) set(user *entity.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.token = token
}

// flush writes the session atomically: temp file in the same directory,
// then rename.
func (s *Store) flush() error {
	s.mu.RLock()
	p := persisted{User: s.user, Token: s.token}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return fmt.Errorf("chmod session file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("write session file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}
