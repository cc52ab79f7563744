package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// User is the server's public view of an account.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Skills      string `json:"skills"`
	CareerGoals string `json:"careerGoals"`
}

// Session is a logged-in user plus the bearer token that proves it.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// SessionStore persists a session between processes.
type SessionStore interface {
	// Load returns the stored session, or nil when none is stored.
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileSessionStore keeps the session as a JSON file. A file that cannot be
// parsed is treated as absent and removed, so a corrupt session never wedges
// the client.
type FileSessionStore struct {
	Path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{Path: path}
}

func (s *FileSessionStore) Load() (*Session, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil || session.Token == "" {
		_ = os.Remove(s.Path)
		return nil, nil
	}
	return &session, nil
}

func (s *FileSessionStore) Save(session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session store: %w", err)
		}
	}
	// Tokens are credentials, keep the file owner-only.
	if err := os.WriteFile(s.Path, raw, 0o600); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

func (s *FileSessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}
