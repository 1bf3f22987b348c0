// Package creds manages the small JSON credential document guarding the
// application. It holds a single hashed password; reads and writes replace
// the whole document.
package creds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
)

// Store reads and writes the credential document at a fixed path. Callers
// hold a Store handle; there is no package-level state.
type Store struct {
	path string
}

type document struct {
	Password string `json:"password"`
}

// NewStore returns a credential store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// load reads the document, initializing an empty-password default when the
// file is absent.
func (s *Store) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := document{}
		if err := s.save(doc); err != nil {
			return document{}, err
		}
		return doc, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("read credentials: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse credentials: %w", err)
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credentials directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// IsSet reports whether a password has been configured. A missing document is
// initialized with the empty-password default.
func (s *Store) IsSet() (bool, error) {
	doc, err := s.load()
	if err != nil {
		return false, err
	}
	return doc.Password != "", nil
}

// SetPassword hashes and stores a new password, replacing any previous one.
func (s *Store) SetPassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.save(document{Password: string(hash)})
}

// Verify reports whether the supplied password matches the stored hash.
// An unset password never verifies.
func (s *Store) Verify(password string) (bool, error) {
	doc, err := s.load()
	if err != nil {
		return false, err
	}
	if doc.Password == "" {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(doc.Password), []byte(password)) == nil, nil
}
