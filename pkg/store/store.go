// Package store persists the calculator record.
//
// A Store moves the whole encoded record in one piece; it does not know the
// record layout. FileStore keeps it on disk, MemStore keeps it in memory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the name of the state file inside the data directory.
const FileName = "molkfreecalc.clc"

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("state not found")

// Store loads and saves an encoded calculator record.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStore keeps the record in a single file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the whole file.
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return data, nil
}

// Save overwrites the file, creating its directory if needed.
func (s *FileStore) Save(data []byte) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return nil
}

// MemStore keeps the record in memory.
type MemStore struct {
	data  []byte
	saved bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// NewMemStoreWith returns an in-memory store that already holds data.
func NewMemStoreWith(data string) *MemStore {
	return &MemStore{data: []byte(data), saved: true}
}

// Load returns a copy of the last saved record.
func (s *MemStore) Load() ([]byte, error) {
	if !s.saved {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

// Save replaces the stored record.
func (s *MemStore) Save(data []byte) error {
	s.data = append(s.data[:0], data...)
	s.saved = true
	return nil
}

// String returns the stored record as text.
func (s *MemStore) String() string {
	return string(s.data)
}

// DefaultPath returns the install-relative state location for the binary at
// exe: two directories up from the binary, then data/FileName.
func DefaultPath(exe string) string {
	return filepath.Join(filepath.Dir(exe), "..", "..", "data", FileName)
}
