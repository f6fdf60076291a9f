// Package session persists interactive calculator state between runs:
// the staged stack, the answer register and the input history.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes.
const schemaVersion uint16 = 1

// Payload is the persisted REPL state.
type Payload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Stack   []float64
	Ans     float64
	History []string
}

// Store reads and writes the session payload on disk.
type Store struct {
	dir string
}

// Open initializes a store at the standard cache location.
func Open(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// OpenAt initializes a store rooted at an explicit directory.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, "session.mp")
}

// Save serializes the payload atomically (temp file + rename).
func (s *Store) Save(p *Payload) error {
	if s == nil {
		return nil
	}
	p.Schema = schemaVersion

	f, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// После успешного Rename файла уже нет, ошибка здесь не важна.
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(p); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), s.path())
}

// Load reads the persisted payload. The bool is false when no usable
// session exists (missing file or stale schema).
func (s *Store) Load() (*Payload, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	f, err := os.Open(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var p Payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false, fmt.Errorf("failed to decode session: %w", err)
	}
	if p.Schema != schemaVersion {
		// Старый формат молча отбрасываем.
		return nil, false, nil
	}
	return &p, true, nil
}

// Drop removes any persisted session.
func (s *Store) Drop() error {
	if s == nil {
		return nil
	}
	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
