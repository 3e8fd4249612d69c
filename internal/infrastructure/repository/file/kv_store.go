// Package file persists key/value entries as one JSON document per key under
// a data directory, the way a browser keeps localStorage per origin.
package file

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
)

const fileExt = ".json"

type KVStore struct {
	dir string
	mu  sync.Mutex
}

// NewKVStore expands a leading ~/ and creates dir if needed.
func NewKVStore(dir string) (*KVStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("storage dir is required")
	}
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, crerr.Wrap(err, "resolve home directory")
		}
		dir = filepath.Join(home, dir[2:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create storage dir %s", dir)
	}
	return &KVStore{dir: dir}, nil
}

func (s *KVStore) Dir() string {
	return s.dir
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, crerr.Wrapf(err, "read %s", key)
	}
	return data, true, nil
}

// Put replaces the value atomically: readers see either the old or the new
// document, never a partial write.
func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", key)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return crerr.Wrapf(err, "write %s", key)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close temp file for %s", key)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return crerr.Wrapf(err, "replace %s", key)
	}
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return crerr.Wrapf(err, "delete %s", key)
	}
	return nil
}

func (s *KVStore) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", kv.ErrEmptyKey
	}
	return filepath.Join(s.dir, url.QueryEscape(key)+fileExt), nil
}
