// internal/store/document.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/atelier-backend/internal/models"
)

// DocumentStore persists one JSON document per collection under a data
// directory. It keeps nothing in memory between calls: every Load reads the
// file again.
//
// Writes replace the whole file through a temp file and rename, so readers
// never observe a half-written document. Mutate serializes read-modify-write
// cycles per collection within this process; separate processes sharing the
// directory are not coordinated.
type DocumentStore struct {
	dataDir string

	mu    sync.Mutex
	locks map[models.Collection]*sync.Mutex
}

func NewDocumentStore(dataDir string) *DocumentStore {
	return &DocumentStore{
		dataDir: dataDir,
		locks:   make(map[models.Collection]*sync.Mutex),
	}
}

func (s *DocumentStore) DataDir() string {
	return s.dataDir
}

func (s *DocumentStore) Path(collection models.Collection) string {
	return filepath.Join(s.dataDir, collection.FileName())
}

// Exists reports whether the collection's file is present.
func (s *DocumentStore) Exists(collection models.Collection) bool {
	_, err := os.Stat(s.Path(collection))
	return err == nil
}

// Load decodes the collection's document into v. A missing file yields an
// error matching both ErrRead and fs.ErrNotExist.
func (s *DocumentStore) Load(collection models.Collection, v interface{}) error {
	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRead, collection, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: invalid JSON: %v", ErrRead, collection, err)
	}

	return nil
}

// Store overwrites the collection's document with v, indented by two spaces.
func (s *DocumentStore) Store(collection models.Collection, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, collection, err)
	}

	if err := s.writeFile(s.Path(collection), data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, collection, err)
	}

	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"bytes":      len(data),
	}).Debug("Document stored")

	return nil
}

// Mutate runs fn while holding the collection's lock. fn is expected to
// Load, modify and Store the same collection; the lock is released on every
// exit path, including panics.
func (s *DocumentStore) Mutate(collection models.Collection, fn func() error) error {
	lock := s.lockFor(collection)
	lock.Lock()
	defer lock.Unlock()

	return fn()
}

// Seed stores v only when the collection has no file yet. It reports
// whether a document was written.
func (s *DocumentStore) Seed(collection models.Collection, v interface{}) (bool, error) {
	var seeded bool
	err := s.Mutate(collection, func() error {
		if _, err := os.Stat(s.Path(collection)); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", ErrRead, collection, err)
		}

		seeded = true
		return s.Store(collection, v)
	})
	return seeded, err
}

func (s *DocumentStore) lockFor(collection models.Collection) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}
	return lock
}

func (s *DocumentStore) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
