// Package history provides launch history persistence as a YAML file.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/runoshun/spawn/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements domain.HistoryRepository.
var _ domain.HistoryRepository = (*Store)(nil)

const fileVersion = 1

// historyFile is the on-disk layout of history.yaml.
type historyFile struct {
	Records []domain.LaunchRecord `yaml:"records"`
	Version int                   `yaml:"version"`
}

// Store implements HistoryRepository for file-based persistence.
// Writers in separate processes are serialized with a lock file next to
// the history file.
type Store struct {
	filePath string
	lockPath string
	mu       sync.Mutex
}

// NewStore creates a history store under stateDir.
func NewStore(stateDir string) *Store {
	path := domain.HistoryFilePath(stateDir)
	return &Store{
		filePath: path,
		lockPath: path + ".lock",
	}
}

// Path returns the history file path.
func (s *Store) Path() string {
	return s.filePath
}

// List returns all records, newest first.
// A missing file yields an empty list.
func (s *Store) List() ([]domain.LaunchRecord, error) {
	var records []domain.LaunchRecord
	err := s.withLock(false, func() error {
		file, err := s.load()
		if err != nil {
			return err
		}
		records = file.Records
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Append prepends rec and trims the file to at most limit records.
// A corrupted file is replaced rather than blocking new launches.
func (s *Store) Append(rec domain.LaunchRecord, limit int) error {
	return s.withLock(true, func() error {
		file, err := s.load()
		if err != nil {
			if !errors.Is(err, domain.ErrHistoryCorrupted) {
				return err
			}
			file = &historyFile{Version: fileVersion}
		}

		records := make([]domain.LaunchRecord, 0, len(file.Records)+1)
		records = append(records, rec)
		records = append(records, file.Records...)
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}
		file.Records = records

		return s.save(file)
	})
}

// Clear removes the history file.
func (s *Store) Clear() error {
	return s.withLock(true, func() error {
		if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	})
}

// withLock runs fn holding the in-process mutex and the lock file,
// exclusively when exclusive is set.
func (s *Store) withLock(exclusive bool, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure directory exists with proper permissions (0700)
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer func() { _ = lock.Close() }()

	if err := lockFile(lock, exclusive); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer unlockFile(lock)

	return fn()
}

func (s *Store) load() (*historyFile, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &historyFile{
				Version: fileVersion,
				Records: []domain.LaunchRecord{},
			}, nil
		}
		return nil, err
	}

	var file historyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.ErrHistoryCorrupted
	}
	if file.Records == nil {
		file.Records = []domain.LaunchRecord{}
	}
	return &file, nil
}

func (s *Store) save(file *historyFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return writeAtomic(s.filePath, data, 0o600)
}

// writeAtomic writes content to a unique sibling temp file and renames it
// over path, so readers never see a partial file.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	name := f.Name()
	cleanup := func() { _ = os.Remove(name) }

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(name, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
