package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/dtroode/fintrack-web/internal/model"
)

var bktSession = []byte("session")

var _ model.Storage = (*Storage)(nil)

// Storage binds the Storage port to a bbolt file owned by one local client.
type Storage struct {
	db        *bolt.DB
	closeFunc func() error
}

// DefaultPath returns the session file location inside the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "fintrack", "session.db"), nil
}

// Open opens or creates the session file at path.
func Open(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bktSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init session bucket: %w", err)
	}

	return &Storage{db: db, closeFunc: db.Close}, nil
}

// OpenTemp opens a throwaway session file that is removed on Close.
func OpenTemp() (*Storage, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("fintrack-%s.db", uuid.NewString()))
	s, err := Open(path)
	if err != nil {
		return nil, err
	}

	closeDB := s.closeFunc
	s.closeFunc = func() error {
		if err := closeDB(); err != nil {
			return err
		}
		return os.Remove(path)
	}
	return s, nil
}

// Close closes the session file.
func (s *Storage) Close() error {
	return s.closeFunc()
}

func (s *Storage) Get(_ context.Context, key string, dst any) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bktSession).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return false
	}

	return json.Unmarshal(raw, dst) == nil
}

func (s *Storage) Set(_ context.Context, key string, value any) (model.WriteResult, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return model.WriteDegraded, fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bktSession).Put([]byte(key), raw)
	})
	if err != nil {
		return model.WriteDegraded, fmt.Errorf("failed to write %s: %w", key, err)
	}
	return model.WriteApplied, nil
}

func (s *Storage) Delete(_ context.Context, key string) (model.WriteResult, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bktSession).Delete([]byte(key))
	})
	if err != nil {
		return model.WriteDegraded, fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return model.WriteApplied, nil
}
