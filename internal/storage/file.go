package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/utils"
)

// FileStore keeps one file per key under a directory.
type FileStore struct {
	dir string
	ext string
}

// NewFileStore creates the directory if needed. ext defaults to DefaultFileExt.
func NewFileStore(dir, ext string) (*FileStore, error) {
	if ext == "" {
		ext = DefaultFileExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	return &FileStore{dir: dir, ext: ext}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, key)
	}
	return filepath.Join(s.dir, key+s.ext), nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgReadFailed, key, err)
	}
	return data, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(p, value); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgWriteFailed, key, err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s %q: %w", ErrMsgDeleteFailed, key, err)
	}
	return nil
}

func (s *FileStore) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPingFailed, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %s is not a directory", ErrMsgPingFailed, s.dir)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
