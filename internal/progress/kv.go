package progress

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// KV is the synchronous key-value boundary the progress store persists
// through. One serialized mapping lives under a single fixed key.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is a mutex-guarded in-process KV, used in tests and as a
// best-effort fallback.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string]string{}}
}

func (s *MemoryKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// FileKV stores each key as a file under a base directory.
type FileKV struct{ base string }

func NewFileKV(base string) (*FileKV, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{base: base}, nil
}

func (s *FileKV) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("empty key")
	}
	buf, err := os.ReadFile(filepath.Join(s.base, filepath.Clean(key)+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(buf), true, nil
}

func (s *FileKV) Set(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	dst := filepath.Join(s.base, filepath.Clean(key)+".json")
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(value), 0o644)
}
