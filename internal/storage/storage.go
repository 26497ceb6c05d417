package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt возвращается, когда сохранённые данные не удаётся разобрать
var ErrCorrupt = errors.New("corrupt stored data")

// KV простое key-value хранилище, аналог localStorage браузера.
// FileKV реализует этот интерфейс.
type KV interface {
	// Get возвращает значение ключа; ok=false, если ключ не записан.
	Get(key string) (value []byte, ok bool, err error)

	// Set записывает значение ключа, затирая прежнее.
	Set(key string, value []byte) error
}

// FileKV хранит каждый ключ в отдельном JSON-файле внутри каталога
type FileKV struct {
	dir string
}

func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

var _ KV = (*FileKV)(nil)

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
