package session

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

// Namespace is a flat key-value namespace holding strings and booleans.
// Reads never fail: a missing or unreadable key is reported as absent.
// Writes are visible to the next read once they return.
type Namespace interface {
	String(key string) (string, bool)
	Bool(key string, def bool) bool
	Set(key string, value any)
	SetAll(values map[string]any)
	Remove(keys ...string)
	Clear()
}

// File is a Namespace persisted as a single TOML document. Every write
// rewrites the document through a temporary file and a rename, so a reader
// never observes a half-written file.
type File struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// OpenFile returns a File namespace at path, creating parent directories.
// The document itself is created on first write.
func OpenFile(path string, logger *slog.Logger) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("session: create %s: %w", filepath.Dir(path), err)
	}
	return &File{path: path, logger: logger}, nil
}

func (f *File) load() map[string]any {
	values := make(map[string]any)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Error("Failed to read settings file", "path", f.path, "error", err)
		}
		return values
	}

	if _, err := toml.Decode(string(data), &values); err != nil {
		f.logger.Error("Settings file is corrupt, using defaults", "path", f.path, "error", err)
		return make(map[string]any)
	}
	return values
}

func (f *File) save(values map[string]any) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(values); err != nil {
		f.logger.Error("Failed to encode settings", "path", f.path, "error", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		f.logger.Error("Failed to create temporary settings file", "path", f.path, "error", err)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		f.logger.Error("Failed to write settings", "path", f.path, "error", err)
		return
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		f.logger.Error("Failed to sync settings", "path", f.path, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		f.logger.Error("Failed to close settings", "path", f.path, "error", err)
		return
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		f.logger.Error("Failed to replace settings file", "path", f.path, "error", err)
	}
}

func (f *File) String(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.load()[key].(string)
	return v, ok
}

func (f *File) Bool(key string, def bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.load()[key].(bool); ok {
		return v
	}
	return def
}

func (f *File) Set(key string, value any) {
	f.SetAll(map[string]any{key: value})
}

func (f *File) SetAll(values map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.load()
	for k, v := range values {
		current[k] = v
	}
	f.save(current)
}

func (f *File) Remove(keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.load()
	for _, k := range keys {
		delete(current, k)
	}
	f.save(current)
}

// Clear deletes the backing document.
func (f *File) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.logger.Error("Failed to remove settings file", "path", f.path, "error", err)
	}
}

// Keys lists the keys currently stored, sorted.
func (f *File) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Memory is an in-process Namespace.
type Memory struct {
	mu     sync.Mutex
	values map[string]any
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]any)}
}

func (m *Memory) String(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key].(string)
	return v, ok
}

func (m *Memory) Bool(key string, def bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return def
}

func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) SetAll(values map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = v
	}
}

func (m *Memory) Remove(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]any)
}
