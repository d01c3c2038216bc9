package percentf

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// patternFileExt is the extension of pattern files on disk.
const patternFileExt = ".yaml"

// FilesystemPatternStore persists patterns as YAML files in a directory, one
// file per pattern named <name>.yaml. Pattern names must not contain path
// separators or traversal sequences.
type FilesystemPatternStore struct {
	dir    string
	mu     sync.Mutex
	closed bool
}

// NewFilesystemPatternStore creates a filesystem store rooted at dir,
// creating the directory if needed.
func NewFilesystemPatternStore(dir string) (*FilesystemPatternStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, NewStoreError(ErrMsgStoreFailure, err)
	}
	return &FilesystemPatternStore{dir: dir}, nil
}

// safePatternName rejects names that could escape the store directory.
func safePatternName(name string) error {
	if name == "" ||
		strings.ContainsAny(name, `/\`) ||
		strings.Contains(name, "..") ||
		strings.HasPrefix(name, ".") {
		return NewInvalidPatternError(ErrMsgPatternNameUnsafe, name)
	}
	return nil
}

func (s *FilesystemPatternStore) path(name string) string {
	return filepath.Join(s.dir, name+patternFileExt)
}

// Get retrieves a pattern by name.
func (s *FilesystemPatternStore) Get(ctx context.Context, name string) (*Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := safePatternName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	return s.readLocked(name)
}

// readLocked loads and decodes a pattern file. Callers hold the mutex.
func (s *FilesystemPatternStore) readLocked(name string) (*Pattern, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewPatternNotFoundError(name)
		}
		return nil, NewStoreError(ErrMsgStoreFailure, err)
	}

	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, NewStoreError(ErrMsgStoreFailure, err)
	}
	return &p, nil
}

// Save stores a pattern, overwriting any existing file of the same name.
func (s *FilesystemPatternStore) Save(ctx context.Context, p *Pattern) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePattern(p); err != nil {
		return err
	}
	if err := safePatternName(p.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	now := time.Now().UTC()
	if existing, err := s.readLocked(p.Name); err == nil {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := yaml.Marshal(p)
	if err != nil {
		return NewStoreError(ErrMsgStoreFailure, err)
	}
	if err := os.WriteFile(s.path(p.Name), data, 0o644); err != nil {
		return NewStoreError(ErrMsgStoreFailure, err)
	}
	return nil
}

// List returns all stored pattern names in sorted order.
func (s *FilesystemPatternStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, NewStoreError(ErrMsgStoreFailure, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), patternFileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), patternFileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a pattern file by name.
func (s *FilesystemPatternStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := safePatternName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return NewPatternNotFoundError(name)
		}
		return NewStoreError(ErrMsgStoreFailure, err)
	}
	return nil
}

// Close marks the store closed.
func (s *FilesystemPatternStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
