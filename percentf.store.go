package percentf

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Pattern is a named, reusable format string with metadata.
type Pattern struct {
	// Name is the unique pattern name used for lookups.
	Name string `yaml:"name" json:"name"`

	// Format is the raw format string.
	Format string `yaml:"format" json:"format"`

	// Marker records the escape character the pattern was written for.
	// Advisory metadata; rendering uses the Formatter's configured marker.
	Marker string `yaml:"marker,omitempty" json:"marker,omitempty"`

	// Description is free-form documentation.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// PatternStore is the interface for pluggable pattern storage backends.
// Implementations must be safe for concurrent use.
type PatternStore interface {
	// Get retrieves a pattern by name. Returns a pattern-not-found error if
	// it doesn't exist.
	Get(ctx context.Context, name string) (*Pattern, error)

	// Save stores a pattern, overwriting any existing pattern of the same
	// name and updating its timestamps.
	Save(ctx context.Context, p *Pattern) error

	// List returns all stored pattern names in sorted order.
	List(ctx context.Context) ([]string, error)

	// Delete removes a pattern by name. Returns a pattern-not-found error if
	// it doesn't exist.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources. Operations after Close fail with a
	// store-closed error.
	Close() error
}

// validatePattern checks the fields required by every store.
func validatePattern(p *Pattern) error {
	if p == nil || p.Name == "" || p.Format == "" {
		name := ""
		if p != nil {
			name = p.Name
		}
		return NewInvalidPatternError(ErrMsgPatternInvalid, name)
	}
	return nil
}

// copyPattern returns a defensive copy.
func copyPattern(p *Pattern) *Pattern {
	cp := *p
	return &cp
}

// MemoryPatternStore is an in-memory PatternStore, primarily intended for
// testing and development. All data is lost when the process terminates.
type MemoryPatternStore struct {
	mu       sync.RWMutex
	patterns map[string]*Pattern
	closed   bool
}

// NewMemoryPatternStore creates a new in-memory pattern store.
func NewMemoryPatternStore() *MemoryPatternStore {
	return &MemoryPatternStore{
		patterns: make(map[string]*Pattern),
	}
}

// Get retrieves a pattern by name.
func (s *MemoryPatternStore) Get(ctx context.Context, name string) (*Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	p, ok := s.patterns[name]
	if !ok {
		return nil, NewPatternNotFoundError(name)
	}
	return copyPattern(p), nil
}

// Save stores a pattern, overwriting any existing pattern of the same name.
func (s *MemoryPatternStore) Save(ctx context.Context, p *Pattern) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePattern(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	now := time.Now().UTC()
	if existing, ok := s.patterns[p.Name]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.patterns[p.Name] = copyPattern(p)
	return nil
}

// List returns all stored pattern names in sorted order.
func (s *MemoryPatternStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a pattern by name.
func (s *MemoryPatternStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	if _, ok := s.patterns[name]; !ok {
		return NewPatternNotFoundError(name)
	}
	delete(s.patterns, name)
	return nil
}

// Close marks the store closed.
func (s *MemoryPatternStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.patterns = nil
	return nil
}
