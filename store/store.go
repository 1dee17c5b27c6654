// Package store holds the active publish configuration for process-wide
// read access. The expected lifecycle is load-once at startup, but the
// store tolerates reloads and concurrent readers.
package store

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mzaliznyak/blogpub/publish"
)

var (
	// ErrNotLoaded indicates no configuration has been stored yet.
	ErrNotLoaded = errors.New("publish configuration not loaded")
	// ErrHandlerNotFound indicates the requested handler is not configured.
	ErrHandlerNotFound = errors.New("handler not configured")
)

// Store keeps the active configuration in-memory and guards access with a
// RWMutex. Readers receive defensive deep copies.
type Store struct {
	mu     sync.RWMutex
	cfg    *publish.Config
	logger *zap.Logger
}

// New creates an empty store. A nil logger disables reload logging.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Set validates the configuration and swaps it in as the active snapshot.
func (s *Store) Set(cfg publish.Config) error {
	if err := publish.Validate(cfg); err != nil {
		return err
	}

	snapshot := cfg.Clone()

	s.mu.Lock()
	s.cfg = &snapshot
	s.mu.Unlock()

	s.logger.Info("publish configuration updated",
		zap.String("service", snapshot.Service),
		zap.Int64("blog", snapshot.ServiceOptions.Blog),
		zap.Int("handlers", len(snapshot.Handlers)),
	)

	return nil
}

// Get returns a defensive copy of the active configuration.
func (s *Store) Get() (publish.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cfg == nil {
		return publish.Config{}, ErrNotLoaded
	}
	return s.cfg.Clone(), nil
}

// Handler returns a copy of the named handler from the active configuration.
func (s *Store) Handler(name string) (publish.Handler, error) {
	cfg, err := s.Get()
	if err != nil {
		return publish.Handler{}, err
	}

	handler, ok := cfg.Handler(name)
	if !ok {
		return publish.Handler{}, fmt.Errorf("%w: %s", ErrHandlerNotFound, name)
	}
	return handler, nil
}
