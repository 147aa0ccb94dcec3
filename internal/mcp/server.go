package mcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/session"
)

// MCPServer holds the shared state for the MCP tool handlers: the calculator
// engine, an optional session store, and an optional filesystem watcher that
// reloads the engine when another process rewrites the session file.
type MCPServer struct {
	mu      sync.RWMutex
	engine  *calc.Engine
	store   *session.Store
	watcher *session.Watcher
	cancel  context.CancelFunc // stops the watcher goroutine
	logger  *slog.Logger
}

// NewMCPServer creates a new MCPServer with a fresh engine and the given logger.
func NewMCPServer(logger *slog.Logger) *MCPServer {
	return &MCPServer{
		engine: calc.NewEngine(),
		logger: logger,
	}
}

// Engine returns the calculator engine. Callers must hold the server lock.
func (s *MCPServer) Engine() *calc.Engine {
	return s.engine
}

// OpenSession attaches a session file to the server. An existing file is
// loaded into the engine; when watch is set, a background watcher reloads the
// engine on external changes. Returns whether an existing snapshot was loaded.
func (s *MCPServer) OpenSession(ctx context.Context, path string, watch bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopWatcherLocked()
	s.store = session.NewStore(path)

	loaded := false
	snap, err := s.store.Load()
	switch {
	case err == nil:
		s.engine.Restore(snap)
		loaded = true
		s.logger.Info("session loaded", "path", path, "history", len(snap.History))
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("starting fresh session", "path", path)
	default:
		return false, fmt.Errorf("open session: %w", err)
	}

	if !watch {
		return loaded, nil
	}

	w, err := session.NewWatcher(path, 200*time.Millisecond, s.logger)
	if err != nil {
		s.logger.Warn("session watcher unavailable, external changes will not be picked up", "err", err)
		return loaded, nil
	}
	s.watcher = w

	watchCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	ch := make(chan struct{}, 4)
	go func() {
		if err := w.Run(watchCtx, ch); err != nil && watchCtx.Err() == nil {
			s.logger.Error("session watcher error", "err", err)
		}
	}()
	go func() {
		for range ch {
			s.reloadSession()
		}
	}()

	return loaded, nil
}

// SaveSession persists the engine state to the attached session store.
func (s *MCPServer) SaveSession() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return fmt.Errorf("no session open; call open_session first")
	}
	return s.store.Save(s.engine.Snapshot())
}

// SessionPath returns the attached session file path, or "" if none.
func (s *MCPServer) SessionPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return ""
	}
	return s.store.Path()
}

// reloadSession re-reads the session file after the watcher reports a change.
func (s *MCPServer) reloadSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return
	}
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Warn("session reload failed", "err", err)
		return
	}
	s.engine.Restore(snap)
	s.logger.Debug("session reloaded", "path", s.store.Path())
}

// stopWatcherLocked tears down any running watcher. Must hold s.mu.
func (s *MCPServer) stopWatcherLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
}

// Lock acquires the write lock on the server state.
func (s *MCPServer) Lock() { s.mu.Lock() }

// Unlock releases the write lock.
func (s *MCPServer) Unlock() { s.mu.Unlock() }

// RLock acquires a read lock on the server state.
func (s *MCPServer) RLock() { s.mu.RLock() }

// RUnlock releases the read lock.
func (s *MCPServer) RUnlock() { s.mu.RUnlock() }

// Close stops the watcher and releases resources.
func (s *MCPServer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopWatcherLocked()
}
