// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package session binds a calculator Machine to the views that drive it.
// A Session owns one Machine for the lifetime of a view, accepts button
// presses and key names from any number of input sources, serializes them,
// and publishes a Snapshot after every event.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/abacus/internal/keymap"
	"github.com/mesh-intelligence/abacus/internal/machine"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// Source delivers key names to a subscriber until the returned function is
// called.
type Source interface {
	Subscribe(fn func(key string)) (unsubscribe func())
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers fn to receive the Snapshot produced by every event.
// fn runs while the session lock is held and must not call back into the
// Session.
func WithObserver(fn func(types.Snapshot)) Option {
	return func(s *Session) {
		s.observers = append(s.observers, fn)
	}
}

// Session serializes input for one calculator.
type Session struct {
	mu        sync.Mutex
	id        string
	machine   *machine.Machine
	observers []func(types.Snapshot)
	logger    *slog.Logger
}

// New creates a Session in the initial state.
func New(logger *slog.Logger, opts ...Option) *Session {
	id := generateUUID()
	logger = logger.With("session", id)
	s := &Session{
		id:      id,
		machine: machine.New(logger),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// generateUUID generates a UUID v7 session identifier.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string {
	return s.id
}

// Press applies tok and returns the new Snapshot.
func (s *Session) Press(tok types.Token) types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressLocked(tok)
}

// Key applies the token bound to key. It returns false, without touching
// the state, when key is unbound.
func (s *Session) Key(key string) bool {
	tok, ok := keymap.Lookup(key)
	if !ok {
		return false
	}
	s.Press(tok)
	return true
}

// PressAll applies toks in order under a single lock, so no other source can
// interleave, and returns the final Snapshot.
func (s *Session) PressAll(toks []types.Token) types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.machine.Snapshot()
	for _, tok := range toks {
		snap = s.pressLocked(tok)
	}
	return snap
}

// Snapshot returns the current Snapshot without applying input.
func (s *Session) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Snapshot()
}

// State returns a copy of the underlying calculator state.
func (s *Session) State() types.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

func (s *Session) pressLocked(tok types.Token) types.Snapshot {
	snap := s.machine.Press(tok)
	for _, fn := range s.observers {
		fn(snap)
	}
	return snap
}

// Attach subscribes the session to src and returns the function that
// unsubscribes it. Calling the returned function more than once is safe.
func (s *Session) Attach(src Source) (detach func()) {
	unsubscribe := src.Subscribe(func(key string) {
		s.Key(key)
	})
	s.logger.Debug("attached input source")

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			s.logger.Debug("detached input source")
		})
	}
}

// Run applies key names from keys until ctx is done or keys is closed.
// It returns ctx.Err() on cancellation and nil when keys is closed.
func (s *Session) Run(ctx context.Context, keys <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			if !s.Key(key) {
				s.logger.Debug("unbound key", "key", key)
			}
		}
	}
}
