// Package testutil provides shared test helpers: a func-field resolver mock and
// a discarding logger.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/tbckr/dnsdumper/internal/resolver"
)

// MockRunner implements resolver.Runner for testing.
// Each field is a function so tests can set only the behaviour they need;
// unset functions succeed with empty output. Calls are recorded.
type MockRunner struct {
	CheckFn func() error
	RunFn   func(ctx context.Context, req resolver.Request) (string, error)

	mu    sync.Mutex
	calls []resolver.Request
}

var _ resolver.Runner = (*MockRunner)(nil)

// Check implements resolver.Runner.
func (m *MockRunner) Check() error {
	if m.CheckFn != nil {
		return m.CheckFn()
	}
	return nil
}

// Run implements resolver.Runner.
func (m *MockRunner) Run(ctx context.Context, req resolver.Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.RunFn != nil {
		return m.RunFn(ctx, req)
	}
	return "", nil
}

// Calls returns a copy of every request seen so far.
func (m *MockRunner) Calls() []resolver.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]resolver.Request(nil), m.calls...)
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
