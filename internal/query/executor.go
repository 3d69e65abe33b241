// Package query turns single resolver invocations into record sets.
package query

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/output"
	"github.com/tbckr/dnsdumper/internal/ratelimit"
	"github.com/tbckr/dnsdumper/internal/record"
	"github.com/tbckr/dnsdumper/internal/resolver"
)

const (
	// DefaultTimeout bounds each short-form query.
	DefaultTimeout = 5 * time.Second
	// DefaultDetailTimeout bounds the full-output SOA/NS/MX query.
	DefaultDetailTimeout = 10 * time.Second
)

// Options configures an Executor. Zero values fall back to the defaults.
type Options struct {
	Server        string
	Timeout       time.Duration
	DetailTimeout time.Duration
	Limiter       *ratelimit.Limiter
}

// Executor issues one resolver call per target. It is safe for concurrent use.
type Executor struct {
	runner resolver.Runner
	opts   Options
	logger *slog.Logger
}

// NewExecutor creates an Executor around runner.
func NewExecutor(runner resolver.Runner, opts Options, logger *slog.Logger) *Executor {
	if opts.Server == "" {
		opts.Server = resolver.DefaultServer
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.DetailTimeout <= 0 {
		opts.DetailTimeout = DefaultDetailTimeout
	}
	return &Executor{runner: runner, opts: opts, logger: logger}
}

// Available reports whether the resolver can run at all.
func (e *Executor) Available() error {
	return e.runner.Check()
}

// Query runs the short-form query for t. Timeouts, failures and empty output
// all yield nil; they are logged at debug level and never surfaced.
func (e *Executor) Query(ctx context.Context, t record.Target) *record.RecordSet {
	out, err := e.run(ctx, t, true, e.opts.Timeout)
	if err != nil {
		return nil
	}
	return record.NewRecordSet(out)
}

// QueryDetailed is Query plus, for SOA, NS and MX, a second full-output query
// whose text is attached as Detailed. A failed detail query keeps the primary set.
func (e *Executor) QueryDetailed(ctx context.Context, t record.Target) *record.RecordSet {
	rs := e.Query(ctx, t)
	if rs == nil || !t.Type.HasDetail() {
		return rs
	}
	out, err := e.run(ctx, t, false, e.opts.DetailTimeout)
	if err != nil {
		return rs
	}
	if detailed := strings.TrimRight(output.StripANSI(out), "\n"); detailed != "" {
		rs.Detailed = detailed
	}
	return rs
}

func (e *Executor) run(ctx context.Context, t record.Target, short bool, timeout time.Duration) (string, error) {
	if err := e.opts.Limiter.Wait(ctx); err != nil {
		return "", err
	}
	out, err := e.runner.Run(ctx, resolver.Request{
		Name:    t.Name,
		Type:    t.Type,
		Server:  e.opts.Server,
		Short:   short,
		Timeout: timeout,
	})
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrQueryTimeout):
		e.logger.Debug("query timed out", "name", t.Name, "type", t.Type.String(), "short", short)
	default:
		e.logger.Debug("query failed", "name", t.Name, "type", t.Type.String(), "short", short, "error", err)
	}
	return out, err
}
