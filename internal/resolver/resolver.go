package resolver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/record"
)

const (
	// DefaultBinary is the resolver executable looked up in PATH.
	DefaultBinary = "dig"
	// DefaultServer is the upstream resolver every query is sent to.
	DefaultServer = "8.8.8.8"
)

// waitDelay bounds how long Run waits for output pipes after the process was killed.
const waitDelay = 500 * time.Millisecond

// Request describes one resolver invocation.
type Request struct {
	Name    string
	Type    record.Type
	Server  string
	Short   bool
	Timeout time.Duration
}

// Args renders the dig command line for r. Every query is a single attempt.
func (r Request) Args() []string {
	args := []string{"@" + r.Server, r.Name, r.Type.String(), "+tries=1"}
	if r.Short {
		args = append(args, "+short")
	}
	return args
}

// Runner is the external resolver contract.
type Runner interface {
	// Check reports apperr.ErrResolverUnavailable when the resolver cannot run at all.
	Check() error
	// Run executes one query and returns its stdout.
	Run(ctx context.Context, req Request) (string, error)
}

// Dig runs queries by executing a dig-compatible binary.
type Dig struct {
	Binary string
}

var _ Runner = (*Dig)(nil)

// NewDig returns a Dig for binary, falling back to DefaultBinary when empty.
func NewDig(binary string) *Dig {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &Dig{Binary: binary}
}

// Check verifies that the binary can be found.
func (d *Dig) Check() error {
	if _, err := exec.LookPath(d.Binary); err != nil {
		return fmt.Errorf("%w: %q not found: install bind-utils or dnsutils: %w", apperr.ErrResolverUnavailable, d.Binary, err)
	}
	return nil
}

// Run executes the query, killing the process once req.Timeout elapses.
func (d *Dig) Run(ctx context.Context, req Request) (string, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.Binary, req.Args()...) //nolint:gosec // binary comes from the user's own config
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s %s after %s", apperr.ErrQueryTimeout, req.Name, req.Type, req.Timeout)
		}
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s %s: %w: %s", apperr.ErrQueryFailed, req.Name, req.Type, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
