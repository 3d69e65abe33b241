// Package cli provides the Cobra command tree and output wiring for dnsdumper.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tbckr/dnsdumper/internal/config"
	"github.com/tbckr/dnsdumper/internal/input"
	"github.com/tbckr/dnsdumper/internal/output"
	"github.com/tbckr/dnsdumper/internal/version"
)

// newRootCmd builds the top-level Cobra command for dnsdumper.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd() *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// Cobra only executes the innermost PersistentPreRunE in the command
	// chain, so subcommands must not define their own (completion excepted).
	var d deps

	cmd := &cobra.Command{
		Use:   "dnsdumper",
		Short: "Dump all DNS records of a domain and its common subdomains",
		Long: `dnsdumper collects the DNS records of a domain before a transfer or for
inventory. It queries every common record type for the domain itself, then
A, AAAA and CNAME for a built-in list of subdomains and RFC service names,
plus any names from a custom list.

Queries are executed by an external resolver (dig by default) against a
single upstream server, with bounded concurrency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := buildDeps(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	config.RegisterFlagCompletions(cmd)

	cmd.Version = version.Get().Version
	cmd.SetVersionTemplate("dnsdumper version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "dns", Title: "DNS Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newDumpCmd(&d),
		newGenerateCmd(&d),
		newConfigCmd(&d),
		newCompletionCmd(),
		newVersionCmd(&d),
	)

	return cmd
}

// Execute builds the root command and runs it with args.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps resolves config and logger.
func buildDeps(cmd *cobra.Command, stderr io.Writer) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &deps{cfg: cfg, logger: logger}, nil
}

// resolveInputs returns positional args, or reads non-empty lines from stdin when
// no args are provided. Returns an error if stdin is an interactive terminal with
// no args (i.e. the user forgot to pass an argument or pipe input).
func resolveInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	r := cmd.InOrStdin()
	if output.IsTerminal(r) {
		return nil, fmt.Errorf("no input: pass a domain or pipe domains on stdin")
	}
	lines, err := input.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no input: stdin was empty")
	}
	return lines, nil
}

// writeResult formats and writes a result to stdout.
func writeResult(stdout io.Writer, d *deps, result any) error {
	if err := output.Write(stdout, output.Format(d.cfg.Output), result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
