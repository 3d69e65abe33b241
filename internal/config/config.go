// Package config loads dnsdumper settings from defaults, the YAML config file,
// DNSDUMPER_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tbckr/dnsdumper/internal/appdir"
	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/output"
	"github.com/tbckr/dnsdumper/internal/query"
	"github.com/tbckr/dnsdumper/internal/resolver"
	"github.com/tbckr/dnsdumper/internal/scan"
)

// EnvPrefix prefixes environment variable overrides, e.g. DNSDUMPER_SERVER.
const EnvPrefix = "DNSDUMPER"

// ErrUnknownKey is returned for config keys dnsdumper does not know.
var ErrUnknownKey = errors.New("unknown config key")

// Config is the fully resolved runtime configuration.
type Config struct {
	ConfigFile    string
	Verbose       bool
	Output        string
	Concurrency   int
	BatchSize     int
	Resolver      string
	Server        string
	Timeout       time.Duration
	DetailTimeout time.Duration
	RateLimit     float64
	SkipRFC       bool
}

// Validate rejects settings the scanner cannot run with.
func (c *Config) Validate() error {
	switch {
	case !output.Format(c.Output).Valid():
		return fmt.Errorf("%w: invalid output format %q: must be one of %s", apperr.ErrInvalidInput, c.Output, formatList())
	case c.Concurrency < 1:
		return fmt.Errorf("%w: --concurrency must be at least 1, got %d", apperr.ErrInvalidInput, c.Concurrency)
	case c.BatchSize < 1:
		return fmt.Errorf("%w: --batch-size must be at least 1, got %d", apperr.ErrInvalidInput, c.BatchSize)
	case c.Timeout <= 0 || c.DetailTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", apperr.ErrInvalidInput)
	case c.RateLimit < 0:
		return fmt.Errorf("%w: --rate-limit must not be negative, got %g", apperr.ErrInvalidInput, c.RateLimit)
	case strings.TrimSpace(c.Resolver) == "":
		return fmt.Errorf("%w: --resolver must not be empty", apperr.ErrInvalidInput)
	case strings.TrimSpace(c.Server) == "":
		return fmt.Errorf("%w: --server must not be empty", apperr.ErrInvalidInput)
	}
	return nil
}

// RegisterFlags registers the global persistent flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default: $XDG_CONFIG_HOME/dnsdumper/config.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging (debug level)")
	flags.StringP("output", "o", string(output.FormatText), "output format: "+formatList())
	flags.IntP("concurrency", "c", scan.DefaultConcurrency, "number of queries in flight at once")
	flags.Int("batch-size", scan.DefaultBatchSize, "number of subdomain queries per batch")
	flags.String("resolver", resolver.DefaultBinary, "resolver program to execute")
	flags.String("server", resolver.DefaultServer, "DNS server the resolver queries")
	flags.Duration("timeout", query.DefaultTimeout, "timeout per query")
	flags.Duration("detail-timeout", query.DefaultDetailTimeout, "timeout for detailed SOA/NS/MX queries")
	flags.Float64("rate-limit", 0, "maximum queries per second (0 = unlimited)")
	flags.Bool("skip-rfc", false, "do not probe RFC service names (autodiscover, mta-sts, ...)")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	dir, err := appdir.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the configuration from flags, environment and config file.
// The config file is created empty (0600) if it does not exist.
func Load(flags *pflag.FlagSet) (*Config, error) {
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	if err := appdir.EnsureFile(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range ValidKeys() {
		if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", f.Name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return &Config{
		ConfigFile:    path,
		Verbose:       v.GetBool("verbose"),
		Output:        v.GetString("output"),
		Concurrency:   v.GetInt("concurrency"),
		BatchSize:     v.GetInt("batch_size"),
		Resolver:      v.GetString("resolver"),
		Server:        v.GetString("server"),
		Timeout:       v.GetDuration("timeout"),
		DetailTimeout: v.GetDuration("detail_timeout"),
		RateLimit:     v.GetFloat64("rate_limit"),
		SkipRFC:       v.GetBool("skip_rfc"),
	}, nil
}

func formatList() string {
	return strings.Join(formatNames(), ", ")
}
