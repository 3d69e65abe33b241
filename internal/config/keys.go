package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tbckr/dnsdumper/internal/output"
)

type keyKind int

const (
	kindBool keyKind = iota
	kindPositiveInt
	kindFormat
	kindDuration
	kindRate
	kindString
)

var keys = map[string]keyKind{
	"verbose":        kindBool,
	"output":         kindFormat,
	"concurrency":    kindPositiveInt,
	"batch_size":     kindPositiveInt,
	"resolver":       kindString,
	"server":         kindString,
	"timeout":        kindDuration,
	"detail_timeout": kindDuration,
	"rate_limit":     kindRate,
	"skip_rfc":       kindBool,
}

// NormalizeKey converts a flag spelling ("batch-size") to its config key
// ("batch_size").
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

// ValidKeys returns every settable config key, sorted.
func ValidKeys() []string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// ValidateKey returns ErrUnknownKey unless key (or its flag spelling) is known.
func ValidateKey(key string) error {
	if _, ok := keys[NormalizeKey(key)]; !ok {
		return fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(ValidKeys(), ", "))
	}
	return nil
}

// ParseValue converts a string from the command line into the typed value
// written to the config file for key.
func ParseValue(key, value string) (any, error) {
	kind, ok := keys[NormalizeKey(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: expected true or false", value, key)
		}
		return b, nil
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid value %q for %s: expected a positive integer", value, key)
		}
		return n, nil
	case kindFormat:
		if !output.Format(value).Valid() {
			return nil, fmt.Errorf("invalid value %q for %s: must be one of %s", value, key, formatList())
		}
		return value, nil
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid value %q for %s: expected a positive duration such as 5s", value, key)
		}
		return d.String(), nil
	case kindRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("invalid value %q for %s: expected a non-negative number", value, key)
		}
		return f, nil
	default:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("invalid value for %s: must not be empty", key)
		}
		return value, nil
	}
}

// KeyCompletions returns value completion candidates for key.
func KeyCompletions(key string) []string {
	switch keys[NormalizeKey(key)] {
	case kindBool:
		return []string{"true", "false"}
	case kindFormat:
		return formatNames()
	default:
		return nil
	}
}

// Value returns the effective value of key in c as a string.
func (c *Config) Value(key string) (string, error) {
	switch NormalizeKey(key) {
	case "verbose":
		return strconv.FormatBool(c.Verbose), nil
	case "output":
		return c.Output, nil
	case "concurrency":
		return strconv.Itoa(c.Concurrency), nil
	case "batch_size":
		return strconv.Itoa(c.BatchSize), nil
	case "resolver":
		return c.Resolver, nil
	case "server":
		return c.Server, nil
	case "timeout":
		return c.Timeout.String(), nil
	case "detail_timeout":
		return c.DetailTimeout.String(), nil
	case "rate_limit":
		return strconv.FormatFloat(c.RateLimit, 'g', -1, 64), nil
	case "skip_rfc":
		return strconv.FormatBool(c.SkipRFC), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

func formatNames() []string {
	names := make([]string, len(output.Formats))
	for i, f := range output.Formats {
		names[i] = string(f)
	}
	return names
}
