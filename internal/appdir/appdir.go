// Package appdir locates and creates dnsdumper's per-user files.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the directory name used below the OS config directory.
const Name = "dnsdumper"

// ConfigDir returns the OS-specific config directory for dnsdumper.
// Linux: $XDG_CONFIG_HOME/dnsdumper  macOS: ~/Library/Application Support/dnsdumper
// Windows: %AppData%/dnsdumper
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, Name), nil
}

// EnsureFile creates path with 0600 permissions, and its parent directories
// with 0700, unless it already exists.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}

// WriteFile replaces path with data, keeping it private to the owner.
func WriteFile(path string, data []byte) error {
	if err := EnsureFile(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
