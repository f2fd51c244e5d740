// Package config loads the binding configuration and feeds it into the
// engine's registration surface. Per-entry problems are reported and
// skipped; a configuration with mistakes in it still produces a
// functional binding table from the rest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound reports that the configuration file does not exist. A
// missing file is an expected state, not a broken one; callers use it
// to pick the right severity.
var ErrNotFound = errors.New("config: file not found")

// Config is the on-disk TOML structure.
type Config struct {
	// Startup, Restart, and Shutdown are lifecycle command lists.
	Startup  []string `toml:"startup,omitempty"`
	Restart  []string `toml:"restart,omitempty"`
	Shutdown []string `toml:"shutdown,omitempty"`

	Keys    []KeyEntry    `toml:"key,omitempty"`
	Buttons []ButtonEntry `toml:"button,omitempty"`
	Menus   []MenuEntry   `toml:"menu,omitempty"`
}

// KeyEntry declares one key binding. Exactly one of Key and Keycode
// should be set; Key may contain a single '#' placeholder.
type KeyEntry struct {
	Action  string `toml:"action"`
	Mods    string `toml:"mods,omitempty"`
	Key     string `toml:"key,omitempty"`
	Keycode string `toml:"keycode,omitempty"`
	Command string `toml:"command,omitempty"`
}

// ButtonEntry declares one pointer button binding.
type ButtonEntry struct {
	Button  uint32 `toml:"button"`
	Mods    string `toml:"mods,omitempty"`
	Context string `toml:"context"`
	Action  string `toml:"action"`
	Command string `toml:"command,omitempty"`
}

// MenuEntry declares a root menu an action or button may reference.
type MenuEntry struct {
	Index int    `toml:"index"`
	Label string `toml:"label,omitempty"`
}

// DefaultPath returns the conventional configuration file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "keybind", "keybind.toml")
	}
	return filepath.Join(os.Getenv("HOME"), ".keybind.toml")
}

// Load reads and parses a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses TOML configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
