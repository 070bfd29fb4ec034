// Package config manages missionfuel configuration and filesystem paths.
//
// Configuration is layered: built-in defaults, then the YAML file at
// ~/.missionfuel/config.yaml (or $MISSIONFUEL_ROOT/config.yaml), then
// MISSIONFUEL_* environment variables. Command-line flags are applied on top
// by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by missionfuel.
type Paths struct {
	// Root is the base directory for missionfuel data (default: ~/.missionfuel)
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for missionfuel.
// Paths can be overridden with environment variables:
// - MISSIONFUEL_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("MISSIONFUEL_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".missionfuel")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	if err := fsys.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
