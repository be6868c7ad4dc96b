// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package crunconf parses the runtime configuration file. The file is
// optional, every directive has a working default.
package crunconf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultStateDir is where the OCI runtime keeps container state unless
// overridden by configuration or the --root flag.
const DefaultStateDir = "/run/crun"

// currentConfig corresponds to the current configuration, may
// be useful for packages requiring to share the same configuration.
var currentConfig *File

// SetCurrentConfig sets the provided configuration as the current
// configuration.
func SetCurrentConfig(config *File) {
	currentConfig = config
}

// GetCurrentConfig returns the current configuration if any.
func GetCurrentConfig() *File {
	return currentConfig
}

// File describes the crun.conf file options
type File struct {
	// StateDir is the root directory for container state.
	StateDir string `toml:"state_dir"`
	// Runtime is the OCI runtime binary joining the container, an
	// absolute path or a name resolved on PATH.
	Runtime string `toml:"runtime"`
	// SystemdCgroups selects the systemd cgroup manager of the runtime.
	SystemdCgroups bool `toml:"systemd_cgroups"`
	// LogLevel is the default verbosity, overridden by --debug / --quiet.
	LogLevel int `toml:"log_level"`
}

// Default returns a configuration holding the default values for
// every directive.
func Default() *File {
	return &File{
		StateDir: DefaultStateDir,
		Runtime:  "runc",
		LogLevel: 1,
	}
}

// Parse reads the configuration file at path and returns the resulting
// configuration. A missing file is not an error and yields the defaults.
func Parse(path string) (*File, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("while reading configuration file %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("while parsing configuration file %s: %w", path, err)
	}
	if c.StateDir == "" {
		c.StateDir = DefaultStateDir
	}
	if c.Runtime == "" {
		c.Runtime = "runc"
	}
	return c, nil
}
