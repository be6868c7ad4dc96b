// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package bin provides access to external binaries
package bin

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/crosbymichael/crun/pkg/sylog"
	"github.com/crosbymichael/crun/pkg/util/crunconf"
)

// defaultPath is appended to PATH during lookups to ensure standard
// locations are searched. This is necessary as some distributions don't
// include sbin on user PATH etc.
const defaultPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

// FindBin returns the path to the named binary, or an error if it is not found.
func FindBin(name string) (path string, err error) {
	switch name {
	// distro provided OCI runtime, overridable in crun.conf
	case "crun", "runc":
		return findFromConfigOrPath(name)
	// basic system executables that we assume are always on PATH
	case "true", "sh":
		return findOnPath(name)
	default:
		return "", fmt.Errorf("executable name %q is not known to FindBin", name)
	}
}

// findOnPath performs a simple search on PATH for the named executable, returning its full path.
func findOnPath(name string) (path string, err error) {
	oldPath := os.Getenv("PATH")
	defer os.Setenv("PATH", oldPath)
	os.Setenv("PATH", oldPath+":"+defaultPath)

	path, err = exec.LookPath(name)
	if err == nil {
		sylog.Debugf("Found %q at %q", name, path)
	}
	return path, err
}

// findFromConfigOrPath retrieves the path to an executable from crun.conf,
// or searches PATH if not set there.
func findFromConfigOrPath(name string) (path string, err error) {
	cfg := crunconf.GetCurrentConfig()
	if cfg == nil {
		cfg = crunconf.Default()
	}

	if cfg.Runtime == "" || cfg.Runtime == name {
		return findOnPath(name)
	}

	sylog.Debugf("Using %q at %q (from crun.conf)", name, cfg.Runtime)

	// Use lookPath with the configured path to confirm it is accessible & executable
	return exec.LookPath(cfg.Runtime)
}
