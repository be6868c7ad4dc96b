// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package oci drives an external OCI runtime to execute additional
// processes in running containers, and to query or signal them. The
// runtime owns namespace entry, cgroup attachment and the pty protocol;
// this package serializes the request and propagates the result.
package oci

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opencontainers/runtime-spec/specs-go"

	"github.com/crosbymichael/crun/internal/pkg/runtime/launcher"
	"github.com/crosbymichael/crun/pkg/util/crunconf"
)

// Launcher executes processes in running containers through the
// configured OCI runtime binary.
type Launcher struct {
	stateDir       string
	systemdCgroups bool
}

// NewLauncher returns a Launcher using the given container state
// directory, falling back to the configured or default one when empty.
func NewLauncher(stateDir string, systemdCgroups bool) *Launcher {
	if stateDir == "" {
		if cfg := crunconf.GetCurrentConfig(); cfg != nil && cfg.StateDir != "" {
			stateDir = cfg.StateDir
		} else {
			stateDir = crunconf.DefaultStateDir
		}
	}
	return &Launcher{
		stateDir:       stateDir,
		systemdCgroups: systemdCgroups,
	}
}

// Exec executes a process in a running container and returns its exit
// status. The descriptor (or descriptor file) in ep is treated as
// immutable from this point on, and the runtime is invoked exactly once.
func (l *Launcher) Exec(ep launcher.ExecParams, eo launcher.ExecOptions) (int, error) {
	if ep.ContainerID == "" {
		return -1, fmt.Errorf("container ID must be specified")
	}

	if ep.ProcessFile != "" {
		if ep.Process != nil {
			return -1, fmt.Errorf("process descriptor and process file are mutually exclusive")
		}
		return l.execProcessFile(ep.ContainerID, ep.ProcessFile, eo)
	}

	if ep.Process == nil {
		return -1, fmt.Errorf("no process descriptor specified")
	}

	pf, err := writeProcessFile(ep.Process)
	if err != nil {
		return -1, err
	}
	defer os.Remove(pf)

	return l.execProcessFile(ep.ContainerID, pf, eo)
}

// writeProcessFile serializes a process descriptor to a process.json the
// runtime can load, returning its path. The caller removes the file once
// the runtime has returned.
func writeProcessFile(process *specs.Process) (string, error) {
	f, err := os.CreateTemp("", "crun-process-*.json")
	if err != nil {
		return "", fmt.Errorf("while creating process file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(process); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("while writing process file: %w", err)
	}
	return f.Name(), nil
}
