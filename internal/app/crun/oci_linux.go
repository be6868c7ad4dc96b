// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package crun

import (
	"github.com/crosbymichael/crun/internal/pkg/runtime/launcher"
	"github.com/crosbymichael/crun/internal/pkg/runtime/launcher/oci"
	"github.com/crosbymichael/crun/pkg/util/crunconf"
)

// ExecArgs contains CLI arguments for an exec request.
type ExecArgs struct {
	// ProcessFile is a process.json to load instead of building a
	// descriptor from the remaining fields.
	ProcessFile   string
	Cwd           string
	Terminal      bool
	// User is the UID[:GID] override, nil when the flag was not given.
	User          *string
	Env           []string
	Capabilities  []string
	Detach        bool
	ConsoleSocket string
	PidFile       string
	PreserveFDs   int
}

// Exec executes a command in a running container and returns its exit
// status. cmdArgs is ignored when args.ProcessFile is set, the descriptor
// then comes from the file and the engine parses it.
func Exec(containerID string, cmdArgs []string, args *ExecArgs) (int, error) {
	eo, err := launcher.NewExecOptions(
		launcher.OptDetach(args.Detach),
		launcher.OptConsoleSocket(args.ConsoleSocket),
		launcher.OptPidFile(args.PidFile),
		launcher.OptPreserveFDs(args.PreserveFDs),
	)
	if err != nil {
		return -1, err
	}

	ep := launcher.ExecParams{
		ContainerID: containerID,
		ProcessFile: args.ProcessFile,
	}
	if args.ProcessFile == "" {
		process, err := oci.NewExecProcess(oci.ProcessArgs{
			Args:         cmdArgs,
			Cwd:          args.Cwd,
			Terminal:     args.Terminal,
			Env:          args.Env,
			User:         args.User,
			Capabilities: args.Capabilities,
		})
		if err != nil {
			return -1, err
		}
		ep.Process = process
	}

	return newLauncher().Exec(ep, eo)
}

// State queries the state of a container.
func State(containerID string) (int, error) {
	return newLauncher().State(containerID)
}

// Kill sends a signal to the container process.
func Kill(containerID, killSignal string) (int, error) {
	return newLauncher().Kill(containerID, killSignal)
}

func newLauncher() *oci.Launcher {
	systemdCgroups := false
	if cfg := crunconf.GetCurrentConfig(); cfg != nil {
		systemdCgroups = cfg.SystemdCgroups
	}
	return oci.NewLauncher("", systemdCgroups)
}
