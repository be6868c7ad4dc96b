// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package launcher holds the parameters and options crossing from the CLI
// layer into the OCI engine. A launcher joins an already-running container
// and executes an additional process inside it, via an external OCI
// runtime. The engine owns namespace entry, cgroup attachment, pty
// allocation and state lookup; only the request data is defined here.
package launcher

import (
	"github.com/opencontainers/runtime-spec/specs-go"
)

// ExecParams specifies the process to execute in a container, built once
// from parsed CLI input and not mutated afterwards.
type ExecParams struct {
	// ContainerID names the target container. It is opaque at this layer,
	// the engine owns lookup and state.
	ContainerID string
	// Process is the fully-populated OCI process descriptor, or nil when
	// ProcessFile is set.
	Process *specs.Process
	// ProcessFile is the path to an OCI process.json to be loaded by the
	// engine, mutually exclusive with Process.
	ProcessFile string
}

// Launcher is responsible for executing a process in a running container.
// Exactly one of ep.Process / ep.ProcessFile is consulted. The returned
// int is the exit status of the executed process, valid when err is nil.
type Launcher interface {
	Exec(ep ExecParams, eo ExecOptions) (int, error)
}
