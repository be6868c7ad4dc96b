// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package launcher

import (
	"fmt"
	"os"
	"strconv"

	"github.com/crosbymichael/crun/pkg/sylog"
)

// ExecOptions accumulates engine configuration for an exec request from
// passed functional options.
type ExecOptions struct {
	// Detach starts the process without attaching to it, the engine
	// returns as soon as the process is running.
	Detach bool
	// ConsoleSocket is the path to a unix socket that will receive the
	// master end of the tty allocated for the process.
	ConsoleSocket string
	// PidFile is where the engine writes the PID of the started process.
	PidFile string
	// PreserveFDs is the number of additional file descriptors beyond
	// stdio passed through to the process, inherited from descriptor 3.
	PreserveFDs int
}

// ExecOption sets an option on an ExecOptions struct.
type ExecOption func(eo *ExecOptions) error

// OptDetach sets the process to run detached in the background.
func OptDetach(b bool) ExecOption {
	return func(eo *ExecOptions) error {
		eo.Detach = b
		return nil
	}
}

// OptConsoleSocket sets the socket receiving the master end of the tty.
func OptConsoleSocket(path string) ExecOption {
	return func(eo *ExecOptions) error {
		eo.ConsoleSocket = path
		return nil
	}
}

// OptPidFile sets the file the process PID is written to.
func OptPidFile(path string) ExecOption {
	return func(eo *ExecOptions) error {
		eo.PidFile = path
		return nil
	}
}

// OptPreserveFDs sets the number of additional descriptors to pass through.
func OptPreserveFDs(n int) ExecOption {
	return func(eo *ExecOptions) error {
		if n < 0 {
			return fmt.Errorf("preserved descriptor count cannot be negative: %d", n)
		}
		eo.PreserveFDs = n
		return nil
	}
}

// NewExecOptions applies the given options and folds in any descriptors
// advertised through socket activation. The effective preserved count is
// always the sum of the explicit value and LISTEN_FDS, never one or the
// other exclusively.
func NewExecOptions(opts ...ExecOption) (ExecOptions, error) {
	eo := ExecOptions{}
	for _, opt := range opts {
		if err := opt(&eo); err != nil {
			return eo, fmt.Errorf("while initializing exec options: %w", err)
		}
	}
	eo.PreserveFDs += listenFDs()
	return eo, nil
}

// listenFDs returns the number of descriptors advertised by a socket
// activation supervisor. LISTEN_PID is not checked and the variables are
// left in place: the descriptors are destined for the container process,
// not consumed here.
func listenFDs() int {
	v, ok := os.LookupEnv("LISTEN_FDS")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		sylog.Debugf("Ignoring unparsable LISTEN_FDS value %q", v)
		return 0
	}
	return n
}
