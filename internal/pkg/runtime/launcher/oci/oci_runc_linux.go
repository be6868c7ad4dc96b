// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package oci

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/crosbymichael/crun/internal/pkg/runtime/launcher"
	"github.com/crosbymichael/crun/internal/pkg/util/bin"
	"github.com/crosbymichael/crun/pkg/sylog"
)

// execProcessFile executes the process described by processFile in a
// running container and returns the process exit status.
func (l *Launcher) execProcessFile(containerID, processFile string, eo launcher.ExecOptions) (int, error) {
	return l.run(l.execArgs(containerID, processFile, eo), eo.PreserveFDs)
}

// execArgs builds the runtime argument list for an exec request.
func (l *Launcher) execArgs(containerID, processFile string, eo launcher.ExecOptions) []string {
	runcArgs := l.globalArgs()
	runcArgs = append(runcArgs, "exec", "--process", processFile)
	if eo.ConsoleSocket != "" {
		runcArgs = append(runcArgs, "--console-socket", eo.ConsoleSocket)
	}
	if eo.Detach {
		runcArgs = append(runcArgs, "--detach")
	}
	if eo.PidFile != "" {
		runcArgs = append(runcArgs, "--pid-file", eo.PidFile)
	}
	if eo.PreserveFDs > 0 {
		runcArgs = append(runcArgs, "--preserve-fds", strconv.Itoa(eo.PreserveFDs))
	}
	return append(runcArgs, containerID)
}

// State queries the state of a container.
func (l *Launcher) State(containerID string) (int, error) {
	runcArgs := append(l.globalArgs(), "state", containerID)
	return l.run(runcArgs, 0)
}

// Kill sends a signal to the container process.
func (l *Launcher) Kill(containerID, killSignal string) (int, error) {
	if err := checkSignal(killSignal); err != nil {
		return -1, err
	}
	runcArgs := append(l.globalArgs(), "kill", containerID, killSignal)
	return l.run(runcArgs, 0)
}

// globalArgs returns the arguments preceding the runtime subcommand.
func (l *Launcher) globalArgs() []string {
	args := []string{"--root", l.stateDir}
	if l.systemdCgroups {
		args = append(args, "--systemd-cgroup")
	}
	return args
}

// run invokes the OCI runtime with stdio passed through and returns the
// exit status of the runtime, which in foreground mode is the exit status
// of the executed process. preserveFDs descriptors, starting at 3, are
// kept open and inherited positionally by the child.
func (l *Launcher) run(runcArgs []string, preserveFDs int) (int, error) {
	runtime, err := bin.FindBin("runc")
	if err != nil {
		return -1, err
	}

	cmd := exec.Command(runtime, runcArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	for fd := 3; fd < 3+preserveFDs; fd++ {
		cmd.ExtraFiles = append(cmd.ExtraFiles, os.NewFile(uintptr(fd), "fd-"+strconv.Itoa(fd)))
	}
	// The socket activation count is already folded into --preserve-fds,
	// the runtime must not count it a second time.
	cmd.Env = scrubListenVars(os.Environ())

	sylog.Debugf("Calling %s with args %v", runtime, runcArgs)
	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() >= 0 {
		return ee.ExitCode(), nil
	}
	return -1, fmt.Errorf("while calling %s: %w", runtime, err)
}

// scrubListenVars removes the socket activation variables from an
// environment in KEY=VALUE form.
func scrubListenVars(env []string) []string {
	out := env[:0]
	for _, kv := range env {
		if strings.HasPrefix(kv, "LISTEN_FDS=") || strings.HasPrefix(kv, "LISTEN_PID=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}

// checkSignal verifies that killSignal is a signal number or name known
// to the host, the value itself is passed to the runtime untouched.
func checkSignal(killSignal string) error {
	if killSignal == "" {
		return nil
	}
	if n, err := strconv.Atoi(killSignal); err == nil {
		// 64 is SIGRTMAX, which the unix package does not export
		if n < 1 || n > 64 {
			return fmt.Errorf("valid signals are 1 through 64, got %d", n)
		}
		return nil
	}
	name := strings.ToUpper(killSignal)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}
	if unix.SignalNum(name) == 0 {
		return fmt.Errorf("unknown signal %q", killSignal)
	}
	return nil
}
