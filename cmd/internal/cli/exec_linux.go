// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crosbymichael/crun/docs"
	"github.com/crosbymichael/crun/internal/app/crun"
	"github.com/crosbymichael/crun/pkg/cmdline"
	"github.com/crosbymichael/crun/pkg/sylog"
)

func init() {
	addCmdInit(func(cmdManager *cmdline.CommandManager) {
		cmdManager.RegisterCmd(execCmd)

		cmdManager.RegisterFlagForCmd(&execProcessFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execTTYFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execCwdFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execUserFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execEnvFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execCapFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execDetachFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execConsoleSocketFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execPidFileFlag, execCmd)
		cmdManager.RegisterFlagForCmd(&execPreserveFDsFlag, execCmd)
	})
}

var (
	execProcessPath   string
	execTTY           bool
	execCwd           string
	execUser          string
	execEnv           []string
	execCaps          []string
	execDetach        bool
	execConsoleSocket string
	execPidFile       string
	execPreserveFDs   int
)

// ttyValue implements the optional argument of --tty: a bare flag
// requests a terminal, only the values "false" and "no" decline one.
type ttyValue struct {
	tty *bool
}

func (v *ttyValue) Set(s string) error {
	*v.tty = s != "false" && s != "no"
	return nil
}

func (v *ttyValue) String() string {
	if v.tty != nil && *v.tty {
		return "true"
	}
	return "false"
}

func (v *ttyValue) Type() string {
	return "TTY"
}

// -p|--process
var execProcessFlag = cmdline.Flag{
	ID:           "execProcessFlag",
	Value:        &execProcessPath,
	DefaultValue: "",
	Name:         "process",
	ShortHand:    "p",
	Usage:        "path to the process.json to execute, instead of building one from options",
	Tag:          "<file>",
}

// -t|--tty
var execTTYFlag = cmdline.Flag{
	ID:          "execTTYFlag",
	Value:       &ttyValue{tty: &execTTY},
	Name:        "tty",
	ShortHand:   "t",
	NoOptDefVal: "true",
	Usage:       "allocate a pseudo-TTY",
}

// --cwd
var execCwdFlag = cmdline.Flag{
	ID:           "execCwdFlag",
	Value:        &execCwd,
	DefaultValue: "",
	Name:         "cwd",
	Usage:        "working directory for the command, defaults to the container's",
	Tag:          "<dir>",
}

// -u|--user
var execUserFlag = cmdline.Flag{
	ID:           "execUserFlag",
	Value:        &execUser,
	DefaultValue: "",
	Name:         "user",
	ShortHand:    "u",
	Usage:        "run the command as the specified user, in the form UID[:GID]",
	Tag:          "<USERSPEC>",
}

// -e|--env
var execEnvFlag = cmdline.Flag{
	ID:           "execEnvFlag",
	Value:        &execEnv,
	DefaultValue: []string{},
	Name:         "env",
	ShortHand:    "e",
	StringArray:  true,
	Usage:        "add an environment variable (can be used multiple times)",
	Tag:          "<KEY=VALUE>",
	EnvKeys:      []string{"ENV"},
	EnvHandler:   cmdline.EnvAppendValue,
}

// -c|--cap
var execCapFlag = cmdline.Flag{
	ID:           "execCapFlag",
	Value:        &execCaps,
	DefaultValue: []string{},
	Name:         "cap",
	ShortHand:    "c",
	StringArray:  true,
	Usage:        "add a capability to every capability set of the process (can be used multiple times)",
	Tag:          "<capability>",
	EnvKeys:      []string{"CAP"},
	EnvHandler:   cmdline.EnvAppendValue,
}

// -d|--detach
var execDetachFlag = cmdline.Flag{
	ID:           "execDetachFlag",
	Value:        &execDetach,
	DefaultValue: false,
	Name:         "detach",
	ShortHand:    "d",
	Usage:        "detach the command in the background",
}

// --console-socket
var execConsoleSocketFlag = cmdline.Flag{
	ID:           "execConsoleSocketFlag",
	Value:        &execConsoleSocket,
	DefaultValue: "",
	Name:         "console-socket",
	Usage:        "path to a socket that will receive the master end of the tty",
	Tag:          "<socket>",
}

// --pid-file
var execPidFileFlag = cmdline.Flag{
	ID:           "execPidFileFlag",
	Value:        &execPidFile,
	DefaultValue: "",
	Name:         "pid-file",
	Usage:        "write the PID of the command to the file with the given name",
	EnvKeys:      []string{"PID_FILE"},
	Tag:          "<file>",
}

// --preserve-fds
var execPreserveFDsFlag = cmdline.Flag{
	ID:           "execPreserveFDsFlag",
	Value:        &execPreserveFDs,
	DefaultValue: 0,
	Name:         "preserve-fds",
	Usage:        "pass additional file descriptors beyond stdio to the command, starting at descriptor 3",
	Tag:          "<N>",
}

// checkExecArgs enforces the positional arity of the exec command: with
// --process only the container ID is accepted, otherwise a container ID
// and a command are both required. It runs before any engine call.
func checkExecArgs(processPath string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("please specify an ID for the container")
	}
	if processPath != "" {
		if len(args) > 1 {
			return fmt.Errorf("a command cannot be specified together with --process")
		}
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("please specify a command to execute")
	}
	return nil
}

// crun exec
var execCmd = &cobra.Command{
	Args: func(_ *cobra.Command, args []string) error {
		return checkExecArgs(execProcessPath, args)
	},
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		// an omitted --user means inherit, any given value is parsed
		var user *string
		if cmd.Flags().Changed("user") {
			user = &execUser
		}
		status, err := crun.Exec(args[0], args[1:], &crun.ExecArgs{
			ProcessFile:   execProcessPath,
			Cwd:           execCwd,
			Terminal:      execTTY,
			User:          user,
			Env:           execEnv,
			Capabilities:  execCaps,
			Detach:        execDetach,
			ConsoleSocket: execConsoleSocket,
			PidFile:       execPidFile,
			PreserveFDs:   execPreserveFDs,
		})
		if err != nil {
			sylog.Fatalf("%s", err)
		}
		os.Exit(status)
	},

	Use:     docs.ExecUse,
	Short:   docs.ExecShort,
	Long:    docs.ExecLong,
	Example: docs.ExecExample,
}

func init() {
	// flags after the first positional argument belong to the executed
	// command, not to exec itself
	execCmd.Flags().SetInterspersed(false)
}
