// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cmdline

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommandManager holds the root command of the application and manages
// registration of subcommands and their flags.
type CommandManager struct {
	rootCmd *cobra.Command
	fm      *flagManager
	errPool []error
}

// NewCommandManager instantiates a command manager for the root command.
func NewCommandManager(rootCmd *cobra.Command) *CommandManager {
	if rootCmd == nil {
		panic("nil root command passed to NewCommandManager")
	}
	return &CommandManager{
		rootCmd: rootCmd,
		fm:      newFlagManager(),
	}
}

func (m *CommandManager) pushError(err error) {
	m.errPool = append(m.errPool, err)
}

// GetError returns the errors accumulated during command/flag registration.
func (m *CommandManager) GetError() []error {
	return m.errPool
}

// RootCmd returns the root command managed by this manager.
func (m *CommandManager) RootCmd() *cobra.Command {
	return m.rootCmd
}

// RegisterCmd registers a child command of the root command.
func (m *CommandManager) RegisterCmd(cmd *cobra.Command) {
	if cmd == nil {
		m.pushError(fmt.Errorf("nil command passed to RegisterCmd"))
		return
	}
	m.rootCmd.AddCommand(cmd)
}

// RegisterSubCmd registers a child command of the parent command given
// as first argument.
func (m *CommandManager) RegisterSubCmd(parentCmd, childCmd *cobra.Command) {
	if parentCmd == nil || childCmd == nil {
		m.pushError(fmt.Errorf("nil command passed to RegisterSubCmd"))
		return
	}
	parentCmd.AddCommand(childCmd)
}

// RegisterFlagForCmd registers a flag for one or more commands.
func (m *CommandManager) RegisterFlagForCmd(flag *Flag, cmds ...*cobra.Command) {
	if err := m.fm.registerFlagForCmd(flag, cmds...); err != nil {
		m.pushError(err)
	}
}

// UpdateCmdFlagFromEnv updates flag values of the command based on
// environment variables prefixed with the given prefix.
func (m *CommandManager) UpdateCmdFlagFromEnv(cmd *cobra.Command, prefix string) error {
	return m.fm.updateCmdFlagFromEnv(cmd, prefix)
}
