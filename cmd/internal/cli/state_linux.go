// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crosbymichael/crun/docs"
	"github.com/crosbymichael/crun/internal/app/crun"
	"github.com/crosbymichael/crun/pkg/cmdline"
	"github.com/crosbymichael/crun/pkg/sylog"
)

func init() {
	addCmdInit(func(cmdManager *cmdline.CommandManager) {
		cmdManager.RegisterCmd(stateCmd)
	})
}

// crun state
var stateCmd = &cobra.Command{
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(_ *cobra.Command, args []string) {
		status, err := crun.State(args[0])
		if err != nil {
			sylog.Fatalf("%s", err)
		}
		os.Exit(status)
	},

	Use:     docs.StateUse,
	Short:   docs.StateShort,
	Long:    docs.StateLong,
	Example: docs.StateExample,
}
