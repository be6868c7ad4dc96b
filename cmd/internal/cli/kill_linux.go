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
		cmdManager.RegisterCmd(killCmd)
	})
}

// crun kill
var killCmd = &cobra.Command{
	Args:                  cobra.RangeArgs(1, 2),
	DisableFlagsInUseLine: true,
	Run: func(_ *cobra.Command, args []string) {
		killSignal := "SIGTERM"
		if len(args) > 1 {
			killSignal = args[1]
		}
		status, err := crun.Kill(args[0], killSignal)
		if err != nil {
			sylog.Fatalf("%s", err)
		}
		os.Exit(status)
	},

	Use:     docs.KillUse,
	Short:   docs.KillShort,
	Long:    docs.KillLong,
	Example: docs.KillExample,
}
