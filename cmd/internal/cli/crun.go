// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crosbymichael/crun/docs"
	"github.com/crosbymichael/crun/pkg/cmdline"
	"github.com/crosbymichael/crun/pkg/sylog"
	"github.com/crosbymichael/crun/pkg/util/crunconf"
)

// envPrefix is the environment variable prefix for flag overrides.
const envPrefix = "CRUN_"

// defaultConfigFile is consulted unless --config points elsewhere.
const defaultConfigFile = "/etc/crun/crun.conf"

var cmdInits []func(*cmdline.CommandManager)

// addCmdInit registers a function to be called when the command manager
// is initialized, commands declare themselves through it from init().
func addCmdInit(cmdInit func(*cmdline.CommandManager)) {
	cmdInits = append(cmdInits, cmdInit)
}

var (
	configFile string
	stateRoot  string
	debug      bool
	quiet      bool
)

// --config
var globalConfigFlag = cmdline.Flag{
	ID:           "globalConfigFlag",
	Value:        &configFile,
	DefaultValue: defaultConfigFile,
	Name:         "config",
	Usage:        "configuration file to use",
	EnvKeys:      []string{"CONFIG_FILE"},
}

// --root
var globalRootFlag = cmdline.Flag{
	ID:           "globalRootFlag",
	Value:        &stateRoot,
	DefaultValue: "",
	Name:         "root",
	Usage:        "root directory for container state",
	EnvKeys:      []string{"ROOT"},
	Tag:          "<dir>",
}

// --debug
var globalDebugFlag = cmdline.Flag{
	ID:           "globalDebugFlag",
	Value:        &debug,
	DefaultValue: false,
	Name:         "debug",
	Usage:        "print debugging information (highest verbosity)",
	EnvKeys:      []string{"DEBUG"},
}

// -q|--quiet
var globalQuietFlag = cmdline.Flag{
	ID:           "globalQuietFlag",
	Value:        &quiet,
	DefaultValue: false,
	Name:         "quiet",
	ShortHand:    "q",
	Usage:        "suppress normal output",
	EnvKeys:      []string{"QUIET"},
}

// rootCmd is the main command of the application.
var rootCmd = &cobra.Command{
	Use:                   docs.CrunUse,
	Short:                 docs.CrunShort,
	Long:                  docs.CrunLong,
	Example:               docs.CrunExample,
	SilenceErrors:         true,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var cmdManager = cmdline.NewCommandManager(rootCmd)

func init() {
	rootCmd.PersistentPreRunE = persistentPreRun
	rootCmd.TraverseChildren = true
	rootCmd.Flags().SetInterspersed(false)
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	cfg, err := crunconf.Parse(configFile)
	if err != nil {
		return err
	}
	if stateRoot != "" {
		cfg.StateDir = stateRoot
	}
	crunconf.SetCurrentConfig(cfg)

	switch {
	case debug:
		sylog.SetLevel(2)
	case quiet:
		sylog.SetLevel(-1)
	default:
		sylog.SetLevel(cfg.LogLevel)
	}

	return cmdManager.UpdateCmdFlagFromEnv(cmd, envPrefix)
}

// ExecuteCrunCmd adds all child commands to the root command, sets the
// flags appropriately and executes the root command. This is called by
// main.main(), it only needs to happen once.
func ExecuteCrunCmd() {
	cmdManager.RegisterFlagForCmd(&globalConfigFlag, rootCmd)
	cmdManager.RegisterFlagForCmd(&globalRootFlag, rootCmd)
	cmdManager.RegisterFlagForCmd(&globalDebugFlag, rootCmd)
	cmdManager.RegisterFlagForCmd(&globalQuietFlag, rootCmd)

	for _, cmdInit := range cmdInits {
		cmdInit(cmdManager)
	}
	if errs := cmdManager.GetError(); len(errs) > 0 {
		for _, e := range errs {
			sylog.Errorf("%s", e)
		}
		sylog.Fatalf("command manager initialization failed")
	}

	if err := rootCmd.Execute(); err != nil {
		sylog.Errorf("%s", err)
		os.Exit(255)
	}
}
