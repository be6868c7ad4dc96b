// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cmdline

import (
	"fmt"

	"github.com/spf13/pflag"
)

// EnvHandler sets a flag value from an environment variable.
type EnvHandler func(*pflag.Flag, string) error

// EnvSetValue sets the corresponding flag value if the flag was not already
// set on the command line, the command line always takes precedence.
func EnvSetValue(flag *pflag.Flag, envValue string) error {
	if flag.Changed {
		return nil
	}
	if err := flag.Value.Set(envValue); err != nil {
		return fmt.Errorf("while setting flag %s from environment: %s", flag.Name, err)
	}
	flag.Changed = true
	return nil
}

// EnvAppendValue appends the environment value to a repeatable flag,
// after any values given on the command line.
func EnvAppendValue(flag *pflag.Flag, envValue string) error {
	if err := flag.Value.Set(envValue); err != nil {
		return fmt.Errorf("while appending to flag %s from environment: %s", flag.Name, err)
	}
	flag.Changed = true
	return nil
}
