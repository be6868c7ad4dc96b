// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package main

import (
	"github.com/crosbymichael/crun/cmd/internal/cli"
)

func main() {
	cli.ExecuteCrunCmd()
}
