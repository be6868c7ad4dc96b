// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package docs

// Global content for help and man pages
const (

	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	// crun root command
	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	CrunUse   string = `crun [global options...]`
	CrunShort string = `OCI container runtime front-end`
	CrunLong  string = `
  crun executes additional processes in containers that are already running,
  and queries or signals them, by driving an OCI-compliant runtime. The
  container itself must have been created beforehand; crun only joins it.`
	CrunExample string = `
  $ crun exec mycontainer /bin/sh
  $ crun state mycontainer
  $ crun kill mycontainer SIGTERM`

	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	// exec command
	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	ExecUse   string = `exec [exec options...] <container_id> <command>...`
	ExecShort string = `Execute a command in a running container`
	ExecLong  string = `
  The 'exec' command builds an OCI process descriptor from its options and
  trailing command, or loads one from a process.json given with --process,
  and executes it inside the namespaces of a running container. With
  --process, only the container ID may follow on the command line.

  A process started this way can never gain privileges: no_new_privileges
  is always set on descriptors built from the command line.`
	ExecExample string = `
  $ crun exec mycontainer /bin/ps
  $ crun exec -t mycontainer /bin/sh
  $ crun exec -u 1000:1000 -e TERM=xterm mycontainer /bin/env
  $ crun exec --process ./process.json mycontainer`

	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	// state command
	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	StateUse   string = `state <container_id>`
	StateShort string = `Query the state of a container`
	StateLong  string = `
  The 'state' command prints the OCI state of a container as reported by
  the runtime.`
	StateExample string = `
  $ crun state mycontainer`

	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	// kill command
	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	KillUse   string = `kill <container_id> [signal]`
	KillShort string = `Send a signal to the container process`
	KillLong  string = `
  The 'kill' command sends a signal, SIGTERM unless specified, to the main
  process of a running container.`
	KillExample string = `
  $ crun kill mycontainer
  $ crun kill mycontainer SIGKILL`
)
