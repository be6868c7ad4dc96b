// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package oci

import (
	"strconv"
	"strings"

	"github.com/ccoveille/go-safecast"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidUserSpec is returned for a USERSPEC that does not match
	// the UID[:GID] grammar.
	ErrInvalidUserSpec = errors.New("invalid USERSPEC specified")
	// ErrInvalidUID is returned for a numerically out-of-range UID.
	ErrInvalidUID = errors.New("invalid UID specified")
	// ErrInvalidGID is returned for a numerically out-of-range GID.
	ErrInvalidGID = errors.New("invalid GID specified")
)

// ProcessArgs holds the CLI-supplied values a process descriptor is built
// from. Env and Capabilities keep their command-line order, duplicates
// included; nothing is validated here beyond the USERSPEC grammar, the
// engine owns the rest.
type ProcessArgs struct {
	// Args is the command to execute and its arguments.
	Args []string
	// Cwd is the working directory, empty means the container's default.
	Cwd string
	// Terminal requests a pseudo-terminal for the process.
	Terminal bool
	// Env lists KEY=VALUE assignments, order-significant.
	Env []string
	// User is the UID[:GID] identity to run as, nil means inherit. A
	// non-nil empty string is a syntax error, not uid 0.
	User *string
	// Capabilities lists capability names applied to every capability set.
	Capabilities []string
}

// NewExecProcess builds the OCI process descriptor for an exec request.
// Privilege escalation is never granted to a CLI-built process, so
// NoNewPrivileges is unconditionally set.
func NewExecProcess(pa ProcessArgs) (*specs.Process, error) {
	p := &specs.Process{
		Args:            append([]string{}, pa.Args...),
		Cwd:             pa.Cwd,
		Terminal:        pa.Terminal,
		Env:             append([]string{}, pa.Env...),
		Capabilities:    expandCapabilities(pa.Capabilities),
		NoNewPrivileges: true,
	}
	if pa.User != nil {
		u, err := ParseUser(*pa.User)
		if err != nil {
			return nil, err
		}
		p.User = *u
	}
	return p, nil
}

// ParseUser parses a UID[:GID] string into an OCI process user. The empty
// string is a syntax error like any other non-matching input; a caller
// that wants to inherit the container identity must not call ParseUser.
func ParseUser(userspec string) (*specs.User, error) {
	uidStr, gidStr, hasGID := strings.Cut(userspec, ":")

	uid, err := parseID(uidStr)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Wrapf(ErrInvalidUID, "%q", uidStr)
		}
		return nil, errors.Wrapf(ErrInvalidUserSpec, "%q", userspec)
	}

	u := &specs.User{UID: uid}
	if !hasGID {
		return u, nil
	}

	gid, err := parseID(gidStr)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Wrapf(ErrInvalidGID, "%q", gidStr)
		}
		return nil, errors.Wrapf(ErrInvalidUserSpec, "%q", userspec)
	}
	u.GID = gid
	return u, nil
}

// parseID parses a base-10 uid or gid. The whole string must be consumed,
// a trailing or empty component is a syntax error.
func parseID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	id, err := safecast.ToUint32(v)
	if err != nil {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// expandCapabilities applies a flat capability list to all five OCI
// capability sets. The CLI offers a single list, so the same values land
// in every set, as independently-owned copies the engine may mutate
// separately. An empty list yields nil rather than five empty sets:
// "no capability override" and "override to empty" are different requests
// downstream.
func expandCapabilities(caps []string) *specs.LinuxCapabilities {
	if len(caps) == 0 {
		return nil
	}
	return &specs.LinuxCapabilities{
		Bounding:    append([]string{}, caps...),
		Effective:   append([]string{}, caps...),
		Inheritable: append([]string{}, caps...),
		Permitted:   append([]string{}, caps...),
		Ambient:     append([]string{}, caps...),
	}
}
