// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package oci

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/opencontainers/runtime-spec/specs-go"

	"github.com/crosbymichael/crun/internal/pkg/runtime/launcher"
)

func TestExecArgs(t *testing.T) {
	tests := []struct {
		name           string
		stateDir       string
		systemdCgroups bool
		eo             launcher.ExecOptions
		want           []string
	}{
		{
			name:     "minimal",
			stateDir: "/run/crun",
			want: []string{
				"--root", "/run/crun",
				"exec", "--process", "/tmp/process.json",
				"c1",
			},
		},
		{
			name:           "systemdCgroups",
			stateDir:       "/run/crun",
			systemdCgroups: true,
			want: []string{
				"--root", "/run/crun", "--systemd-cgroup",
				"exec", "--process", "/tmp/process.json",
				"c1",
			},
		},
		{
			name:     "allOptions",
			stateDir: "/var/run/alt",
			eo: launcher.ExecOptions{
				Detach:        true,
				ConsoleSocket: "/tmp/console.sock",
				PidFile:       "/tmp/pid",
				PreserveFDs:   5,
			},
			want: []string{
				"--root", "/var/run/alt",
				"exec", "--process", "/tmp/process.json",
				"--console-socket", "/tmp/console.sock",
				"--detach",
				"--pid-file", "/tmp/pid",
				"--preserve-fds", "5",
				"c1",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLauncher(tt.stateDir, tt.systemdCgroups)
			got := l.execArgs("c1", "/tmp/process.json", tt.eo)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("execArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteProcessFile(t *testing.T) {
	process := &specs.Process{
		Args:            []string{"/bin/sh", "-c", "true"},
		Env:             []string{"A=1"},
		Terminal:        true,
		NoNewPrivileges: true,
	}

	path, err := writeProcessFile(process)
	if err != nil {
		t.Fatalf("writeProcessFile() unexpected error: %v", err)
	}
	defer os.Remove(path)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("while reading process file: %v", err)
	}
	var got specs.Process
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("process file does not decode: %v", err)
	}
	if !reflect.DeepEqual(&got, process) {
		t.Errorf("process file round trip = %+v, want %+v", &got, process)
	}
}

func TestScrubListenVars(t *testing.T) {
	env := []string{
		"PATH=/bin",
		"LISTEN_FDS=2",
		"LISTEN_PID=1234",
		"HOME=/root",
		"LISTEN_FDNAMES=socket",
	}
	want := []string{"PATH=/bin", "HOME=/root", "LISTEN_FDNAMES=socket"}

	if got := scrubListenVars(env); !reflect.DeepEqual(got, want) {
		t.Errorf("scrubListenVars() = %v, want %v", got, want)
	}
}

func TestCheckSignal(t *testing.T) {
	tests := []struct {
		name       string
		killSignal string
		wantErr    bool
	}{
		{name: "empty", killSignal: ""},
		{name: "number", killSignal: "9"},
		{name: "rtmax", killSignal: "64"},
		{name: "fullName", killSignal: "SIGTERM"},
		{name: "shortName", killSignal: "TERM"},
		{name: "lowercase", killSignal: "sigkill"},
		{name: "unknown", killSignal: "SIGNOPE", wantErr: true},
		{name: "zero", killSignal: "0", wantErr: true},
		{name: "negative", killSignal: "-9", wantErr: true},
		{name: "aboveRtmax", killSignal: "65", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSignal(tt.killSignal)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSignal(%q) error = %v, wantErr %v", tt.killSignal, err, tt.wantErr)
			}
		})
	}
}
