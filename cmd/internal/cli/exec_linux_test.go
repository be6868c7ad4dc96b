// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"testing"
)

func TestCheckExecArgs(t *testing.T) {
	tests := []struct {
		name        string
		processPath string
		args        []string
		wantErr     bool
	}{
		{
			name:    "noArgs",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "containerOnly",
			args:    []string{"c1"},
			wantErr: true,
		},
		{
			name: "containerAndCommand",
			args: []string{"c1", "/bin/true"},
		},
		{
			name: "containerAndCommandWithArgs",
			args: []string{"c1", "/bin/sh", "-c", "true"},
		},
		{
			name:        "processFile",
			processPath: "process.json",
			args:        []string{"c1"},
		},
		{
			name:        "processFileNoContainer",
			processPath: "process.json",
			args:        []string{},
			wantErr:     true,
		},
		{
			name:        "processFileWithCommand",
			processPath: "process.json",
			args:        []string{"c1", "/bin/true"},
			wantErr:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkExecArgs(tt.processPath, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkExecArgs(%q, %v) error = %v, wantErr %v", tt.processPath, tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestTTYValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "bare", value: "true", want: true}, // NoOptDefVal for a bare -t
		{name: "false", value: "false", want: false},
		{name: "no", value: "no", want: false},
		{name: "yes", value: "yes", want: true},
		{name: "anythingElse", value: "certainly", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tty bool
			v := &ttyValue{tty: &tty}
			if err := v.Set(tt.value); err != nil {
				t.Fatalf("Set(%q) unexpected error: %v", tt.value, err)
			}
			if tty != tt.want {
				t.Errorf("Set(%q) tty = %v, want %v", tt.value, tty, tt.want)
			}
		})
	}
}
