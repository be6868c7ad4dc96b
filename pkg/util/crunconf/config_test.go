// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package crunconf

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseMissingFile(t *testing.T) {
	got, err := Parse(filepath.Join(t.TempDir(), "no-such.conf"))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Parse() on missing file = %+v, want defaults %+v", got, Default())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *File
		wantErr bool
	}{
		{
			name:    "empty",
			content: "",
			want:    Default(),
		},
		{
			name: "full",
			content: `
state_dir = "/var/run/crun"
runtime = "crun"
systemd_cgroups = true
log_level = 2
`,
			want: &File{
				StateDir:       "/var/run/crun",
				Runtime:        "crun",
				SystemdCgroups: true,
				LogLevel:       2,
			},
		},
		{
			name:    "partial",
			content: `runtime = "/opt/bin/runc"`,
			want: &File{
				StateDir: DefaultStateDir,
				Runtime:  "/opt/bin/runc",
				LogLevel: 1,
			},
		},
		{
			name:    "malformed",
			content: `state_dir = [`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "crun.conf")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := Parse(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
