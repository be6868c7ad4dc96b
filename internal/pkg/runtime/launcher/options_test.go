// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package launcher

import (
	"os"
	"reflect"
	"testing"
)

func TestNewExecOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      []ExecOption
		listenFDs string // empty means unset
		want      ExecOptions
		wantErr   bool
	}{
		{
			name: "defaults",
			want: ExecOptions{},
		},
		{
			name: "allOptions",
			opts: []ExecOption{
				OptDetach(true),
				OptConsoleSocket("/tmp/console.sock"),
				OptPidFile("/tmp/pid"),
				OptPreserveFDs(2),
			},
			want: ExecOptions{
				Detach:        true,
				ConsoleSocket: "/tmp/console.sock",
				PidFile:       "/tmp/pid",
				PreserveFDs:   2,
			},
		},
		{
			name:      "preserveFDsPlusListenFDs",
			opts:      []ExecOption{OptPreserveFDs(3)},
			listenFDs: "2",
			want:      ExecOptions{PreserveFDs: 5},
		},
		{
			name:      "listenFDsOnly",
			listenFDs: "4",
			want:      ExecOptions{PreserveFDs: 4},
		},
		{
			name:      "listenFDsNonNumeric",
			opts:      []ExecOption{OptPreserveFDs(3)},
			listenFDs: "not-a-number",
			want:      ExecOptions{PreserveFDs: 3},
		},
		{
			name:      "listenFDsNegative",
			opts:      []ExecOption{OptPreserveFDs(3)},
			listenFDs: "-2",
			want:      ExecOptions{PreserveFDs: 3},
		},
		{
			name:    "negativePreserveFDs",
			opts:    []ExecOption{OptPreserveFDs(-1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv registers the restore in both branches
			t.Setenv("LISTEN_FDS", tt.listenFDs)
			if tt.listenFDs == "" {
				os.Unsetenv("LISTEN_FDS")
			}

			got, err := NewExecOptions(tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewExecOptions() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExecOptions() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewExecOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
