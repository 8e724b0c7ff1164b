package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{name: "no args", args: nil, wantStdout: "Usage: md2sn <command>"},
		{name: "convert", args: []string{"convert"}, wantStdout: "--exclude <glob>"},
		{name: "alerts", args: []string{"alerts"}, wantStdout: "Usage: md2sn alerts"},
		{name: "version", args: []string{"version"}, wantStdout: "Usage: md2sn version"},
		{name: "help", args: []string{"help"}, wantStdout: "Usage: md2sn help"},
		{name: "unknown", args: []string{"nope"}, wantStderr: "Unknown command: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv("")
			runHelp(tt.args, env)

			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
