package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	md2sn "github.com/alnah/go-md2sn"
	"github.com/alnah/go-md2sn/internal/yamlutil"
)

func TestRunAlerts(t *testing.T) {
	t.Parallel()

	t.Run("built-ins merged with config", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeMarkdown(t, t.TempDir(), "team.yaml", "alerts:\n  deploy:\n    emoji: \"🚀\"\n")

		env, stdout, _ := newTestEnv("")
		if err := runAlerts([]string{"-c", cfgPath}, env); err != nil {
			t.Fatalf("runAlerts() error = %v", err)
		}

		var got struct {
			Alerts map[string]md2sn.AlertDefinition `yaml:"alerts"`
		}
		if err := yamlutil.UnmarshalStrict(stdout.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid YAML: %v\n%s", err, stdout.String())
		}

		want := md2sn.MergeAlerts(map[string]md2sn.AlertDefinition{"deploy": {Emoji: "🚀"}})
		if diff := cmp.Diff(want, got.Alerts); diff != "" {
			t.Errorf("alerts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv("")
		err := runAlerts([]string{"--config", filepath.Join(t.TempDir(), "x.yaml")}, env)
		if exitCodeFor(err) != ExitUsage {
			t.Errorf("error = %v, want usage error", err)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv("")
		err := runAlerts([]string{"--nope"}, env)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})
}
