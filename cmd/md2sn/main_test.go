package main

// Notes:
// - runMain: we test dispatch and exit codes. Conversion output is covered
//   by convert_test.go.

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2sn "github.com/alnah/go-md2sn"
	"github.com/alnah/go-md2sn/internal/config"
)

// newTestEnv returns an Environment with buffered output and the given stdin.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeMarkdown writes content to dir/name, creating parent directories.
func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"alerts", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"doc.md", false},
		{"Convert", false}, // case sensitive
		{"VERSION", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := isCommand(tt.input)
			if got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLooksLikeInput - Implicit convert detection
// ---------------------------------------------------------------------------

func TestLooksLikeInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "stdin", input: "-", want: true},
		{name: "markdown file", input: "notes.md", want: true},
		{name: "long extension", input: "notes.markdown", want: true},
		{name: "existing directory", input: dir, want: true},
		{name: "missing directory", input: filepath.Join(dir, "missing"), want: false},
		{name: "other extension", input: "notes.txt", want: false},
		{name: "unknown word", input: "convertx", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := looksLikeInput(tt.input); got != tt.want {
				t.Errorf("looksLikeInput(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints usage", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv("")
		if code := runMain([]string{"md2sn"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Usage: md2sn") {
			t.Errorf("stderr = %q, want usage", stderr.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv("")
		if code := runMain([]string{"md2sn", "frobnicate"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Unknown command: frobnicate") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv("")
		if code := runMain([]string{"md2sn", "version"}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if got := stdout.String(); got != "md2sn "+Version+"\n" {
			t.Errorf("stdout = %q", got)
		}
	})

	t.Run("help convert", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv("")
		if code := runMain([]string{"md2sn", "help", "convert"}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "--no-code-tags") {
			t.Errorf("stdout = %q, want convert usage", stdout.String())
		}
	})

	t.Run("convert -h exits successfully", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv("")
		if code := runMain([]string{"md2sn", "convert", "-h"}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "Usage: md2sn convert") {
			t.Errorf("stderr = %q, want convert usage", stderr.String())
		}
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv("")
		if code := runMain([]string{"md2sn", "convert", "--bogus"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("missing input file is an I/O error", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv("")
		missing := filepath.Join(t.TempDir(), "missing.md")
		if code := runMain([]string{"md2sn", "convert", missing}, env); code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
	})

	t.Run("markdown argument converts without command", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeMarkdown(t, dir, "notes.md", "# Title\n")

		env, stdout, stderr := newTestEnv("")
		if code := runMain([]string{"md2sn", input, "-q"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d; stderr = %q", code, ExitSuccess, stderr.String())
		}
		if stdout.Len() != 0 {
			t.Errorf("quiet run wrote %q", stdout.String())
		}

		got, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !strings.Contains(string(got), "<h1>Title</h1>") {
			t.Errorf("output = %q, want heading", got)
		}
	})

	t.Run("stdin to stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv("Some **bold** text")
		if code := runMain([]string{"md2sn", "-"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if got, want := stdout.String(), "[code]Some <strong>bold</strong> text[/code]"; got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
	})

	t.Run("error message carries hint", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv("")
		if code := runMain([]string{"md2sn", "convert", "-w", "99", "-"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "hint: use --workers between 1 and") {
			t.Errorf("stderr = %q, want workers hint", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestHintFor - Error to hint mapping
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "config not found lists user path",
			err:      fmt.Errorf("loading config: %w: tried work.yaml, work.yml, /home/u/.config/go-md2sn/work.yaml", config.ErrConfigNotFound),
			contains: "create /home/u/.config/go-md2sn/work.yaml",
		},
		{name: "alert name", err: fmt.Errorf("x: %w", md2sn.ErrInvalidAlertName), contains: "alert names"},
		{name: "alert color", err: md2sn.ErrInvalidAlertColor, contains: "hex color"},
		{name: "extension", err: config.ErrInvalidExtension, contains: "output.extension"},
		{name: "no input", err: ErrNoInput, contains: "stdin"},
		{name: "output dir", err: ErrCreateOutputDir, contains: "writable"},
		{name: "unrelated", err: errors.New("boom"), contains: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor() = %q, want to contain %q", got, tt.contains)
			}
		})
	}
}

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: tried a.yaml, b.yml", config.ErrConfigNotFound)
	got := triedPaths(err)
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "b.yml" {
		t.Errorf("triedPaths() = %v", got)
	}

	if got := triedPaths(errors.New("other")); got != nil {
		t.Errorf("triedPaths() = %v, want nil", got)
	}
}
