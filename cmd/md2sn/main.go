package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	md2sn "github.com/alnah/go-md2sn"
	"github.com/alnah/go-md2sn/internal/assets"
	"github.com/alnah/go-md2sn/internal/config"
	"github.com/alnah/go-md2sn/internal/fileutil"
	"github.com/alnah/go-md2sn/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
// A first argument that is a Markdown file, a directory or "-" runs convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if !looksLikeInput(cmd) {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = "convert", args[1:]
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(rest, env)
	case "alerts":
		err = runAlerts(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2sn %s\n", Version)
	case "help":
		runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
	}
	return exitCodeFor(err)
}

// runConvertCmd parses convert flags, sizes the worker set and runs the
// batch under a signal-aware context.
func runConvertCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runConvert(ctx, positional, flags, env)
}

var commands = []string{"convert", "alerts", "version", "help"}

// isCommand reports whether s names a subcommand. Matching is case-sensitive.
func isCommand(s string) bool {
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	return false
}

// looksLikeInput reports whether s can be converted without naming the
// convert command: stdin, a Markdown file, or an existing directory.
func looksLikeInput(s string) bool {
	if s == stdinArg || fileutil.IsMarkdown(s) {
		return true
	}
	info, err := os.Stat(s)
	return err == nil && info.IsDir()
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, md2sn.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Styles())
	case errors.Is(err, md2sn.ErrInvalidAlertName):
		return hints.ForAlertName()
	case errors.Is(err, md2sn.ErrInvalidAlertColor):
		return hints.ForAlertColor()
	case errors.Is(err, config.ErrInvalidExtension):
		return hints.ForExtension()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, ErrInvalidWorkerCount):
		return hints.ForWorkers(MaxWorkers)
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}

// triedPaths extracts the searched locations from a config-not-found error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
