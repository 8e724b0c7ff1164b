package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags holds output shaping flags.
type formatFlags struct {
	noPretty       bool
	noCodeTags     bool
	highlight      bool
	highlightStyle string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	format    formatFlags
	output    string
	workers   int
	assetPath string
	exclude   []string
	preview   bool
	noLint    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFormatFlags adds output shaping flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.BoolVar(&f.noPretty, "no-pretty", false, "keep block markup on as few lines as possible")
	fs.BoolVar(&f.noCodeTags, "no-code-tags", false, "omit the [code] wrapper and CSS")
	fs.BoolVar(&f.highlight, "highlight", false, "color fenced code blocks with a known language")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for --highlight (default: github)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory ('-' for stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/*.css overrides")
	fs.StringArrayVar(&f.exclude, "exclude", nil, "glob of files to skip in directories (repeatable)")
	fs.BoolVar(&f.preview, "preview", false, "also write <name>.preview.html")
	fs.BoolVar(&f.noLint, "no-lint", false, "do not report unsupported markdown")

	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseAlertsFlags parses alerts command flags.
func parseAlertsFlags(args []string, stderr io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("alerts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &commonFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	fs.Usage = func() { printAlertsUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
