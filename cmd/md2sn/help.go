package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2sn <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to ServiceNow journal markup")
	fmt.Fprintln(w, "  alerts     Print the alert catalog as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2sn help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2sn convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to ServiceNow journal markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or '-' for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file, directory, or '-' for stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --exclude <glob>      Skip matching files in directories (repeatable)")
	fmt.Fprintln(w, "      --preview             Also write <name>.preview.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --no-pretty           Keep block markup on as few lines as possible")
	fmt.Fprintln(w, "      --no-code-tags        Omit the [code] wrapper and CSS")
	fmt.Fprintln(w, "      --highlight           Color fenced code with a known language")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style name (implies --highlight)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/{code,highlight,table}.css")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --no-lint             Do not report unsupported markdown")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SN_CONFIG, MD2SN_INPUT_DIR, MD2SN_OUTPUT_DIR, MD2SN_ASSET_PATH, MD2SN_WORKERS")
}

// printAlertsUsage prints usage for the alerts command.
func printAlertsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2sn alerts [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print built-in alerts merged with the config's alerts section as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "alerts":
		printAlertsUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2sn version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2sn help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
