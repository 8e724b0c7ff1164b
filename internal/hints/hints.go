// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// userConfigMarker identifies a searched path inside the user config directory.
const userConfigMarker = "go-md2sn"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hints := []string{"use --config /path/to/file.yaml"}

	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hints = append(hints, "or create "+p)
			break
		}
	}

	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for missing CSS blocks in a custom asset
// directory.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("expected styles/<name>.css with name one of: " + strings.Join(available, ", "))
}

// ForAlertName returns a hint for rejected custom alert names.
func ForAlertName() string {
	return format("alert names start with a letter and use only a-z, 0-9, '-' and '_'")
}

// ForAlertColor returns a hint for rejected custom alert colors.
func ForAlertColor() string {
	return format(`use a hex color ("#0969da"), rgb()/hsl(), or a CSS color name`)
}

// ForExtension returns a hint for an invalid output extension.
func ForExtension() string {
	return format(`output.extension must start with a dot, e.g. ".txt"`)
}

// ForNoInput returns a hint when no input was given.
func ForNoInput() string {
	return format("pass a file, a directory, or '-' for stdin; or set input.defaultDir in the config")
}

// ForWorkers returns a hint for an out-of-range worker count.
func ForWorkers(maxWorkers int) string {
	return format("use --workers between 1 and " + strconv.Itoa(maxWorkers) + ", or 0 for auto")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
