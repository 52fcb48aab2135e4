// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user-level location (an absolute path under go-ldocfilter/)
	for _, p := range searchedPaths {
		if filepath.IsAbs(p) && strings.Contains(filepath.ToSlash(p), "/go-ldocfilter/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUsage returns a hint pointing at the help text.
func ForUsage() string {
	return format("run 'ldocfilter --help' for usage")
}

// ForInputNotFound returns a hint for a missing input file.
func ForInputNotFound() string {
	return format("omit the argument or pass - to read standard input")
}

// ForOutputFile returns hints for output file write errors.
func ForOutputFile() string {
	return format("check parent directory exists and is writable")
}

// ForBrokenPipe returns a hint for writes to a closed pipe.
func ForBrokenPipe() string {
	return format("the reading end of the pipe closed before output was written")
}

// ForInvalidSentinel returns hints for rejected TOC sentinels.
func ForInvalidSentinel() string {
	return formatHints([]string{
		"sentinels must be non-empty single-line strings",
		"start and end must differ",
	})
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
