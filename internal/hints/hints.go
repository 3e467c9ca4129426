// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound suggests --config, or creating the named config in the
// user config directory when it is known.
func ForConfigNotFound(userConfigDir, name string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" && name != "" && !strings.ContainsAny(name, `/\`) {
		hint += " or create " + filepath.Join(userConfigDir, name+".yaml")
	}
	return format(hint)
}

// ForTimeout returns a hint about raising the per-file timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownLanguage explains how to get past a strict language check.
func ForUnknownLanguage() string {
	return format("fix the fence language or drop --strict-lang to only warn")
}

// ForTokenize points at the usual cause of list marker errors.
func ForTokenize() string {
	return format("indent nested list items with spaces, not tabs")
}

// ForSyntax covers unexpected token errors, mostly images sharing a line
// with text.
func ForSyntax() string {
	return formatHints([]string{
		"images must stand alone on their line",
		"see the reported line number",
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
