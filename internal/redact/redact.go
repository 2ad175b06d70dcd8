// Package redact strips internal details from strings before they are
// logged. The storage layer works against local files, so the main leak
// risk here is filesystem paths and OS error text ending up in logs that
// may be shipped elsewhere.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedFileErrorText   = "[REDACTED_FILE_ERROR]"
)

var (
	// Absolute unix-style paths with at least two segments.
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Windows drive paths.
	winPathRegex = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// OS-level file error phrases that reveal filesystem state.
	fileErrorRegex = regexp.MustCompile(
		`(?i)(?:no such file or directory|permission denied|file exists|is a directory)`,
	)
)

// String returns the input with filesystem paths and file error phrases
// replaced by placeholders.
func String(input string) string {
	if input == "" {
		return input
	}

	result := unixPathRegex.ReplaceAllString(input, RedactedPathPlaceholder)
	result = winPathRegex.ReplaceAllString(result, RedactedPathPlaceholder)
	result = fileErrorRegex.ReplaceAllString(result, RedactedFileErrorText)
	return result
}

// Error is a convenience wrapper around String for error values.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
