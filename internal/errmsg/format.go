// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by phase.
const (
	// Scan operations
	OpReadTags Op = "read file tags"

	// Move operations
	OpMoveFile   Op = "move file"
	OpCreateDir  Op = "create destination directory"
	OpCompare    Op = "compare file contents"
	OpDropSource Op = "remove duplicate source file"

	// Cleanup operations
	OpDeleteSidecar Op = "delete sidecar file"
	OpPruneDir      Op = "remove empty directory"

	// Configuration
	OpLoadConfig Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
