package fs2dt

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := exporter.Run(ctx, photos)
//	if errors.Is(err, fs2dt.ErrFileWrite) {
//	    // Some sidecars were not written
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCatalogAccess indicates the catalog could not be opened, or a required
	// table or row is missing.
	ErrCatalogAccess = errors.New("catalog access failed")

	// ErrReferentialIntegrity indicates the catalog references a roll, tag or
	// photo that does not exist, or a tag ancestry chain does not terminate.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrFileWrite indicates a sidecar file could not be created or written.
	ErrFileWrite = errors.New("sidecar write failed")

	// ErrApprovalDenied indicates the user denied overwriting existing sidecars.
	ErrApprovalDenied = errors.New("approval denied")
)

// usageErrorPatterns are message fragments cobra produces for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrCatalogAccess):
		return ExitCatalogError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrFileWrite):
		return ExitWriteFailed
	case errors.Is(err, ErrReferentialIntegrity):
		return ExitIntegrityError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
