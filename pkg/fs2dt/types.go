package fs2dt

import (
	"errors"
	"fmt"
	"time"
)

// ExportConfig contains all parameters needed for an export run.
type ExportConfig struct {
	// CatalogPath is the F-Spot SQLite catalog to read
	CatalogPath string

	// Limit restricts output to photos stored under this directory ("/" selects all)
	Limit string

	// DryRun writes sidecars to the console instead of the filesystem
	DryRun bool

	// Force skips the overwrite confirmation prompt
	Force bool

	// ExcludeHidden drops tags under the hidden tag from subject lists
	ExcludeHidden bool

	// SkipUnchanged leaves existing sidecars with identical content untouched
	SkipUnchanged bool

	// Location renders roll timestamps; nil means time.Local
	Location *time.Location

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ExportConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ExportConfig) Validate() error {
	var errs []error

	if c.CatalogPath == "" {
		errs = append(errs, fmt.Errorf("CatalogPath is required: %w", ErrInvalidConfig))
	}

	if c.Limit == "" {
		errs = append(errs, fmt.Errorf("Limit is required: %w", ErrInvalidConfig))
	}

	if c.Force && c.DryRun {
		errs = append(errs, fmt.Errorf("force has no effect with dry-run: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// TimeLocation returns the location used for roll timestamps.
func (c *ExportConfig) TimeLocation() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// ExportSummary reports what an export run did.
type ExportSummary struct {
	Photos    int
	Written   int
	Unchanged int
	Failed    int
}

// String returns a one-line human-readable summary.
func (s ExportSummary) String() string {
	return fmt.Sprintf("%d photos: %d sidecars written, %d unchanged, %d failed",
		s.Photos, s.Written, s.Unchanged, s.Failed)
}
