package fs2dt

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Export completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration
	ExitCatalogError   = 11 // Catalog could not be opened or read
	ExitWriteFailed    = 12 // One or more sidecars could not be written
	ExitIntegrityError = 13 // Catalog references an entity that does not exist
	ExitApprovalDenied = 14 // User denied sidecar overwrite
)

const (
	// SidecarExtension is appended to the image path to name its sidecar.
	SidecarExtension = ".xmp"

	// HiddenTagSetting is the meta table key holding the hidden tag id.
	HiddenTagSetting = "Hidden Tag Id"

	// RollTagName is the root of the synthetic per-roll tag.
	RollTagName = "F-Roll"

	// GroupTagName is the root of the synthetic tag grouping versions of one import.
	GroupTagName = "F-Group"

	// DisplaySeparator joins tag ancestry for human-readable output.
	DisplaySeparator = "->"

	// HierarchySeparator joins tag ancestry in lr:hierarchicalSubject entries.
	HierarchySeparator = "|"

	// RollTimeLayout renders roll timestamps (ISO-8601, space separated).
	RollTimeLayout = "2006-01-02 15:04:05"

	// DefaultCatalogName is the F-Spot catalog file name.
	DefaultCatalogName = "photos.db"

	// OverwriteConfirmation must be typed to approve overwriting existing sidecars.
	OverwriteConfirmation = "overwrite"
)
