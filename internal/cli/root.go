package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fs2dt",
	Short: "Export an F-Spot catalog to darktable XMP sidecars",
	Long: `fs2dt reads an F-Spot photo catalog and writes one darktable compatible
XMP sidecar next to every photo version. Each sidecar carries the photo's
rating, description and tag hierarchy, plus the F-Roll (import batch) and
F-Group (original import) pseudo-tags.

The catalog is opened read-only. Sidecars are named <image>.xmp.

Configuration precedence: flag > FS2DT_* environment > fs2dt.yaml > default.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Catalog cannot be opened or read
  12 - One or more sidecars could not be written
  13 - Catalog references are inconsistent
  14 - User denied sidecar overwrite`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "",
		"Path to a config file (default: ./fs2dt.yaml when present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// getConfigFlag returns the --config value, or "" when unset.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
