package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fs2dt/fs2dt/internal/config"
	"github.com/fs2dt/fs2dt/internal/export"
	"github.com/fs2dt/fs2dt/internal/files/filesystem"
	"github.com/fs2dt/fs2dt/internal/logging"
	"github.com/fs2dt/fs2dt/internal/tui"
	"github.com/fs2dt/fs2dt/internal/ui"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write darktable sidecars for catalog photos",
	Long: `Export loads the F-Spot catalog and writes <image>.xmp next to every
version of every photo stored under --limit.

Each sidecar contains:
  - xmp:rating from the photo rating (0 when unset)
  - dc:description from the photo description (omitted when empty)
  - dc:subject with every tag name on the path from root to tag
  - lr:hierarchicalSubject with each path joined by "|"
  - F-Roll|<import time> and F-Group|<import md5> pseudo-tags

Existing sidecars that would change are only replaced after confirmation
(type 'overwrite'). --force, or running without a terminal, skips the prompt.

Examples:
  # Preview sidecars for one directory
  fs2dt export --limit ~/Pictures/2008 --dry-run

  # Export everything from a specific catalog
  fs2dt export --catalog ~/backup/photos.db --force

  # Leave identical sidecars untouched, drop hidden tags
  fs2dt export --skip-unchanged --exclude-hidden`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

type exportFlagValues struct {
	catalog       string
	limit         string
	timezone      string
	dryRun        bool
	force         bool
	excludeHidden bool
	skipUnchanged bool
}

var exportFlags exportFlagValues

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlags.catalog, "catalog", "f", "",
		"F-Spot catalog file (alias --fspotdb)\n"+
			"Precedence: --catalog > $FS2DT_CATALOG > fs2dt.yaml > ~/.config/f-spot/photos.db > ~/photos.db")
	exportCmd.Flags().StringVarP(&exportFlags.limit, "limit", "l", "",
		"Only export photos stored under this directory (default: /)")
	exportCmd.Flags().StringVar(&exportFlags.timezone, "timezone", "",
		"IANA time zone for F-Roll timestamps (default: local time)")
	exportCmd.Flags().BoolVar(&exportFlags.dryRun, "dry-run", false,
		"Write sidecars to standard output instead of files (alias --test)")
	exportCmd.Flags().BoolVar(&exportFlags.force, "force", false,
		"Replace existing sidecars without asking")
	exportCmd.Flags().BoolVar(&exportFlags.excludeHidden, "exclude-hidden", false,
		"Leave tags under the hidden tag out of the sidecars")
	exportCmd.Flags().BoolVar(&exportFlags.skipUnchanged, "skip-unchanged", false,
		"Do not rewrite sidecars whose content would not change")

	exportCmd.Flags().SetNormalizeFunc(normalizeFlagAliases)
}

// buildExportConfig merges flags, environment and config file into an
// ExportConfig and validates it.
func buildExportConfig(cmd *cobra.Command, verbose bool) (fs2dt.ExportConfig, error) {
	cfg, err := loadConfig(getConfigFlag(cmd))
	if err != nil {
		return fs2dt.ExportConfig{}, err
	}

	catalogPath, err := resolveCatalogPath(exportFlags.catalog, cfg)
	if err != nil {
		return fs2dt.ExportConfig{}, err
	}

	limit, err := resolveLimit(exportFlags.limit, cfg)
	if err != nil {
		return fs2dt.ExportConfig{}, err
	}

	if exportFlags.timezone != "" {
		cfg.Timezone = exportFlags.timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return fs2dt.ExportConfig{}, err
	}

	exportConfig := fs2dt.ExportConfig{
		CatalogPath:   catalogPath,
		Limit:         limit,
		DryRun:        exportFlags.dryRun,
		Force:         exportFlags.force,
		ExcludeHidden: exportFlags.excludeHidden || cfg.ExcludeHidden,
		SkipUnchanged: exportFlags.skipUnchanged || cfg.SkipUnchanged,
		Location:      loc,
		Verbose:       verbose,
	}

	if err := exportConfig.Validate(); err != nil {
		return fs2dt.ExportConfig{}, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Export configuration:\n")
		fmt.Fprintf(os.Stderr, "  Catalog: %s\n", exportConfig.CatalogPath)
		fmt.Fprintf(os.Stderr, "  Limit: %s\n", exportConfig.Limit)
		fmt.Fprintf(os.Stderr, "  Time zone: %s\n", loc)
		fmt.Fprintf(os.Stderr, "  Dry run: %t\n", exportConfig.DryRun)
	}

	return exportConfig, nil
}

// resolveLimit applies flag > config/env > "/" and makes the result absolute.
func resolveLimit(flagValue string, cfg *config.Config) (string, error) {
	limit := flagValue
	if limit == "" {
		limit = cfg.Limit
	}
	if limit == "" {
		return "/", nil
	}
	abs, err := filepath.Abs(limit)
	if err != nil {
		return "", fmt.Errorf("invalid limit %q: %v: %w", limit, err, fs2dt.ErrInvalidConfig)
	}
	return filepath.ToSlash(abs), nil
}

// selectApprover asks on a terminal and approves automatically otherwise.
func selectApprover(force, interactive, verbose bool) fs2dt.Approver {
	if force || !interactive {
		return ui.NewForcedApprover(verbose)
	}
	return ui.NewInteractiveApprover(verbose)
}

func runExport(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	exportConfig, err := buildExportConfig(cmd, verbose)
	if err != nil {
		return err
	}

	interactive := tui.IsInteractive()
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cmd, exportConfig.CatalogPath, logger, interactive)
	if err != nil {
		return err
	}

	svc := export.NewExportService(
		filesystem.NewOSFileSystem(),
		cmd.OutOrStdout(),
		selectApprover(exportConfig.Force, interactive, verbose),
		logger,
	)

	start := time.Now()
	summary, err := svc.Export(ctx, cat, exportConfig)
	logger.Info("%s in %s", summary, time.Since(start).Round(time.Millisecond))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
