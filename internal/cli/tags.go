package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fs2dt/fs2dt/internal/catalog"
	"github.com/fs2dt/fs2dt/internal/db"
	"github.com/fs2dt/fs2dt/internal/logging"
	"github.com/fs2dt/fs2dt/internal/tui"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the catalog's tag hierarchy",
	Long: `Tags prints every catalog tag as its path from the root, joined by "->",
and marks tags that sit under F-Spot's hidden tag.

Example:
  fs2dt tags --catalog ~/.config/f-spot/photos.db`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

var tagsCatalog string

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().StringVarP(&tagsCatalog, "catalog", "f", "",
		"F-Spot catalog file (alias --fspotdb)")
	tagsCmd.Flags().SetNormalizeFunc(normalizeFlagAliases)
}

func runTags(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := loadConfig(getConfigFlag(cmd))
	if err != nil {
		return err
	}
	catalogPath, err := resolveCatalogPath(tagsCatalog, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)
	cat, err := loadCatalog(ctx, cmd, catalogPath, logger, tui.IsInteractive())
	if err != nil {
		return err
	}
	return printTags(cmd, cat, verbose)
}

// printTags writes one line per tag, ordered by id.
func printTags(cmd *cobra.Command, cat *catalog.Catalog, verbose bool) error {
	out := cmd.OutOrStdout()
	for _, tag := range cat.Tags.All() {
		display, err := cat.Tags.DisplayString(tag)
		if err != nil {
			return err
		}
		hidden, err := cat.Tags.IsHidden(tag)
		if err != nil {
			return err
		}

		line := tui.TagIDStyle.Render(fmt.Sprintf("%5d", tag.ID)) + "  " + tui.TagPathStyle.Render(display)
		if hidden {
			line += " " + tui.HiddenStyle.Render("(hidden)")
		}
		if verbose {
			line += " " + tui.TagIDStyle.Render(tag.String())
		}
		fmt.Fprintln(out, line)
	}

	stats := cat.Stats()
	fmt.Fprintf(cmd.ErrOrStderr(), "%d tags, hidden tag id %d\n", stats.Tags, cat.Tags.HiddenID())
	return nil
}

// loadCatalog opens the catalog read-only and loads it with progress on stderr.
func loadCatalog(ctx context.Context, cmd *cobra.Command, path string, logger fs2dt.Logger, interactive bool) (*catalog.Catalog, error) {
	conn, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	logger.Verbose("Reading catalog %s", path)
	reporter := tui.NewProgressReporter(cmd.ErrOrStderr(), interactive)
	cat, err := db.NewLoader(conn, logger, reporter.Report).Load(ctx)
	reporter.Done()
	if err != nil {
		return nil, err
	}
	return cat, nil
}
