package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fs2dt/fs2dt/internal/catalog"
	"github.com/fs2dt/fs2dt/internal/checksum"
	"github.com/fs2dt/fs2dt/internal/files/filesystem"
	"github.com/fs2dt/fs2dt/internal/xmp"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// SidecarPath returns the sidecar location for an image file.
func SidecarPath(imagePath string) string {
	return imagePath + fs2dt.SidecarExtension
}

// sidecar is one planned output file.
type sidecar struct {
	photoID   int64
	versionID int64
	path      string
	content   []byte

	exists    bool
	same      bool
	unchanged bool
}

// ExportService writes sidecars for catalog photos.
// Thread-Safety: NOT safe for concurrent Export() calls on the same instance.
type ExportService struct {
	fs       filesystem.FileSystemProvider
	stdout   io.Writer
	approver fs2dt.Approver
	logger   fs2dt.Logger
	checksum checksum.Calculator
}

// NewExportService creates an ExportService. Dry-run documents go to stdout.
// Panics on nil dependencies.
func NewExportService(
	fs filesystem.FileSystemProvider,
	stdout io.Writer,
	approver fs2dt.Approver,
	logger fs2dt.Logger,
) *ExportService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if stdout == nil {
		panic("stdout cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ExportService{
		fs:       fs,
		stdout:   stdout,
		approver: approver,
		logger:   logger,
		checksum: checksum.New(),
	}
}

// Export renders and writes sidecars for every photo under config.Limit.
//
// Failures of individual versions are logged and collected; the remaining
// versions are still processed and the returned error joins every failure.
// Cancelling ctx stops the run between photos.
func (s *ExportService) Export(ctx context.Context, cat *catalog.Catalog, config fs2dt.ExportConfig) (fs2dt.ExportSummary, error) {
	photos := cat.PhotosUnderPath(config.Limit)
	summary := fs2dt.ExportSummary{Photos: len(photos)}
	s.logger.Verbose("Selected %d photos under %s", len(photos), config.Limit)

	opts := SubjectOptions{Location: config.TimeLocation(), ExcludeHidden: config.ExcludeHidden}

	var failures []error
	var planned []*sidecar
	for _, photo := range photos {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		items, err := s.plan(cat, photo, opts)
		if err != nil {
			s.logger.Error("%v", err)
			failures = append(failures, err)
			summary.Failed += len(photo.Versions())
			continue
		}
		planned = append(planned, items...)
	}

	if config.DryRun {
		for _, item := range planned {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			if err := s.print(item); err != nil {
				failures = append(failures, err)
				summary.Failed++
				continue
			}
			summary.Written++
		}
		return summary, errors.Join(failures...)
	}

	s.inspect(planned, config.SkipUnchanged)
	if err := s.approve(ctx, planned); err != nil {
		return summary, err
	}

	for _, item := range planned {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if item.unchanged {
			s.logger.Verbose("Unchanged %s", item.path)
			summary.Unchanged++
			continue
		}
		if err := s.fs.WriteFile(item.path, item.content); err != nil {
			werr := fmt.Errorf("photo %d version %d: %v: %w", item.photoID, item.versionID, err, fs2dt.ErrFileWrite)
			s.logger.Error("%v", werr)
			failures = append(failures, werr)
			summary.Failed++
			continue
		}
		s.logger.Verbose("Wrote %s", item.path)
		summary.Written++
	}

	return summary, errors.Join(failures...)
}

// plan renders the photo once and targets every version, lowest id first.
func (s *ExportService) plan(cat *catalog.Catalog, photo *catalog.Photo, opts SubjectOptions) ([]*sidecar, error) {
	versions := photo.Versions()
	if len(versions) == 0 {
		s.logger.Verbose("Photo %d has no versions", photo.ID)
		return nil, nil
	}

	subjects, err := BuildSubjects(cat, photo, opts, s.logger)
	if err != nil {
		return nil, err
	}

	doc := xmp.Render(xmp.Sidecar{
		Rating:       photo.Rating,
		Description:  photo.Description,
		Flat:         subjects.Flat,
		Hierarchical: subjects.Hierarchical,
	})
	content, err := xmp.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("photo %d: failed to encode sidecar: %v: %w", photo.ID, err, fs2dt.ErrFileWrite)
	}

	items := make([]*sidecar, 0, len(versions))
	for _, v := range versions {
		items = append(items, &sidecar{
			photoID:   photo.ID,
			versionID: v.VersionID,
			path:      SidecarPath(v.FilePath),
			content:   content,
		})
	}
	return items, nil
}

func (s *ExportService) print(item *sidecar) error {
	if _, err := fmt.Fprintf(s.stdout, "SideCar(%s)\n", item.path); err != nil {
		return fmt.Errorf("failed to print sidecar %s: %v: %w", item.path, err, fs2dt.ErrFileWrite)
	}
	if _, err := s.stdout.Write(item.content); err != nil {
		return fmt.Errorf("failed to print sidecar %s: %v: %w", item.path, err, fs2dt.ErrFileWrite)
	}
	return nil
}

// inspect marks sidecars that already exist and those whose current content
// matches the rendered document. Matching sidecars are left untouched only
// when skipUnchanged is set.
func (s *ExportService) inspect(planned []*sidecar, skipUnchanged bool) {
	for _, item := range planned {
		exists, err := s.fs.Exists(item.path)
		if err != nil {
			s.logger.Verbose("Cannot check %s: %v", item.path, err)
			continue
		}
		if !exists {
			continue
		}
		item.exists = true

		current, err := s.fs.ReadFile(item.path)
		if err != nil {
			s.logger.Verbose("Cannot read %s: %v", item.path, err)
			continue
		}
		item.same = checksum.Same(s.checksum, current, item.content)
		item.unchanged = skipUnchanged && item.same
	}
}

// approve asks once before any existing sidecar gets different content.
func (s *ExportService) approve(ctx context.Context, planned []*sidecar) error {
	existing := 0
	for _, item := range planned {
		if item.exists && !item.same {
			existing++
		}
	}
	if existing == 0 {
		return nil
	}

	approved, err := s.approver.RequestApproval(ctx, existing)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("%d existing sidecars were not replaced: %w", existing, fs2dt.ErrApprovalDenied)
	}
	return nil
}
