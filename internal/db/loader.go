package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fs2dt/fs2dt/internal/catalog"
	"github.com/fs2dt/fs2dt/internal/tags"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
	"github.com/jmoiron/sqlx"
)

// Progress phase names reported while loading.
const (
	PhaseTags     = "Loading Tags"
	PhaseRolls    = "Loading Rolls"
	PhasePhotos   = "Loading Photos"
	PhaseVersions = "Preparing Photo Versions/Tags"
)

const progressStep = 10

// Loader reads an open catalog database into memory.
type Loader struct {
	db       *sqlx.DB
	logger   fs2dt.Logger
	progress fs2dt.ProgressFunc
}

// NewLoader creates a loader. A nil progress function reports nothing.
func NewLoader(db *sqlx.DB, logger fs2dt.Logger, progress fs2dt.ProgressFunc) *Loader {
	if progress == nil {
		progress = fs2dt.NoProgress
	}
	return &Loader{db: db, logger: logger, progress: progress}
}

// Load reads every tag, roll, photo, version and tag link. Any dangling
// reference aborts the load with an error wrapping ErrReferentialIntegrity.
func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	hiddenID, err := l.hiddenTagID(ctx)
	if err != nil {
		return nil, err
	}
	l.logger.Verbose("Hidden tag id: %d", hiddenID)

	registry, err := l.loadTags(ctx, hiddenID)
	if err != nil {
		return nil, err
	}
	cat := catalog.New(registry)

	if err := l.loadRolls(ctx, cat); err != nil {
		return nil, err
	}
	if err := l.loadPhotos(ctx, cat); err != nil {
		return nil, err
	}
	if err := l.loadPhotoDetails(ctx, cat); err != nil {
		return nil, err
	}

	stats := cat.Stats()
	l.logger.Verbose("Loaded %d tags, %d rolls, %d photos, %d versions",
		stats.Tags, stats.Rolls, stats.Photos, stats.Versions)
	return cat, nil
}

func (l *Loader) hiddenTagID(ctx context.Context) (int64, error) {
	var data sql.NullString
	err := l.db.GetContext(ctx, &data, queryMetaValue, fs2dt.HiddenTagSetting)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("catalog has no %q setting: %w", fs2dt.HiddenTagSetting, fs2dt.ErrCatalogAccess)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %q: %v: %w", fs2dt.HiddenTagSetting, err, fs2dt.ErrCatalogAccess)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(data.String), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %q value %q: %w", fs2dt.HiddenTagSetting, data.String, fs2dt.ErrCatalogAccess)
	}
	return id, nil
}

func (l *Loader) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := l.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("failed to count rows: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	return n, nil
}

func (l *Loader) report(phase string, done, total int) {
	if done%progressStep != 0 {
		return
	}
	if total <= 0 {
		return
	}
	l.progress(phase, float64(done)/float64(total))
}

func (l *Loader) loadTags(ctx context.Context, hiddenID int64) (*tags.Registry, error) {
	total, err := l.count(ctx, queryCountTags)
	if err != nil {
		return nil, err
	}

	rows, err := l.db.QueryxContext(ctx, queryTags)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	defer rows.Close()

	registry := tags.NewRegistry(hiddenID)
	done := 0
	for rows.Next() {
		var row tagRow
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %v: %w", err, fs2dt.ErrCatalogAccess)
		}
		if _, err := registry.Add(row.toTag()); err != nil {
			return nil, err
		}
		done++
		l.report(PhaseTags, done, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	l.progress(PhaseTags, 1.0)
	return registry, nil
}

func (l *Loader) loadRolls(ctx context.Context, cat *catalog.Catalog) error {
	total, err := l.count(ctx, queryCountRolls)
	if err != nil {
		return err
	}

	rows, err := l.db.QueryxContext(ctx, queryRolls)
	if err != nil {
		return fmt.Errorf("failed to query rolls: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	defer rows.Close()

	done := 0
	for rows.Next() {
		var row rollRow
		if err := rows.StructScan(&row); err != nil {
			return fmt.Errorf("failed to scan roll: %v: %w", err, fs2dt.ErrCatalogAccess)
		}
		if _, err := cat.AddRoll(catalog.Roll{ID: row.ID, Time: row.Time}); err != nil {
			return err
		}
		done++
		l.report(PhaseRolls, done, total)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read rolls: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	l.progress(PhaseRolls, 1.0)
	return nil
}

func (l *Loader) loadPhotos(ctx context.Context, cat *catalog.Catalog) error {
	total, err := l.count(ctx, queryCountPhotos)
	if err != nil {
		return err
	}

	rows, err := l.db.QueryxContext(ctx, queryPhotos)
	if err != nil {
		return fmt.Errorf("failed to query photos: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	defer rows.Close()

	done := 0
	for rows.Next() {
		var row photoRow
		if err := rows.StructScan(&row); err != nil {
			return fmt.Errorf("failed to scan photo: %v: %w", err, fs2dt.ErrCatalogAccess)
		}
		if _, err := cat.AddPhoto(row.toPhoto()); err != nil {
			return err
		}
		done++
		l.report(PhasePhotos, done, total)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read photos: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	l.progress(PhasePhotos, 1.0)
	return nil
}

// loadPhotoDetails attaches versions and tag links photo by photo.
func (l *Loader) loadPhotoDetails(ctx context.Context, cat *catalog.Catalog) error {
	versionStmt, err := l.db.PreparexContext(ctx, queryPhotoVersions)
	if err != nil {
		return fmt.Errorf("failed to prepare version query: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	defer versionStmt.Close()

	tagStmt, err := l.db.PreparexContext(ctx, queryPhotoTags)
	if err != nil {
		return fmt.Errorf("failed to prepare tag query: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	defer tagStmt.Close()

	photos := cat.Photos()
	for i, photo := range photos {
		var versions []versionRow
		if err := versionStmt.SelectContext(ctx, &versions, photo.ID); err != nil {
			return fmt.Errorf("failed to read versions of photo %d: %v: %w", photo.ID, err, fs2dt.ErrCatalogAccess)
		}
		for _, v := range versions {
			if _, err := cat.AttachVersion(v.toVersion()); err != nil {
				return err
			}
		}

		var links []photoTagRow
		if err := tagStmt.SelectContext(ctx, &links, photo.ID); err != nil {
			return fmt.Errorf("failed to read tags of photo %d: %v: %w", photo.ID, err, fs2dt.ErrCatalogAccess)
		}
		for _, link := range links {
			if err := cat.AttachTag(link.PhotoID, link.TagID); err != nil {
				return err
			}
		}
		l.report(PhaseVersions, i+1, len(photos))
	}
	l.progress(PhaseVersions, 1.0)
	return nil
}
