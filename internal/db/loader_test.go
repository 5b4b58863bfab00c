package db_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fs2dt/fs2dt/internal/db"
	"github.com/fs2dt/fs2dt/internal/logging"
	"github.com/fs2dt/fs2dt/internal/testing/fixtures"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, b *fixtures.CatalogFixtureBuilder) (*db.Loader, func()) {
	t.Helper()
	path := b.Build(t)
	conn, err := db.Open(context.Background(), path)
	require.NoError(t, err)
	return db.NewLoader(conn, logging.NewNullLogger(), nil), func() { _ = conn.Close() }
}

func TestLoad_FullCatalog(t *testing.T) {
	b := fixtures.NewCatalogFixtureBuilder().
		AddTag(1, "People", 0, true).
		AddTag(2, "Hidden", 0, false).
		AddTag(3, "Family", 1, false).
		AddRoll(1, 1000000000).
		AddPhoto(fixtures.PhotoRow{ID: 1, Time: 1000000000, BaseURI: "file:///pics/", Filename: "img.jpg",
			Description: fixtures.Ptr("Beach day"), RollID: 1, DefaultVersionID: 1, Rating: fixtures.Ptr(4)}).
		AddVersion(1, 1, "Original", "file:///pics/", "img.jpg", "abc123").
		AddVersion(1, 2, "Modified", "file:///pics/", "img%20%281%29.jpg", "def456").
		LinkTag(1, 3)

	loader, closeDB := loadFixture(t, b)
	defer closeDB()

	cat, err := loader.Load(context.Background())
	require.NoError(t, err)

	stats := cat.Stats()
	assert.Equal(t, 3, stats.Tags)
	assert.Equal(t, 1, stats.Rolls)
	assert.Equal(t, 1, stats.Photos)
	assert.Equal(t, 2, stats.Versions)
	assert.Equal(t, int64(2), cat.Tags.HiddenID())

	photo, ok := cat.Photo(1)
	require.True(t, ok)
	assert.Equal(t, "/pics/img.jpg", photo.FilePath)
	assert.Equal(t, "Beach day", photo.Description)
	assert.Equal(t, 4, photo.Rating)

	versions := photo.Versions()
	require.Len(t, versions, 2)
	assert.Equal(t, "/pics/img.jpg", versions[0].FilePath)
	assert.Equal(t, "/pics/img (1).jpg", versions[1].FilePath)
	assert.Equal(t, "abc123", versions[0].ImportMD5)

	photoTags := photo.Tags()
	require.Len(t, photoTags, 1)
	assert.Equal(t, "Family", photoTags[0].Name)

	family, ok := cat.Tags.Lookup(3)
	require.True(t, ok)
	path, err := cat.Tags.AncestryPath(family)
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Family"}, path)
}

func TestLoad_NullColumns(t *testing.T) {
	b := fixtures.NewCatalogFixtureBuilder().
		AddRoll(1, 0).
		AddPhoto(fixtures.PhotoRow{ID: 7, BaseURI: "file:///p/", Filename: "a.jpg", RollID: 1, DefaultVersionID: 1})

	loader, closeDB := loadFixture(t, b)
	defer closeDB()

	cat, err := loader.Load(context.Background())
	require.NoError(t, err)

	photo, ok := cat.Photo(7)
	require.True(t, ok)
	assert.Equal(t, 0, photo.Rating)
	assert.Empty(t, photo.Description)
	assert.Empty(t, photo.Versions())
}

func TestLoad_MissingHiddenTagSetting(t *testing.T) {
	loader, closeDB := loadFixture(t, fixtures.NewCatalogFixtureBuilder().WithoutHiddenTag())
	defer closeDB()

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs2dt.ErrCatalogAccess)
}

func TestLoad_NonNumericHiddenTagSetting(t *testing.T) {
	loader, closeDB := loadFixture(t, fixtures.NewCatalogFixtureBuilder().WithHiddenTag("hidden"))
	defer closeDB()

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs2dt.ErrCatalogAccess)
}

func TestLoad_UnknownTagLink(t *testing.T) {
	b := fixtures.NewCatalogFixtureBuilder().
		AddRoll(1, 0).
		AddPhoto(fixtures.PhotoRow{ID: 1, BaseURI: "file:///p/", Filename: "a.jpg", RollID: 1, DefaultVersionID: 1}).
		LinkTag(1, 99)

	loader, closeDB := loadFixture(t, b)
	defer closeDB()

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs2dt.ErrReferentialIntegrity)
}

func TestLoad_ReportsProgressPhases(t *testing.T) {
	b := fixtures.NewCatalogFixtureBuilder().AddTag(1, "A", 0, false).AddRoll(1, 0)
	for i := int64(1); i <= 25; i++ {
		b.AddPhoto(fixtures.PhotoRow{ID: i, BaseURI: "file:///p/", Filename: "a.jpg", RollID: 1, DefaultVersionID: 1})
	}
	path := b.Build(t)
	conn, err := db.Open(context.Background(), path)
	require.NoError(t, err)
	defer conn.Close()

	final := map[string]float64{}
	var order []string
	progress := func(phase string, fraction float64) {
		if _, seen := final[phase]; !seen {
			order = append(order, phase)
		}
		assert.GreaterOrEqual(t, fraction, 0.0)
		assert.LessOrEqual(t, fraction, 1.0)
		final[phase] = fraction
	}

	_, err = db.NewLoader(conn, logging.NewNullLogger(), progress).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{db.PhaseTags, db.PhaseRolls, db.PhasePhotos, db.PhaseVersions}, order)
	for _, phase := range order {
		assert.Equal(t, 1.0, final[phase], phase)
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "nope.db"))
		assert.ErrorIs(t, err, fs2dt.ErrCatalogAccess)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := db.Open(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, fs2dt.ErrCatalogAccess)
	})

	t.Run("not a database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photos.db")
		require.NoError(t, os.WriteFile(path, []byte("this is not sqlite, just plain text padding the header"), 0o644))
		conn, err := db.Open(context.Background(), path)
		if err == nil {
			defer conn.Close()
			_, err = db.NewLoader(conn, logging.NewNullLogger(), nil).Load(context.Background())
		}
		assert.ErrorIs(t, err, fs2dt.ErrCatalogAccess)
	})
}

func TestOpen_PathWithReservedCharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "odd#dir?x%")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	src := fixtures.NewCatalogFixtureBuilder().Build(t)
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	dst := filepath.Join(dir, "photos.db")
	require.NoError(t, os.WriteFile(dst, data, 0o644))

	conn, err := db.Open(context.Background(), dst)
	require.NoError(t, err)
	defer conn.Close()

	cat, err := db.NewLoader(conn, logging.NewNullLogger(), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Stats().Photos)
}
