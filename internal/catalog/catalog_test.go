package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/fs2dt/fs2dt/internal/tags"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	registry := tags.NewRegistry(-1)
	_, err := registry.Add(tags.Tag{ID: 1, Name: "Family"})
	require.NoError(t, err)
	_, err = registry.Add(tags.Tag{ID: 2, Name: "Beach"})
	require.NoError(t, err)
	return New(registry)
}

func addPhoto(t *testing.T, c *Catalog, id int64, baseURI, filename string) *Photo {
	t.Helper()
	p, err := c.AddPhoto(Photo{ID: id, BaseURI: baseURI, Filename: filename, RollID: 1})
	require.NoError(t, err)
	return p
}

func TestRoll_XmpTags(t *testing.T) {
	r := &Roll{ID: 3, Time: 1000000000}
	names, joined := r.XmpTags(time.UTC)
	assert.Equal(t, []string{"F-Roll", "2001-09-09 01:46:40"}, names)
	assert.Equal(t, "F-Roll|2001-09-09 01:46:40", joined)
	assert.Equal(t, "3: 2001-09-09 01:46:40", r.Display(time.UTC))
}

func TestCatalog_Roll_Missing(t *testing.T) {
	c := newTestCatalog(t)
	_, err := c.AddRoll(Roll{ID: 1, Time: 5})
	require.NoError(t, err)

	r, err := c.Roll(1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), r.Time)

	_, err = c.Roll(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs2dt.ErrReferentialIntegrity))
}

func TestCatalog_AddRoll_Duplicate(t *testing.T) {
	c := newTestCatalog(t)
	_, err := c.AddRoll(Roll{ID: 1})
	require.NoError(t, err)
	_, err = c.AddRoll(Roll{ID: 1})
	assert.True(t, errors.Is(err, fs2dt.ErrReferentialIntegrity))
}

func TestCatalog_AddPhoto_ResolvesFilePath(t *testing.T) {
	c := newTestCatalog(t)
	p := addPhoto(t, c, 1, "file:///home/me/Photos/2008", "img.jpg")
	assert.Equal(t, "/home/me/Photos/2008/img.jpg", p.FilePath)

	got, ok := c.Photo(1)
	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestCatalog_AttachVersion(t *testing.T) {
	c := newTestCatalog(t)
	p := addPhoto(t, c, 1, "file:///pics/", "img.jpg")

	for _, id := range []int64{3, 1, 2} {
		_, err := c.AttachVersion(PhotoVersion{
			PhotoID:   1,
			VersionID: id,
			BaseURI:   "file:///pics/",
			Filename:  "img.jpg",
			ImportMD5: "md5-" + string(rune('0'+id)),
		})
		require.NoError(t, err)
	}

	versions := p.Versions()
	require.Len(t, versions, 3)
	assert.Equal(t, int64(1), versions[0].VersionID)
	assert.Equal(t, int64(2), versions[1].VersionID)
	assert.Equal(t, int64(3), versions[2].VersionID)
	assert.Same(t, p, versions[0].Photo())
	assert.Equal(t, "/pics/img.jpg", versions[0].FilePath)

	group, ok := p.GroupVersion()
	require.True(t, ok)
	assert.Equal(t, "md5-1", group.ImportMD5)

	v, ok := p.Version(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), v.VersionID)
}

func TestCatalog_AttachVersion_UnknownPhoto(t *testing.T) {
	c := newTestCatalog(t)
	_, err := c.AttachVersion(PhotoVersion{PhotoID: 42, VersionID: 1, BaseURI: "file:///x/", Filename: "a.jpg"})
	assert.True(t, errors.Is(err, fs2dt.ErrReferentialIntegrity))
}

func TestPhoto_GroupVersion_NoVersions(t *testing.T) {
	c := newTestCatalog(t)
	p := addPhoto(t, c, 1, "file:///pics/", "img.jpg")
	_, ok := p.GroupVersion()
	assert.False(t, ok)
}

func TestCatalog_AttachTag(t *testing.T) {
	c := newTestCatalog(t)
	p := addPhoto(t, c, 1, "file:///pics/", "img.jpg")

	require.NoError(t, c.AttachTag(1, 2))
	require.NoError(t, c.AttachTag(1, 1))
	require.NoError(t, c.AttachTag(1, 2))

	got := p.Tags()
	require.Len(t, got, 2, "duplicate links collapse")
	assert.Equal(t, "Family", got[0].Name)
	assert.Equal(t, "Beach", got[1].Name)
}

func TestCatalog_AttachTag_UnknownReferences(t *testing.T) {
	c := newTestCatalog(t)
	addPhoto(t, c, 1, "file:///pics/", "img.jpg")

	err := c.AttachTag(1, 99)
	assert.True(t, errors.Is(err, fs2dt.ErrReferentialIntegrity))

	err = c.AttachTag(99, 1)
	assert.True(t, errors.Is(err, fs2dt.ErrReferentialIntegrity))
}

func TestCatalog_PhotosUnderPath(t *testing.T) {
	c := newTestCatalog(t)
	addPhoto(t, c, 1, "file:///a/c/", "x.jpg")
	addPhoto(t, c, 2, "file:///a/b/", "y.jpg")
	addPhoto(t, c, 3, "file:///a/b/deep/", "z.jpg")
	addPhoto(t, c, 4, "file:///a/bc/", "w.jpg")

	ids := func(photos []*Photo) []int64 {
		var out []int64
		for _, p := range photos {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []int64{3, 2}, ids(c.PhotosUnderPath("/a/b")))
	assert.Equal(t, []int64{3, 2}, ids(c.PhotosUnderPath("/a/b/")))
	assert.Equal(t, []int64{1}, ids(c.PhotosUnderPath("/a/c")))
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(c.PhotosUnderPath("/")))
	assert.Len(t, c.PhotosUnderPath(""), 4)
	assert.Empty(t, c.PhotosUnderPath("/nowhere"))
}

func TestCatalog_PhotosAndStats(t *testing.T) {
	c := newTestCatalog(t)
	_, err := c.AddRoll(Roll{ID: 1})
	require.NoError(t, err)
	addPhoto(t, c, 2, "file:///p/", "b.jpg")
	addPhoto(t, c, 1, "file:///p/", "a.jpg")
	_, err = c.AttachVersion(PhotoVersion{PhotoID: 1, VersionID: 1, BaseURI: "file:///p/", Filename: "a.jpg"})
	require.NoError(t, err)

	photos := c.Photos()
	require.Len(t, photos, 2)
	assert.Equal(t, int64(1), photos[0].ID)

	assert.Equal(t, Stats{Tags: 2, Rolls: 1, Photos: 2, Versions: 1}, c.Stats())
}
