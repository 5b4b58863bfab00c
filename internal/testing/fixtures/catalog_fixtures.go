package fixtures

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// catalogSchema mirrors the F-Spot 0.8 tables read by the exporter.
const catalogSchema = `
CREATE TABLE meta (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	data TEXT
);
CREATE TABLE tags (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT UNIQUE,
	category_id   INTEGER,
	is_category   BOOLEAN,
	sort_priority INTEGER,
	icon          TEXT
);
CREATE TABLE rolls (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	time INTEGER NOT NULL
);
CREATE TABLE photos (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	time               INTEGER NOT NULL,
	base_uri           STRING NOT NULL,
	filename           STRING NOT NULL,
	description        TEXT,
	roll_id            INTEGER NOT NULL,
	default_version_id INTEGER NOT NULL,
	rating             INTEGER NULL
);
CREATE TABLE photo_versions (
	photo_id   INTEGER,
	version_id INTEGER,
	name       STRING,
	base_uri   STRING NOT NULL,
	filename   STRING NOT NULL,
	import_md5 TEXT NULL,
	protected  BOOLEAN,
	UNIQUE (photo_id, version_id)
);
CREATE TABLE photo_tags (
	photo_id INTEGER,
	tag_id   INTEGER,
	UNIQUE (photo_id, tag_id)
);
`

type statement struct {
	query string
	args  []interface{}
}

// CatalogFixtureBuilder provides a fluent API for building F-Spot catalog
// files used by loader, exporter and CLI tests.
//
// Example usage:
//
//	path := NewCatalogFixtureBuilder().
//	    WithHiddenTag("2").
//	    AddTag(1, "Family", 0, false).
//	    AddRoll(1, 1000000000).
//	    AddPhoto(PhotoRow{ID: 1, RollID: 1, BaseURI: "file:///pics/", Filename: "img.jpg"}).
//	    AddVersion(1, 1, "Original", "file:///pics/", "img.jpg", "abc123").
//	    LinkTag(1, 1).
//	    Build(t)
type CatalogFixtureBuilder struct {
	statements []statement
	noMeta     bool
	hiddenID   string
}

// PhotoRow is one photos table row. Nil Description and Rating store NULL.
type PhotoRow struct {
	ID               int64
	Time             int64
	BaseURI          string
	Filename         string
	Description      *string
	RollID           int64
	DefaultVersionID int64
	Rating           *int
}

// NewCatalogFixtureBuilder creates a builder whose hidden tag id is 2, the
// value F-Spot assigns to its built-in "Hidden" tag.
func NewCatalogFixtureBuilder() *CatalogFixtureBuilder {
	return &CatalogFixtureBuilder{hiddenID: "2"}
}

// WithHiddenTag sets the "Hidden Tag Id" meta value.
func (b *CatalogFixtureBuilder) WithHiddenTag(id string) *CatalogFixtureBuilder {
	b.hiddenID = id
	return b
}

// WithoutHiddenTag omits the "Hidden Tag Id" meta row.
func (b *CatalogFixtureBuilder) WithoutHiddenTag() *CatalogFixtureBuilder {
	b.noMeta = true
	return b
}

func (b *CatalogFixtureBuilder) add(query string, args ...interface{}) *CatalogFixtureBuilder {
	b.statements = append(b.statements, statement{query: query, args: args})
	return b
}

// AddTag inserts a tags row.
func (b *CatalogFixtureBuilder) AddTag(id int64, name string, categoryID int64, isCategory bool) *CatalogFixtureBuilder {
	return b.add(`INSERT INTO tags (id, name, category_id, is_category, sort_priority, icon) VALUES (?, ?, ?, ?, 0, NULL)`,
		id, name, categoryID, isCategory)
}

// AddRoll inserts a rolls row.
func (b *CatalogFixtureBuilder) AddRoll(id, time int64) *CatalogFixtureBuilder {
	return b.add(`INSERT INTO rolls (id, time) VALUES (?, ?)`, id, time)
}

// AddPhoto inserts a photos row.
func (b *CatalogFixtureBuilder) AddPhoto(p PhotoRow) *CatalogFixtureBuilder {
	return b.add(`INSERT INTO photos (id, time, base_uri, filename, description, roll_id, default_version_id, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Time, p.BaseURI, p.Filename, p.Description, p.RollID, p.DefaultVersionID, p.Rating)
}

// AddVersion inserts a photo_versions row.
func (b *CatalogFixtureBuilder) AddVersion(photoID, versionID int64, name, baseURI, filename, md5 string) *CatalogFixtureBuilder {
	return b.add(`INSERT INTO photo_versions (photo_id, version_id, name, base_uri, filename, import_md5, protected)
		VALUES (?, ?, ?, ?, ?, ?, 1)`,
		photoID, versionID, name, baseURI, filename, md5)
}

// LinkTag inserts a photo_tags row.
func (b *CatalogFixtureBuilder) LinkTag(photoID, tagID int64) *CatalogFixtureBuilder {
	return b.add(`INSERT INTO photo_tags (photo_id, tag_id) VALUES (?, ?)`, photoID, tagID)
}

// Build writes the catalog to a file in a fresh temp directory and returns its path.
func (b *CatalogFixtureBuilder) Build(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photos.db")

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture catalog: %v", err)
	}
	defer db.Close()

	db.MustExec(catalogSchema)
	if !b.noMeta {
		db.MustExec(`INSERT INTO meta (name, data) VALUES ('F-Spot Version', '0.8.2')`)
		db.MustExec(`INSERT INTO meta (name, data) VALUES ('Hidden Tag Id', ?)`, b.hiddenID)
	}
	for _, s := range b.statements {
		if _, err := db.Exec(s.query, s.args...); err != nil {
			t.Fatalf("fixture statement %q: %v", s.query, err)
		}
	}
	return path
}

// Ptr returns a pointer to v, for optional PhotoRow fields.
func Ptr[T any](v T) *T {
	return &v
}
