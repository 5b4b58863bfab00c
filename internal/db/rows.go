package db

import (
	"database/sql"

	"github.com/fs2dt/fs2dt/internal/catalog"
	"github.com/fs2dt/fs2dt/internal/tags"
)

type tagRow struct {
	ID         int64          `db:"id"`
	Name       sql.NullString `db:"name"`
	CategoryID sql.NullInt64  `db:"category_id"`
	IsCategory sql.NullBool   `db:"is_category"`
}

func (r tagRow) toTag() tags.Tag {
	return tags.Tag{
		ID:         r.ID,
		Name:       r.Name.String,
		CategoryID: r.CategoryID.Int64,
		IsCategory: r.IsCategory.Bool,
	}
}

type rollRow struct {
	ID   int64 `db:"id"`
	Time int64 `db:"time"`
}

type photoRow struct {
	ID               int64          `db:"id"`
	Time             int64          `db:"time"`
	BaseURI          string         `db:"base_uri"`
	Filename         string         `db:"filename"`
	Description      sql.NullString `db:"description"`
	RollID           sql.NullInt64  `db:"roll_id"`
	DefaultVersionID sql.NullInt64  `db:"default_version_id"`
	Rating           sql.NullInt64  `db:"rating"`
}

// toPhoto maps NULL description to "" and NULL rating to 0.
func (r photoRow) toPhoto() catalog.Photo {
	return catalog.Photo{
		ID:               r.ID,
		Time:             r.Time,
		BaseURI:          r.BaseURI,
		Filename:         r.Filename,
		Description:      r.Description.String,
		RollID:           r.RollID.Int64,
		DefaultVersionID: r.DefaultVersionID.Int64,
		Rating:           int(r.Rating.Int64),
	}
}

type versionRow struct {
	PhotoID   int64          `db:"photo_id"`
	VersionID int64          `db:"version_id"`
	Name      sql.NullString `db:"name"`
	BaseURI   string         `db:"base_uri"`
	Filename  string         `db:"filename"`
	ImportMD5 sql.NullString `db:"import_md5"`
}

func (r versionRow) toVersion() catalog.PhotoVersion {
	return catalog.PhotoVersion{
		PhotoID:   r.PhotoID,
		VersionID: r.VersionID,
		Name:      r.Name.String,
		BaseURI:   r.BaseURI,
		Filename:  r.Filename,
		ImportMD5: r.ImportMD5.String,
	}
}

type photoTagRow struct {
	PhotoID int64 `db:"photo_id"`
	TagID   int64 `db:"tag_id"`
}
