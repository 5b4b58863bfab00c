package db

// SQL query constants for catalog loading.

const (
	// queryMetaValue reads one setting from the meta table.
	// Parameter 1: setting name
	queryMetaValue = `SELECT data FROM meta WHERE name = ?`

	queryCountTags   = `SELECT COUNT(*) FROM tags`
	queryCountRolls  = `SELECT COUNT(*) FROM rolls`
	queryCountPhotos = `SELECT COUNT(*) FROM photos`

	queryTags = `
		SELECT id, name, category_id, is_category
		FROM tags
		ORDER BY id
	`

	queryRolls = `
		SELECT id, time
		FROM rolls
		ORDER BY id
	`

	queryPhotos = `
		SELECT id, time, base_uri, filename, description, roll_id, default_version_id, rating
		FROM photos
		ORDER BY id
	`

	// queryPhotoVersions lists one photo's versions.
	// Parameter 1: photo id
	queryPhotoVersions = `
		SELECT photo_id, version_id, name, base_uri, filename, import_md5
		FROM photo_versions
		WHERE photo_id = ?
		ORDER BY version_id
	`

	// queryPhotoTags lists one photo's tag links.
	// Parameter 1: photo id
	queryPhotoTags = `
		SELECT photo_id, tag_id
		FROM photo_tags
		WHERE photo_id = ?
		ORDER BY tag_id
	`
)
