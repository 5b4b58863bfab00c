// Package db reads an F-Spot SQLite catalog into a catalog.Catalog.
//
// The catalog file is opened read-only. Tables are read in dependency order:
// meta (hidden tag id), tags, rolls, photos, then versions and tag links
// per photo.
package db
