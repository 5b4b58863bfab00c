// Package catalog is the in-memory, read-only snapshot of an F-Spot catalog:
// rolls, photos and photo versions, with photo→roll, photo→versions and
// photo→tags relationships resolved through an explicit Catalog repository.
//
// Construction order matters: tags and rolls first, then photos, then
// versions and tag links, which attach to an existing Photo.
package catalog
