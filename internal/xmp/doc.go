// Package xmp builds darktable-compatible XMP sidecar documents.
//
// Documents are described as a typed Element tree: Envelope returns the fixed
// darktable metadata shell and Render fills in rating, description and
// subjects. Marshal and Encode serialize any tree as indented XML preceded by
// an XML declaration.
package xmp
