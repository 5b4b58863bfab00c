// Package export turns loaded catalog photos into darktable XMP sidecars.
//
// For each selected photo the exporter assembles the subject sets (tags, the
// F-Roll pseudo-tag and the F-Group pseudo-tag), renders one document and
// writes it next to every version of the photo as "<version path>.xmp".
package export
