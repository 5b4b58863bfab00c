// Package checksum computes content digests used to detect sidecars whose
// content would not change on rewrite.
package checksum
