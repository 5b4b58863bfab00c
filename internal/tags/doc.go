// Package tags reconstructs the F-Spot tag forest from its flat parent-pointer
// table and renders tag ancestry as display strings and XMP subject values.
//
// A Registry is filled once while the catalog loads and is read-only afterwards.
// Ancestry walks are bounded by the number of registered tags, so a malformed
// parent chain surfaces as ErrCycle instead of hanging the export.
package tags
