package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// Roll is an import batch.
type Roll struct {
	ID   int64
	Time int64 // seconds since epoch
}

// Timestamp renders the import time, e.g. "2001-09-09 01:46:40".
func (r *Roll) Timestamp(loc *time.Location) string {
	return time.Unix(r.Time, 0).In(loc).Format(fs2dt.RollTimeLayout)
}

// XmpTags returns the roll's pseudo-tag ("F-Roll", timestamp) and its
// hierarchical form.
func (r *Roll) XmpTags(loc *time.Location) ([]string, string) {
	names := []string{fs2dt.RollTagName, r.Timestamp(loc)}
	return names, strings.Join(names, fs2dt.HierarchySeparator)
}

// Display renders "<id>: <timestamp>".
func (r *Roll) Display(loc *time.Location) string {
	return fmt.Sprintf("%d: %s", r.ID, r.Timestamp(loc))
}
