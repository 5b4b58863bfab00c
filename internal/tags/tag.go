package tags

import "fmt"

// Tag is one row of the catalog's tags table.
type Tag struct {
	ID         int64
	Name       string
	CategoryID int64
	IsCategory bool
}

func (t *Tag) String() string {
	category := 0
	if t.IsCategory {
		category = 1
	}
	return fmt.Sprintf("[%d, %s, %d, %d]", t.ID, t.Name, t.CategoryID, category)
}
