package tags

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// ErrCycle is returned when a parent chain is longer than the tag count.
var ErrCycle = fmt.Errorf("tag ancestry does not terminate: %w", fs2dt.ErrReferentialIntegrity)

// Registry holds every tag by id plus the id of the hidden root.
type Registry struct {
	tags     map[int64]*Tag
	hiddenID int64
}

// NewRegistry creates an empty registry whose hidden subtree is rooted at hiddenID.
func NewRegistry(hiddenID int64) *Registry {
	return &Registry{
		tags:     make(map[int64]*Tag),
		hiddenID: hiddenID,
	}
}

// Add registers a tag. Ids must be unique.
func (r *Registry) Add(t Tag) (*Tag, error) {
	if _, exists := r.tags[t.ID]; exists {
		return nil, fmt.Errorf("duplicate tag id %d: %w", t.ID, fs2dt.ErrReferentialIntegrity)
	}
	tag := &t
	r.tags[t.ID] = tag
	return tag, nil
}

// Lookup returns the tag registered under id.
func (r *Registry) Lookup(id int64) (*Tag, bool) {
	t, ok := r.tags[id]
	return t, ok
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	return len(r.tags)
}

// HiddenID returns the id of the hidden root tag.
func (r *Registry) HiddenID() int64 {
	return r.hiddenID
}

// All returns every tag ordered by id.
func (r *Registry) All() []*Tag {
	all := make([]*Tag, 0, len(r.tags))
	for _, t := range r.tags {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Parent resolves the tag's category. A category id without a registered
// tag means t is a root.
func (r *Registry) Parent(t *Tag) (*Tag, bool) {
	return r.Lookup(t.CategoryID)
}

// chain returns t followed by its ancestors, leaf first.
func (r *Registry) chain(t *Tag) ([]*Tag, error) {
	limit := len(r.tags) + 1
	chain := []*Tag{t}
	for cur, ok := r.Parent(t); ok; cur, ok = r.Parent(cur) {
		if len(chain) >= limit {
			return nil, fmt.Errorf("tag %d (%s): %w", t.ID, t.Name, ErrCycle)
		}
		chain = append(chain, cur)
	}
	return chain, nil
}

// AncestryPath returns tag names from the forest root down to t.
func (r *Registry) AncestryPath(t *Tag) ([]string, error) {
	chain, err := r.chain(t)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(chain))
	for i, tag := range chain {
		names[len(chain)-1-i] = tag.Name
	}
	return names, nil
}

// IsHidden reports whether t or any of its ancestors is the hidden root.
func (r *Registry) IsHidden(t *Tag) (bool, error) {
	chain, err := r.chain(t)
	if err != nil {
		return false, err
	}
	for _, tag := range chain {
		if tag.ID == r.hiddenID {
			return true, nil
		}
	}
	return false, nil
}

// DisplayString renders the ancestry joined with "->", e.g. "People->Family".
func (r *Registry) DisplayString(t *Tag) (string, error) {
	names, err := r.AncestryPath(t)
	if err != nil {
		return "", err
	}
	return strings.Join(names, fs2dt.DisplaySeparator), nil
}

// XmpTags returns the ancestry names (flat subjects) and the same names
// joined with "|" (hierarchical subject).
func (r *Registry) XmpTags(t *Tag) ([]string, string, error) {
	names, err := r.AncestryPath(t)
	if err != nil {
		return nil, "", err
	}
	return names, strings.Join(names, fs2dt.HierarchySeparator), nil
}
