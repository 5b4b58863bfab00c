package catalog

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/fs2dt/fs2dt/internal/tags"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// Catalog is the repository of rolls and photos loaded from one catalog file.
type Catalog struct {
	Tags *tags.Registry

	rolls  map[int64]*Roll
	photos map[int64]*Photo
}

// Stats counts the loaded entities.
type Stats struct {
	Tags     int
	Rolls    int
	Photos   int
	Versions int
}

// New creates an empty catalog around an already loaded tag registry.
func New(registry *tags.Registry) *Catalog {
	return &Catalog{
		Tags:   registry,
		rolls:  make(map[int64]*Roll),
		photos: make(map[int64]*Photo),
	}
}

// AddRoll registers a roll.
func (c *Catalog) AddRoll(r Roll) (*Roll, error) {
	if _, exists := c.rolls[r.ID]; exists {
		return nil, fmt.Errorf("duplicate roll id %d: %w", r.ID, fs2dt.ErrReferentialIntegrity)
	}
	roll := &r
	c.rolls[r.ID] = roll
	return roll, nil
}

// Roll looks up a roll by id.
func (c *Catalog) Roll(id int64) (*Roll, error) {
	r, ok := c.rolls[id]
	if !ok {
		return nil, fmt.Errorf("roll %d: %w", id, fs2dt.ErrReferentialIntegrity)
	}
	return r, nil
}

// AddPhoto registers a photo and resolves its file path.
func (c *Catalog) AddPhoto(p Photo) (*Photo, error) {
	if _, exists := c.photos[p.ID]; exists {
		return nil, fmt.Errorf("duplicate photo id %d: %w", p.ID, fs2dt.ErrReferentialIntegrity)
	}
	filePath, err := ResolvePath(p.BaseURI, p.Filename)
	if err != nil {
		return nil, fmt.Errorf("photo %d: %w", p.ID, err)
	}
	photo := &p
	photo.FilePath = filePath
	photo.versions = make(map[int64]*PhotoVersion)
	photo.tags = make(map[int64]*tags.Tag)
	c.photos[p.ID] = photo
	return photo, nil
}

// Photo looks up a photo by id.
func (c *Catalog) Photo(id int64) (*Photo, bool) {
	p, ok := c.photos[id]
	return p, ok
}

// AttachVersion adds a version to its owning photo.
func (c *Catalog) AttachVersion(v PhotoVersion) (*PhotoVersion, error) {
	photo, ok := c.photos[v.PhotoID]
	if !ok {
		return nil, fmt.Errorf("version %d references photo %d: %w", v.VersionID, v.PhotoID, fs2dt.ErrReferentialIntegrity)
	}
	filePath, err := ResolvePath(v.BaseURI, v.Filename)
	if err != nil {
		return nil, fmt.Errorf("photo %d version %d: %w", v.PhotoID, v.VersionID, err)
	}
	version := &v
	version.FilePath = filePath
	version.photo = photo
	photo.versions[v.VersionID] = version
	return version, nil
}

// AttachTag links a registered tag to a photo. Repeated links are ignored.
func (c *Catalog) AttachTag(photoID, tagID int64) error {
	photo, ok := c.photos[photoID]
	if !ok {
		return fmt.Errorf("tag link references photo %d: %w", photoID, fs2dt.ErrReferentialIntegrity)
	}
	tag, ok := c.Tags.Lookup(tagID)
	if !ok {
		return fmt.Errorf("photo %d references tag %d: %w", photoID, tagID, fs2dt.ErrReferentialIntegrity)
	}
	photo.tags[tagID] = tag
	return nil
}

// Photos returns every photo ordered by id.
func (c *Catalog) Photos() []*Photo {
	out := make([]*Photo, 0, len(c.photos))
	for _, p := range c.photos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PhotosUnderPath returns photos whose file lies under dir, ordered by file
// path then id. "" and "/" select every photo.
func (c *Catalog) PhotosUnderPath(dir string) []*Photo {
	var out []*Photo
	for _, p := range c.photos {
		if isUnder(dir, p.FilePath) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FilePath != out[j].FilePath {
			return out[i].FilePath < out[j].FilePath
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func isUnder(dir, file string) bool {
	if dir == "" {
		return true
	}
	dir = path.Clean(dir)
	if dir == "/" {
		return true
	}
	return file == dir || strings.HasPrefix(file, dir+"/")
}

// Stats counts what the catalog holds.
func (c *Catalog) Stats() Stats {
	s := Stats{
		Tags:   c.Tags.Len(),
		Rolls:  len(c.rolls),
		Photos: len(c.photos),
	}
	for _, p := range c.photos {
		s.Versions += len(p.versions)
	}
	return s
}
