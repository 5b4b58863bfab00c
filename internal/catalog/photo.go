package catalog

import (
	"sort"

	"github.com/fs2dt/fs2dt/internal/tags"
)

// Photo is one catalog photo with its versions and tags.
type Photo struct {
	ID               int64
	Time             int64
	BaseURI          string
	Filename         string
	Description      string
	RollID           int64
	DefaultVersionID int64
	Rating           int

	// FilePath is the absolute path of the original image.
	FilePath string

	versions map[int64]*PhotoVersion
	tags     map[int64]*tags.Tag
}

// Versions returns the photo's versions ordered by version id.
func (p *Photo) Versions() []*PhotoVersion {
	out := make([]*PhotoVersion, 0, len(p.versions))
	for _, v := range p.versions {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VersionID < out[j].VersionID })
	return out
}

// Version returns the version with the given id.
func (p *Photo) Version(id int64) (*PhotoVersion, bool) {
	v, ok := p.versions[id]
	return v, ok
}

// GroupVersion returns the version with the smallest id. Its import hash
// identifies the original import shared by every version of the photo.
func (p *Photo) GroupVersion() (*PhotoVersion, bool) {
	var first *PhotoVersion
	for _, v := range p.versions {
		if first == nil || v.VersionID < first.VersionID {
			first = v
		}
	}
	return first, first != nil
}

// Tags returns the photo's tags ordered by tag id.
func (p *Photo) Tags() []*tags.Tag {
	out := make([]*tags.Tag, 0, len(p.tags))
	for _, t := range p.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PhotoVersion is one rendition of a photo (original, edits, exports).
type PhotoVersion struct {
	PhotoID   int64
	VersionID int64
	Name      string
	BaseURI   string
	Filename  string
	ImportMD5 string

	// FilePath is the absolute path of this version's image.
	FilePath string

	photo *Photo
}

// Photo returns the owning photo.
func (v *PhotoVersion) Photo() *Photo {
	return v.photo
}
