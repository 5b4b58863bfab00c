package export

import (
	"fmt"
	"time"

	"github.com/fs2dt/fs2dt/internal/catalog"
	"github.com/fs2dt/fs2dt/internal/xmp"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// Subjects holds the flat and hierarchical subject sets of one photo.
type Subjects struct {
	Flat         *xmp.SubjectSet
	Hierarchical *xmp.SubjectSet
}

// SubjectOptions controls subject assembly.
type SubjectOptions struct {
	Location      *time.Location
	ExcludeHidden bool
}

// BuildSubjects collects the photo's tag ancestries, its roll and its group.
// A missing roll leaves F-Roll out and is reported through logger; a tag
// ancestry that does not terminate fails the photo.
func BuildSubjects(cat *catalog.Catalog, photo *catalog.Photo, opts SubjectOptions, logger fs2dt.Logger) (Subjects, error) {
	s := Subjects{
		Flat:         xmp.NewSubjectSet(),
		Hierarchical: xmp.NewSubjectSet(),
	}

	for _, tag := range photo.Tags() {
		if opts.ExcludeHidden {
			hidden, err := cat.Tags.IsHidden(tag)
			if err != nil {
				return Subjects{}, fmt.Errorf("photo %d: %w", photo.ID, err)
			}
			if hidden {
				logger.Verbose("Photo %d: skipping hidden tag %s", photo.ID, tag.Name)
				continue
			}
		}
		names, joined, err := cat.Tags.XmpTags(tag)
		if err != nil {
			return Subjects{}, fmt.Errorf("photo %d: %w", photo.ID, err)
		}
		s.Flat.Add(names...)
		s.Hierarchical.Add(joined)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	roll, err := cat.Roll(photo.RollID)
	if err != nil {
		logger.Error("Photo %d: %v, omitting %s", photo.ID, err, fs2dt.RollTagName)
	} else {
		names, joined := roll.XmpTags(loc)
		s.Flat.Add(names...)
		s.Hierarchical.Add(joined)
		logger.Verbose("Photo %d: roll %s", photo.ID, roll.Display(loc))
	}

	if group, ok := photo.GroupVersion(); ok && group.ImportMD5 != "" {
		s.Flat.Add(fs2dt.GroupTagName, group.ImportMD5)
		s.Hierarchical.Add(fs2dt.GroupTagName + fs2dt.HierarchySeparator + group.ImportMD5)
	}

	return s, nil
}
