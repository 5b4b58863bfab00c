package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolvePath joins a base storage URI and a file name and returns the
// decoded filesystem path, e.g. ("file:///pics/My%20Trip", "a.jpg") →
// "/pics/My Trip/a.jpg".
func ResolvePath(baseURI, filename string) (string, error) {
	if !strings.HasSuffix(baseURI, "/") {
		baseURI += "/"
	}
	base, err := url.Parse(baseURI)
	if err != nil {
		return "", fmt.Errorf("invalid base uri %q: %w", baseURI, err)
	}

	name, err := url.PathUnescape(filename)
	if err != nil {
		name = filename
	}
	return base.ResolveReference(&url.URL{Path: name}).Path, nil
}
