package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		baseURI  string
		filename string
		want     string
	}{
		{"trailing slash", "file:///pics/", "a.jpg", "/pics/a.jpg"},
		{"no trailing slash", "file:///pics", "a.jpg", "/pics/a.jpg"},
		{"escaped directory", "file:///pics/My%20Trip/", "a.jpg", "/pics/My Trip/a.jpg"},
		{"escaped filename", "file:///pics/", "a%20b.jpg", "/pics/a b.jpg"},
		{"bare path", "/pics/", "a.jpg", "/pics/a.jpg"},
		{"literal percent", "file:///pics/", "100%.jpg", "/pics/100%.jpg"},
		{"colon in name", "file:///pics/", "IMG:1.jpg", "/pics/IMG:1.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.baseURI, tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePath_InvalidBase(t *testing.T) {
	_, err := ResolvePath("file://%zz/", "a.jpg")
	assert.Error(t, err)
}
