package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// sidecarPerm is the mode of newly created sidecar files.
const sidecarPerm = 0o644

// FileSystemProvider reads and writes whole files.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file's content, creating it if needed.
	// Parent directories are never created.
	WriteFile(path string, data []byte) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Exists reports whether a regular file exists at path
	Exists(path string) (bool, error)
}

// AferoFileSystem implements FileSystemProvider on top of an afero.Fs.
type AferoFileSystem struct {
	fs afero.Fs
}

// NewOSFileSystem creates a provider for the OS filesystem.
func NewOSFileSystem() *AferoFileSystem {
	return &AferoFileSystem{fs: afero.NewOsFs()}
}

// NewMemoryFileSystem creates an empty in-memory provider.
func NewMemoryFileSystem() *AferoFileSystem {
	return &AferoFileSystem{fs: afero.NewMemMapFs()}
}

// NewReadOnlyFileSystem wraps base so that every write fails.
func NewReadOnlyFileSystem(base *AferoFileSystem) *AferoFileSystem {
	return &AferoFileSystem{fs: afero.NewReadOnlyFs(base.fs)}
}

// AddFile stores content at path, creating parents. Intended for test setup.
func (p *AferoFileSystem) AddFile(path, content string) error {
	if err := p.fs.MkdirAll(parentDir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(p.fs, path, []byte(content), sidecarPerm)
}

func (p *AferoFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(p.fs, path)
}

func (p *AferoFileSystem) WriteFile(path string, data []byte) error {
	if err := afero.WriteFile(p.fs, path, data, sidecarPerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (p *AferoFileSystem) Stat(path string) (FileInfo, error) {
	return p.fs.Stat(path)
}

func (p *AferoFileSystem) Exists(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			if i == 0 {
				return path[:1]
			}
			return path[:i]
		}
	}
	return "."
}

// Verify AferoFileSystem implements FileSystemProvider at compile time
var _ FileSystemProvider = (*AferoFileSystem)(nil)
