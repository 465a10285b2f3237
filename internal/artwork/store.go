// Package artwork stores uploaded entity artwork on disk at paths
// derived from the entity's kind and identity.
package artwork

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates an upload with a file extension the
// store does not accept.
var ErrUnsupportedFormat = fmt.Errorf("unsupported artwork format")

// PublicPrefix is the URL path under which stored artwork is served.
const PublicPrefix = "/static/uploads/"

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Store writes artwork blobs under a single uploads directory.
type Store struct {
	dir string
}

// New creates an artwork store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the uploads directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores the blob for one entity and returns the public reference
// to put in the entity's image field. The filename only contributes its
// extension; the stored name is derived from kind and identity so a
// re-upload replaces the previous artwork.
func (s *Store) Save(kind string, id int, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d%s", kind, id, ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return PublicPrefix + name, nil
}
