package preview

import (
	"fmt"
	"os"
	"sync"
)

// Resource is a temp-file-backed handle to the last successful generation
// response. At most one resource is current at a time; installing a new one
// must release the previous one, otherwise repeated edits accumulate files
// without bound.
type Resource struct {
	mu       sync.Mutex
	path     string
	released bool
}

// NewResource writes data to a fresh temp file with the given extension.
func NewResource(data []byte, ext string) (*Resource, error) {
	f, err := os.CreateTemp("", "qrstudio-preview-*."+ext)
	if err != nil {
		return nil, fmt.Errorf("creating preview file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	return &Resource{path: f.Name()}, nil
}

// Path returns the displayable file path, or "" after release.
func (r *Resource) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return ""
	}
	return r.path
}

// Bytes re-reads the underlying payload, e.g. for a download that reuses
// the preview.
func (r *Resource) Bytes() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil, fmt.Errorf("resource already released")
	}
	return os.ReadFile(r.path)
}

// Release removes the backing file. Releasing twice is a no-op.
func (r *Resource) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	os.Remove(r.path)
}
