package storage

import (
	"context"
	"io"
)

// Uploader stores uploaded case files and returns a stable reference URL for
// each stored object.
type Uploader interface {
	// Upload stores the content read from r under the given key and
	// returns the URL recorded on the case
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	// Delete removes a stored object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
