// Package photostore abstracts the blob store holding evidence photos. The
// workflow engine only ever sees the durable public URL a Save returns; raw
// image bytes never cross into the engine.
package photostore

import (
	"context"
	"io"
)

type PhotoStore interface {
	// Save stores the image under a key derived from prefix and returns a
	// durable public URL for it.
	Save(ctx context.Context, prefix, mimeType string, r io.Reader) (publicURL string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
