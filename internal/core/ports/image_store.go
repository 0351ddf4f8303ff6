package ports

import (
	"context"
	"io"
)

// ImageStore uploads complaint images to an external object-storage service
// and returns the resulting public URI. Only URIs are persisted locally.
type ImageStore interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// ImageUpload is one attached file as received by the transport layer.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}
