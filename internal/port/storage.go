package port

import (
	"context"
	"io"
)

// ArchiveInput describes one uploaded contract document to store.
type ArchiveInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ArchiveOutput is where the document ended up.
type ArchiveOutput struct {
	Location string
	ETag     string
}

// ObjectStorage keeps a copy of uploaded contract documents.
type ObjectStorage interface {
	Upload(ctx context.Context, input ArchiveInput) (*ArchiveOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
}
