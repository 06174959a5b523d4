package outbound

import (
	"context"
	"io"
)

type ObjectLocation struct {
	Bucket string
	Key    string
}

type UploadObjectRequest struct {
	ObjectLocation
	Body        io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

type ObjectStorePort interface {
	Download(ctx context.Context, location ObjectLocation, dst io.WriterAt) (int64, error)
	Upload(ctx context.Context, req UploadObjectRequest) error
}
