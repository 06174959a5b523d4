package outbound

import (
	"context"
	"io"
)

type TranscribeRequest struct {
	Locale   string
	FileName string
	Audio    io.ReadSeeker
}

type TranscriberPort interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)
}
