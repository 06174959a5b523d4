package outbound

import (
	"context"
	"io"
)

const Mp3OutputFormat = "mp3"

type SynthesizeSpeechRequest struct {
	Text         string
	VoiceID      string
	LanguageCode string
	OutputFormat string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (io.ReadCloser, error)
}
