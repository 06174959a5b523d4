package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	AwsTranscribeProvider    = "aws"
	OpenAITranscribeProvider = "openai"

	defaultTranscribeFrameSize = 8 * 1024
)

type TranscribeConfig struct {
	Provider string
	// FrameSize is the number of PCM bytes sent per audio event.
	FrameSize int
}

func GetTranscribeConfig() (*TranscribeConfig, error) {
	provider := os.Getenv("TRANSCRIBE_PROVIDER")
	if provider == "" {
		provider = AwsTranscribeProvider
	}
	if provider != AwsTranscribeProvider && provider != OpenAITranscribeProvider {
		return nil, fmt.Errorf("TRANSCRIBE_PROVIDER must be %q or %q, got %q", AwsTranscribeProvider, OpenAITranscribeProvider, provider)
	}

	frameSize := defaultTranscribeFrameSize
	if value := os.Getenv("TRANSCRIBE_FRAME_SIZE"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("TRANSCRIBE_FRAME_SIZE must be a positive integer, got %q", value)
		}
		frameSize = parsed
	}

	return &TranscribeConfig{
		Provider:  provider,
		FrameSize: frameSize,
	}, nil
}
