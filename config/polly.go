package config

import (
	"fmt"
	"os"
	"strconv"
)

type PollyConfig struct {
	Engine string
	// SampleRate is left to Polly's default when empty.
	SampleRate string
}

func GetPollyConfig() (*PollyConfig, error) {
	engine := os.Getenv("POLLY_ENGINE")
	if engine == "" {
		engine = "standard"
	}

	sampleRate := os.Getenv("POLLY_SAMPLE_RATE")
	if sampleRate != "" {
		if _, err := strconv.Atoi(sampleRate); err != nil {
			return nil, fmt.Errorf("failed to parse POLLY_SAMPLE_RATE: %w", err)
		}
	}

	return &PollyConfig{
		Engine:     engine,
		SampleRate: sampleRate,
	}, nil
}
