package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	S3StorageProvider    = "s3"
	MinioStorageProvider = "minio"
)

type S3Config struct {
	Provider       string
	ForcePathStyle bool
}

func GetS3Config() (*S3Config, error) {
	provider := os.Getenv("STORAGE_PROVIDER")
	if provider == "" {
		provider = S3StorageProvider
	}
	if provider != S3StorageProvider && provider != MinioStorageProvider {
		return nil, fmt.Errorf("STORAGE_PROVIDER must be %q or %q, got %q", S3StorageProvider, MinioStorageProvider, provider)
	}

	forcePathStyle := false
	if value := os.Getenv("S3_FORCE_PATH_STYLE"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse S3_FORCE_PATH_STYLE: %w", err)
		}
		forcePathStyle = parsed
	}

	return &S3Config{
		Provider:       provider,
		ForcePathStyle: forcePathStyle,
	}, nil
}
