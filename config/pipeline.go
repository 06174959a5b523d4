package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	TimestampObjectIDStrategy = "timestamp"
	UUIDObjectIDStrategy      = "uuid"

	defaultWorkerPoolSize = 16
)

type PipelineConfig struct {
	TmpDir           string
	ObjectIDStrategy string
	WorkerPoolSize   int
	LogLevel         string
}

func GetPipelineConfig() (*PipelineConfig, error) {
	tmpDir := os.Getenv("TMP_DIR")
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}

	strategy := os.Getenv("OBJECT_ID_STRATEGY")
	if strategy == "" {
		strategy = TimestampObjectIDStrategy
	}
	if strategy != TimestampObjectIDStrategy && strategy != UUIDObjectIDStrategy {
		return nil, fmt.Errorf("OBJECT_ID_STRATEGY must be %q or %q, got %q", TimestampObjectIDStrategy, UUIDObjectIDStrategy, strategy)
	}

	poolSize := defaultWorkerPoolSize
	if value := os.Getenv("WORKER_POOL_SIZE"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer, got %q", value)
		}
		poolSize = parsed
	}

	return &PipelineConfig{
		TmpDir:           tmpDir,
		ObjectIDStrategy: strategy,
		WorkerPoolSize:   poolSize,
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}, nil
}
