package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultHistoryTtlMinutes = 7 * 24 * 60

// DynamoConfig describes the optional translation history table.
// History is disabled when TableName is empty.
type DynamoConfig struct {
	TableName  string
	TtlMinutes int
}

func GetDynamoConfig() (*DynamoConfig, error) {
	ttlMinutes := defaultHistoryTtlMinutes
	if value := os.Getenv("HISTORY_TTL_MINUTES"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HISTORY_TTL_MINUTES: %w", err)
		}
		ttlMinutes = parsed
	}

	return &DynamoConfig{
		TableName:  os.Getenv("HISTORY_TABLE_NAME"),
		TtlMinutes: ttlMinutes,
	}, nil
}

func (c *DynamoConfig) Enabled() bool {
	return c.TableName != ""
}
