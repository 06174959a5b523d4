package config

import (
	"fmt"
	"os"
)

type AwsConfig struct {
	Region string
	// Endpoint overrides every AWS service endpoint, e.g. for localstack.
	Endpoint string
}

func GetAwsConfig() (*AwsConfig, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, fmt.Errorf("AWS_REGION must be set")
	}

	return &AwsConfig{
		Region:   region,
		Endpoint: os.Getenv("AWS_ENDPOINT_URL"),
	}, nil
}
