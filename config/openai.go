package config

import (
	"fmt"
	"os"
)

type OpenAIConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	model := os.Getenv("OPENAI_TRANSCRIBE_MODEL")
	if model == "" {
		model = "whisper-1"
	}
	return &OpenAIConfig{
		ApiUrl: os.Getenv("OPENAI_BASE_URL"),
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
