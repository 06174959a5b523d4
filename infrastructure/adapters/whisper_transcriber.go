package adapters

import (
	"context"
	"strings"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"

	"github.com/sashabaranov/go-openai"
)

type whisperTranscriber struct {
	logger       outbound.LoggerPort
	client       *openai.Client
	openAIConfig *config.OpenAIConfig
}

func NewWhisperTranscriber(logger outbound.LoggerPort, openAIConfig *config.OpenAIConfig) outbound.TranscriberPort {
	clientConfig := openai.DefaultConfig(openAIConfig.ApiKey)
	if openAIConfig.ApiUrl != "" {
		clientConfig.BaseURL = openAIConfig.ApiUrl
	}
	return &whisperTranscriber{
		logger:       logger,
		client:       openai.NewClientWithConfig(clientConfig),
		openAIConfig: openAIConfig,
	}
}

func (w *whisperTranscriber) Transcribe(ctx context.Context, req outbound.TranscribeRequest) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.openAIConfig.Model,
		FilePath: req.FileName,
		Reader:   req.Audio,
		Language: whisperLanguage(req.Locale),
	})
	if err != nil {
		w.logger.ErrorWithFields(err, "Failed to transcribe audio with whisper", map[string]interface{}{
			"locale": req.Locale,
			"file":   req.FileName,
		})
		return "", err
	}

	return strings.TrimSpace(resp.Text), nil
}

// whisperLanguage reduces a locale such as "fr-CA" to its ISO-639-1 code.
func whisperLanguage(locale string) string {
	language, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(language)
}
