package lambda_interface

import (
	"context"
	"voice-translator-lambda/application/ports/inbound"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/domain"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// TranslationEvent is the payload sent by the browser client.
type TranslationEvent struct {
	Bucket         string `json:"bucket"`
	Key            string `json:"key"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type Handler struct {
	logger   outbound.LoggerPort
	pipeline inbound.VoiceTranslationPipelinePort
}

func NewHandler(logger outbound.LoggerPort, pipeline inbound.VoiceTranslationPipelinePort) *Handler {
	return &Handler{
		logger:   logger,
		pipeline: pipeline,
	}
}

// Handle runs one invocation and returns the key of the stored audio.
func (h *Handler) Handle(ctx context.Context, event TranslationEvent) (string, error) {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(map[string]interface{}{"request_id": lc.AwsRequestID})
	}
	ctx = outbound.ContextWithLogger(ctx, logger)
	logger.InfoWithFields("Received translation event", map[string]interface{}{
		"bucket":          event.Bucket,
		"key":             event.Key,
		"source_language": event.SourceLanguage,
		"target_language": event.TargetLanguage,
	})

	ref, err := h.pipeline.Process(ctx, domain.InvocationRequest{
		Bucket:         event.Bucket,
		Key:            event.Key,
		SourceLanguage: event.SourceLanguage,
		TargetLanguage: event.TargetLanguage,
	})
	if err != nil {
		logger.Error(err, "Voice translation failed")
		return "", err
	}

	return ref.Key, nil
}
