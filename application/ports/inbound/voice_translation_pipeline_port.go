package inbound

import (
	"context"
	"voice-translator-lambda/domain"
)

type VoiceTranslationPipelinePort interface {
	Process(ctx context.Context, request domain.InvocationRequest) (*domain.StoredObjectReference, error)
}
