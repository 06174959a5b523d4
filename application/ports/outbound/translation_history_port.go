package outbound

import (
	"context"
	"voice-translator-lambda/domain"
)

type TranslationHistoryPort interface {
	Save(ctx context.Context, record domain.TranslationRecord) error
}
