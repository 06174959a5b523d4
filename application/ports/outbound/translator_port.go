package outbound

import "context"

type TranslateTextRequest struct {
	Text               string
	SourceLanguageCode string
	TargetLanguageCode string
}

type TranslatorPort interface {
	Translate(ctx context.Context, req TranslateTextRequest) (string, error)
}
