package adapters

import (
	"context"
	"voice-translator-lambda/application/ports/outbound"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/aws/aws-sdk-go/service/translate/translateiface"
)

type awsTranslator struct {
	logger       outbound.LoggerPort
	translateSvc translateiface.TranslateAPI
}

func NewAwsTranslator(logger outbound.LoggerPort, translateSvc translateiface.TranslateAPI) outbound.TranslatorPort {
	return &awsTranslator{
		logger:       logger,
		translateSvc: translateSvc,
	}
}

func (t *awsTranslator) Translate(ctx context.Context, req outbound.TranslateTextRequest) (string, error) {
	output, err := t.translateSvc.TextWithContext(ctx, &translate.TextInput{
		Text:               aws.String(req.Text),
		SourceLanguageCode: aws.String(req.SourceLanguageCode),
		TargetLanguageCode: aws.String(req.TargetLanguageCode),
	})
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to translate text", map[string]interface{}{
			"source": req.SourceLanguageCode,
			"target": req.TargetLanguageCode,
		})
		return "", err
	}

	return aws.StringValue(output.TranslatedText), nil
}
