package adapters

import (
	"context"
	"time"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"
	"voice-translator-lambda/domain"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type dynamoTranslationItem struct {
	ID             string `dynamodbav:"id"`
	Bucket         string `dynamodbav:"bucket"`
	InputKey       string `dynamodbav:"input_key"`
	TranscriptKey  string `dynamodbav:"transcript_key"`
	OutputKey      string `dynamodbav:"output_key"`
	SourceLanguage string `dynamodbav:"source_language"`
	TargetLanguage string `dynamodbav:"target_language"`
	CreatedAt      string `dynamodbav:"created_at"`
	TTL            int64  `dynamodbav:"ttl"`
}

type dynamoTranslationHistory struct {
	logger       outbound.LoggerPort
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
}

func NewDynamoTranslationHistory(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI,
	dynamoConfig *config.DynamoConfig) outbound.TranslationHistoryPort {
	return &dynamoTranslationHistory{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (h *dynamoTranslationHistory) Save(ctx context.Context, record domain.TranslationRecord) error {
	item := dynamoTranslationItem{
		ID:             record.ID,
		Bucket:         record.Bucket,
		InputKey:       record.InputKey,
		TranscriptKey:  record.TranscriptKey,
		OutputKey:      record.OutputKey,
		SourceLanguage: record.SourceLanguage,
		TargetLanguage: record.TargetLanguage,
		CreatedAt:      record.CreatedAt.UTC().Format(time.RFC3339Nano),
		TTL:            record.CreatedAt.Add(time.Duration(h.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		h.logger.ErrorWithFields(err, "Failed to marshal translation item", map[string]interface{}{
			"id": record.ID,
		})
		return err
	}

	_, err = h.dynamoSvc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(h.dynamoConfig.TableName),
	})
	if err != nil {
		h.logger.ErrorWithFields(err, "Failed to save translation item", map[string]interface{}{
			"id":    record.ID,
			"table": h.dynamoConfig.TableName,
		})
		return err
	}

	return nil
}
