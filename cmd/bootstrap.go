package main

import (
	"fmt"
	"voice-translator-lambda/application/ports/inbound"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/application/services"
	"voice-translator-lambda/config"
	"voice-translator-lambda/domain"
	"voice-translator-lambda/infrastructure/adapters"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/transcribestreamingservice"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/panjf2000/ants/v2"
)

type application struct {
	logger         outbound.LoggerPort
	pipeline       inbound.VoiceTranslationPipelinePort
	pipelineConfig *config.PipelineConfig
	workerPool     *ants.Pool
}

func (a *application) Release() {
	a.workerPool.Release()
}

func newWorkerPool(logger outbound.LoggerPort, size int) (*ants.Pool, error) {
	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}
	return ants.NewPool(size, ants.WithPanicHandler(panicHandler))
}

func bootstrap() (*application, error) {
	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		return nil, err
	}
	if err := adapters.SetLogLevel(pipelineConfig.LogLevel); err != nil {
		return nil, err
	}
	if err := domain.ValidateLanguageProfiles(); err != nil {
		return nil, fmt.Errorf("invalid language table: %w", err)
	}

	awsConfig, err := config.GetAwsConfig()
	if err != nil {
		return nil, err
	}
	s3Config, err := config.GetS3Config()
	if err != nil {
		return nil, err
	}
	transcribeConfig, err := config.GetTranscribeConfig()
	if err != nil {
		return nil, err
	}
	pollyConfig, err := config.GetPollyConfig()
	if err != nil {
		return nil, err
	}
	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		return nil, err
	}

	zeroLogger := adapters.NewZerologWrapper()

	workerPool, err := newWorkerPool(zeroLogger, pipelineConfig.WorkerPoolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	sess, err := adapters.NewAwsSession(awsConfig, s3Config)
	if err != nil {
		workerPool.Release()
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	objectStore, err := newObjectStore(zeroLogger, sess, s3Config)
	if err != nil {
		workerPool.Release()
		return nil, err
	}

	transcriber, err := newTranscriber(zeroLogger, sess, workerPool, transcribeConfig)
	if err != nil {
		workerPool.Release()
		return nil, err
	}

	translator := adapters.NewAwsTranslator(zeroLogger, translate.New(sess))
	synthesizer := adapters.NewPollySynthesizer(zeroLogger, polly.New(sess), pollyConfig)

	var idSource outbound.ObjectIDSource
	switch pipelineConfig.ObjectIDStrategy {
	case config.UUIDObjectIDStrategy:
		idSource = adapters.NewUUIDIDSource()
	default:
		idSource = adapters.NewTimestampIDSource()
	}

	var history outbound.TranslationHistoryPort
	if dynamoConfig.Enabled() {
		history = adapters.NewDynamoTranslationHistory(zeroLogger, dynamodb.New(sess), dynamoConfig)
	}

	pipeline := services.NewVoiceTranslationPipeline(
		zeroLogger,
		objectStore,
		transcriber,
		translator,
		synthesizer,
		idSource,
		history,
		pipelineConfig.TmpDir,
	)

	zeroLogger.InfoWithFields("Voice translator ready", map[string]interface{}{
		"storage_provider":    s3Config.Provider,
		"transcribe_provider": transcribeConfig.Provider,
		"object_id_strategy":  pipelineConfig.ObjectIDStrategy,
		"history_enabled":     dynamoConfig.Enabled(),
	})

	return &application{
		logger:         zeroLogger,
		pipeline:       pipeline,
		pipelineConfig: pipelineConfig,
		workerPool:     workerPool,
	}, nil
}

func newObjectStore(logger outbound.LoggerPort, sess *session.Session, s3Config *config.S3Config) (outbound.ObjectStorePort, error) {
	if s3Config.Provider == config.MinioStorageProvider {
		minioConfig, err := config.GetMinioConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewMinioObjectStore(logger, minioConfig)
	}
	return adapters.NewS3ObjectStore(logger, s3.New(sess)), nil
}

func newTranscriber(logger outbound.LoggerPort, sess *session.Session, workerPool *ants.Pool,
	transcribeConfig *config.TranscribeConfig) (outbound.TranscriberPort, error) {
	if transcribeConfig.Provider == config.OpenAITranscribeProvider {
		openAIConfig, err := config.GetOpenAIConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewWhisperTranscriber(logger, openAIConfig), nil
	}
	return adapters.NewAwsStreamingTranscriber(logger, transcribestreamingservice.New(sess), workerPool, transcribeConfig), nil
}
