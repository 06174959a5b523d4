package services

import (
	"context"
	"voice-translator-lambda/application/ports/inbound"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/channel_utils"
	"voice-translator-lambda/domain"
)

// BatchResult is the outcome of one request in a batch.
type BatchResult struct {
	Request domain.InvocationRequest
	Ref     *domain.StoredObjectReference
	Err     error
}

type BatchTranslator struct {
	logger     outbound.LoggerPort
	pipeline   inbound.VoiceTranslationPipelinePort
	workerPool outbound.TaskDispatcher
}

// NewBatchTranslator runs independent invocations on workerPool. The pipeline's own
// collaborators must not depend on the same pool, or a full pool can starve them.
func NewBatchTranslator(logger outbound.LoggerPort, pipeline inbound.VoiceTranslationPipelinePort,
	workerPool outbound.TaskDispatcher) *BatchTranslator {
	return &BatchTranslator{
		logger:     logger,
		pipeline:   pipeline,
		workerPool: workerPool,
	}
}

// Run processes every request concurrently. Results arrive in completion order and the
// channel is closed after the last one.
func (b *BatchTranslator) Run(ctx context.Context, requests []domain.InvocationRequest) (<-chan BatchResult, error) {
	channels := make([]<-chan BatchResult, 0, len(requests))
	for _, request := range requests {
		req := request
		resultCh := make(chan BatchResult, 1)
		err := b.workerPool.Submit(func() {
			defer close(resultCh)
			ref, err := b.pipeline.Process(ctx, req)
			resultCh <- BatchResult{Request: req, Ref: ref, Err: err}
		})
		if err != nil {
			b.logger.ErrorWithFields(err, "Failed to submit translation", map[string]interface{}{"key": req.Key})
			resultCh <- BatchResult{Request: req, Err: err}
			close(resultCh)
		}
		channels = append(channels, resultCh)
	}

	return channel_utils.MergeChannels(b.workerPool, channels...)
}
