package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"voice-translator-lambda/application/ports/inbound"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/domain"

	"github.com/google/uuid"
)

const synthesisChunkSize = 2 * 1024

type voiceTranslationPipeline struct {
	logger      outbound.LoggerPort
	objectStore outbound.ObjectStorePort
	transcriber outbound.TranscriberPort
	translator  outbound.TranslatorPort
	synthesizer outbound.SpeechSynthesizerPort
	idSource    outbound.ObjectIDSource
	history     outbound.TranslationHistoryPort
	tmpDir      string
	now         func() time.Time
}

// NewVoiceTranslationPipeline wires the pipeline. history may be nil.
func NewVoiceTranslationPipeline(
	logger outbound.LoggerPort,
	objectStore outbound.ObjectStorePort,
	transcriber outbound.TranscriberPort,
	translator outbound.TranslatorPort,
	synthesizer outbound.SpeechSynthesizerPort,
	idSource outbound.ObjectIDSource,
	history outbound.TranslationHistoryPort,
	tmpDir string) inbound.VoiceTranslationPipelinePort {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &voiceTranslationPipeline{
		logger:      logger,
		objectStore: objectStore,
		transcriber: transcriber,
		translator:  translator,
		synthesizer: synthesizer,
		idSource:    idSource,
		history:     history,
		tmpDir:      tmpDir,
		now:         time.Now,
	}
}

func (p *voiceTranslationPipeline) Process(ctx context.Context, request domain.InvocationRequest) (*domain.StoredObjectReference, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	sourceProfile, err := domain.SourceProfile(request.SourceLanguage)
	if err != nil {
		return nil, err
	}
	targetProfile, err := domain.TargetProfile(request.TargetLanguage)
	if err != nil {
		return nil, err
	}

	logger := p.loggerFor(ctx)
	id := p.idSource.NextID()
	fields := map[string]interface{}{
		"id":              id,
		"bucket":          request.Bucket,
		"key":             request.Key,
		"source_language": request.SourceLanguage,
		"target_language": request.TargetLanguage,
	}
	logger.InfoWithFields("Starting voice translation", fields)

	transcript, err := p.transcribe(ctx, request, sourceProfile, id)
	if err != nil {
		return nil, err
	}

	translation, err := p.translate(ctx, transcript.Text, sourceProfile, targetProfile)
	if err != nil {
		return nil, err
	}

	artifact, err := p.synthesize(ctx, translation.Text, targetProfile)
	if err != nil {
		return nil, err
	}
	defer p.removeFile(ctx, artifact.FileName)

	ref, err := p.store(ctx, request, artifact, id)
	if err != nil {
		return nil, err
	}
	ref.TranscriptKey = transcript.ObjectKey

	p.recordHistory(ctx, request, ref, id)

	logger.InfoWithFields("Voice translation complete", map[string]interface{}{
		"id":         id,
		"output_key": ref.Key,
	})

	return ref, nil
}

func (p *voiceTranslationPipeline) transcribe(ctx context.Context, request domain.InvocationRequest,
	profile domain.LanguageProfile, id string) (*domain.TranscriptionResult, error) {
	inputFile, err := p.createTempFile(filepath.Ext(request.Key))
	if err != nil {
		return nil, err
	}
	defer p.closeAndRemove(ctx, inputFile)

	_, err = p.objectStore.Download(ctx, outbound.ObjectLocation{Bucket: request.Bucket, Key: request.Key}, inputFile)
	if err != nil {
		return nil, upstreamError(ctx, "storage", "download "+request.Key, err)
	}

	if _, err := inputFile.Seek(0, io.SeekStart); err != nil {
		return nil, &domain.ResourceError{Op: "seek", Path: inputFile.Name(), Err: err}
	}

	text, err := p.transcriber.Transcribe(ctx, outbound.TranscribeRequest{
		Locale:   profile.TranscriptionLocale,
		FileName: filepath.Base(request.Key),
		Audio:    inputFile,
	})
	if err != nil {
		return nil, upstreamError(ctx, "transcription", "transcribe", err)
	}
	p.loggerFor(ctx).DebugWithFields("Transcript", map[string]interface{}{"id": id, "text": text})

	transcriptKey := domain.TranscriptKey(id)
	err = p.objectStore.Upload(ctx, outbound.UploadObjectRequest{
		ObjectLocation: outbound.ObjectLocation{Bucket: request.Bucket, Key: transcriptKey},
		Body:           strings.NewReader(text),
		Size:           int64(len(text)),
		ContentType:    domain.TranscriptContentType,
		Metadata:       p.objectMetadata(request),
	})
	if err != nil {
		return nil, upstreamError(ctx, "storage", "upload "+transcriptKey, err)
	}

	return &domain.TranscriptionResult{Text: text, ObjectKey: transcriptKey}, nil
}

func (p *voiceTranslationPipeline) translate(ctx context.Context, text string,
	source domain.LanguageProfile, target domain.LanguageProfile) (*domain.TranslationResult, error) {
	translated, err := p.translator.Translate(ctx, outbound.TranslateTextRequest{
		Text:               text,
		SourceLanguageCode: source.TranslationCode,
		TargetLanguageCode: target.TranslationCode,
	})
	if err != nil {
		return nil, upstreamError(ctx, "translation", "translate", err)
	}
	p.loggerFor(ctx).DebugWithFields("Translation", map[string]interface{}{
		"source": source.TranslationCode,
		"target": target.TranslationCode,
		"text":   translated,
	})

	return &domain.TranslationResult{
		Text:       translated,
		SourceCode: source.TranslationCode,
		TargetCode: target.TranslationCode,
	}, nil
}

// synthesize leaves the audio in a temp file owned by the caller, unless it fails.
func (p *voiceTranslationPipeline) synthesize(ctx context.Context, text string,
	profile domain.LanguageProfile) (*domain.SynthesisArtifact, error) {
	audio, err := p.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:         text,
		VoiceID:      profile.SynthesisVoice,
		LanguageCode: profile.SynthesisLocale,
		OutputFormat: outbound.Mp3OutputFormat,
	})
	if err != nil {
		return nil, upstreamError(ctx, "synthesis", "synthesize", err)
	}
	defer func(audio io.ReadCloser) {
		err := audio.Close()
		if err != nil {
			p.loggerFor(ctx).Error(err, "Failed to close the audio stream")
		}
	}(audio)

	outputFile, err := p.createTempFile(".mp3")
	if err != nil {
		return nil, err
	}

	size, copyErr := p.copyAudio(ctx, outputFile, audio)
	closeErr := outputFile.Close()
	if copyErr == nil && closeErr != nil {
		copyErr = &domain.ResourceError{Op: "close", Path: outputFile.Name(), Err: closeErr}
	}
	if copyErr != nil {
		p.removeFile(ctx, outputFile.Name())
		return nil, copyErr
	}

	return &domain.SynthesisArtifact{
		FileName:    outputFile.Name(),
		Size:        size,
		ContentType: domain.AudioContentType,
	}, nil
}

func (p *voiceTranslationPipeline) copyAudio(ctx context.Context, dst *os.File, src io.Reader) (int64, error) {
	buffer := make([]byte, synthesisChunkSize)
	var written int64
	for {
		n, readErr := src.Read(buffer)
		if n > 0 {
			if _, err := dst.Write(buffer[:n]); err != nil {
				return written, &domain.ResourceError{Op: "write", Path: dst.Name(), Err: err}
			}
			written += int64(n)
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, upstreamError(ctx, "synthesis", "read audio stream", readErr)
		}
	}
}

func (p *voiceTranslationPipeline) store(ctx context.Context, request domain.InvocationRequest,
	artifact *domain.SynthesisArtifact, id string) (*domain.StoredObjectReference, error) {
	file, err := os.Open(artifact.FileName)
	if err != nil {
		return nil, &domain.ResourceError{Op: "open", Path: artifact.FileName, Err: err}
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			p.loggerFor(ctx).Error(err, "Failed to close the synthesized audio file")
		}
	}(file)

	outputKey := domain.OutputKey(id, request.TargetLanguage)
	err = p.objectStore.Upload(ctx, outbound.UploadObjectRequest{
		ObjectLocation: outbound.ObjectLocation{Bucket: request.Bucket, Key: outputKey},
		Body:           file,
		Size:           artifact.Size,
		ContentType:    artifact.ContentType,
		Metadata:       p.objectMetadata(request),
	})
	if err != nil {
		return nil, upstreamError(ctx, "storage", "upload "+outputKey, err)
	}

	return &domain.StoredObjectReference{Bucket: request.Bucket, Key: outputKey}, nil
}

func (p *voiceTranslationPipeline) recordHistory(ctx context.Context, request domain.InvocationRequest,
	ref *domain.StoredObjectReference, id string) {
	if p.history == nil {
		return
	}
	err := p.history.Save(ctx, domain.TranslationRecord{
		ID:             id,
		Bucket:         request.Bucket,
		InputKey:       request.Key,
		TranscriptKey:  ref.TranscriptKey,
		OutputKey:      ref.Key,
		SourceLanguage: request.SourceLanguage,
		TargetLanguage: request.TargetLanguage,
		CreatedAt:      p.now(),
	})
	if err != nil {
		p.loggerFor(ctx).WarnWithFields("Failed to record translation history", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
	}
}

func (p *voiceTranslationPipeline) objectMetadata(request domain.InvocationRequest) map[string]string {
	return map[string]string{
		"source-key":      request.Key,
		"source-language": request.SourceLanguage,
		"target-language": request.TargetLanguage,
	}
}

func (p *voiceTranslationPipeline) createTempFile(ext string) (*os.File, error) {
	fileName := filepath.Join(p.tmpDir, uuid.NewString()+ext)
	file, err := os.Create(fileName)
	if err != nil {
		return nil, &domain.ResourceError{Op: "create", Path: fileName, Err: err}
	}
	return file, nil
}

func (p *voiceTranslationPipeline) closeAndRemove(ctx context.Context, file *os.File) {
	err := file.Close()
	if err != nil {
		p.loggerFor(ctx).Error(err, "Failed to close the temp file")
	}
	p.removeFile(ctx, file.Name())
}

func (p *voiceTranslationPipeline) removeFile(ctx context.Context, name string) {
	err := os.Remove(name)
	if err != nil && !os.IsNotExist(err) {
		p.loggerFor(ctx).Error(err, "Failed to remove the temp file")
	}
}

// loggerFor prefers the request-scoped logger set by the trigger.
func (p *voiceTranslationPipeline) loggerFor(ctx context.Context) outbound.LoggerPort {
	return outbound.LoggerFromContext(ctx, p.logger)
}

// upstreamError blames the collaborator unless the invocation itself was cancelled or timed out.
func upstreamError(ctx context.Context, service string, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &domain.UpstreamServiceError{Service: service, Op: op, Err: err}
}
