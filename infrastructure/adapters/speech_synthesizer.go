package adapters

import (
	"context"
	"io"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
)

type pollySynthesizer struct {
	logger      outbound.LoggerPort
	pollySvc    pollyiface.PollyAPI
	pollyConfig *config.PollyConfig
}

func NewPollySynthesizer(logger outbound.LoggerPort, pollySvc pollyiface.PollyAPI, pollyConfig *config.PollyConfig) outbound.SpeechSynthesizerPort {
	return &pollySynthesizer{
		logger:      logger,
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
	}
}

func (p *pollySynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	input := &polly.SynthesizeSpeechInput{
		Engine:       aws.String(p.pollyConfig.Engine),
		OutputFormat: aws.String(req.OutputFormat),
		Text:         aws.String(req.Text),
		VoiceId:      aws.String(req.VoiceID),
		LanguageCode: aws.String(req.LanguageCode),
	}
	if p.pollyConfig.SampleRate != "" {
		input.SampleRate = aws.String(p.pollyConfig.SampleRate)
	}

	output, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to synthesize speech", map[string]interface{}{
			"voice":  req.VoiceID,
			"locale": req.LanguageCode,
		})
		return nil, err
	}

	p.logger.DebugWithFields("Synthesized speech", map[string]interface{}{
		"voice":      req.VoiceID,
		"characters": aws.Int64Value(output.RequestCharacters),
	})
	return output.AudioStream, nil
}
