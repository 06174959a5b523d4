package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/transcribestreamingservice"
	"github.com/aws/aws-sdk-go/service/transcribestreamingservice/transcribestreamingserviceiface"
	"github.com/go-audio/wav"
)

var ErrUnsupportedAudio = errors.New("unsupported audio format")

type pcmAudio struct {
	SampleRate int
	Channels   int
	Data       io.Reader
}

// awsStreamingTranscriber sends a whole WAV file through Transcribe streaming and
// joins the final (non-partial) results.
type awsStreamingTranscriber struct {
	logger           outbound.LoggerPort
	transcribeSvc    transcribestreamingserviceiface.TranscribeStreamingServiceAPI
	workerPool       outbound.TaskDispatcher
	transcribeConfig *config.TranscribeConfig
}

func NewAwsStreamingTranscriber(logger outbound.LoggerPort,
	transcribeSvc transcribestreamingserviceiface.TranscribeStreamingServiceAPI,
	workerPool outbound.TaskDispatcher, transcribeConfig *config.TranscribeConfig) outbound.TranscriberPort {
	return &awsStreamingTranscriber{
		logger:           logger,
		transcribeSvc:    transcribeSvc,
		workerPool:       workerPool,
		transcribeConfig: transcribeConfig,
	}
}

func (t *awsStreamingTranscriber) Transcribe(ctx context.Context, req outbound.TranscribeRequest) (string, error) {
	audio, err := readPCM(req.Audio)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to read WAV audio", map[string]interface{}{
			"file": req.FileName,
		})
		return "", err
	}

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := newStreamTranscriptionInput(req.Locale, audio)

	resp, err := t.transcribeSvc.StartStreamTranscriptionWithContext(newCtx, input)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to start stream transcription", map[string]interface{}{
			"locale": req.Locale,
		})
		return "", err
	}
	stream := resp.GetStream()
	defer func(stream *transcribestreamingservice.StartStreamTranscriptionEventStream) {
		err := stream.Close()
		if err != nil {
			t.logger.Error(err, "Failed to close the transcription stream")
		}
	}(stream)

	writeErrCh := make(chan error, 1)
	err = t.workerPool.Submit(func() {
		writeErrCh <- pumpAudio(newCtx, cancel, stream.Writer, t.transcribeConfig.FrameSize, audio.Data)
	})
	if err != nil {
		t.logger.Error(err, "Failed to submit the audio writer")
		return "", err
	}

	text := collectTranscript(stream.Events())

	if err := stream.Err(); err != nil {
		t.logger.Error(err, "Transcription stream failed")
		return "", err
	}

	if err := awaitWriter(ctx, writeErrCh); err != nil {
		t.logger.Error(err, "Failed to stream audio")
		return "", err
	}

	return text, nil
}

func newStreamTranscriptionInput(locale string, audio *pcmAudio) *transcribestreamingservice.StartStreamTranscriptionInput {
	input := &transcribestreamingservice.StartStreamTranscriptionInput{
		LanguageCode:         aws.String(locale),
		MediaEncoding:        aws.String(transcribestreamingservice.MediaEncodingPcm),
		MediaSampleRateHertz: aws.Int64(int64(audio.SampleRate)),
	}
	if audio.Channels > 1 {
		input.NumberOfChannels = aws.Int64(int64(audio.Channels))
		input.EnableChannelIdentification = aws.Bool(true)
	}
	return input
}

// pumpAudio sends data in frames and closes the writer. A failed send cancels the
// stream so the event reader stops waiting.
func pumpAudio(ctx context.Context, cancel context.CancelFunc, writer transcribestreamingservice.AudioStreamWriter,
	frameSize int, data io.Reader) error {
	err := transcribestreamingservice.StreamAudioFromReader(ctx, writer, frameSize, data)
	if err != nil {
		cancel()
	}
	return err
}

// collectTranscript joins the first alternative of every final result, in arrival order.
func collectTranscript(events <-chan transcribestreamingservice.TranscriptResultStreamEvent) string {
	var builder strings.Builder
	for event := range events {
		transcriptEvent, ok := event.(*transcribestreamingservice.TranscriptEvent)
		if !ok || transcriptEvent.Transcript == nil {
			continue
		}
		for _, result := range transcriptEvent.Transcript.Results {
			if aws.BoolValue(result.IsPartial) || len(result.Alternatives) == 0 {
				continue
			}
			text := strings.TrimSpace(aws.StringValue(result.Alternatives[0].Transcript))
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString(" ")
			}
			builder.WriteString(text)
		}
	}
	return builder.String()
}

func awaitWriter(ctx context.Context, writeErrCh <-chan error) error {
	select {
	case err := <-writeErrCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func readPCM(r io.ReadSeeker) (*pcmAudio, error) {
	decoder := wav.NewDecoder(r)
	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAudio, err)
	}
	if decoder.WavAudioFormat != 1 || decoder.BitDepth != 16 {
		return nil, fmt.Errorf("%w: need 16-bit linear PCM, got format %d with %d bits",
			ErrUnsupportedAudio, decoder.WavAudioFormat, decoder.BitDepth)
	}
	if decoder.SampleRate == 0 || decoder.NumChans == 0 || decoder.PCMChunk == nil {
		return nil, fmt.Errorf("%w: missing fmt or data chunk", ErrUnsupportedAudio)
	}

	return &pcmAudio{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		Data:       decoder.PCMChunk,
	}, nil
}
