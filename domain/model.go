package domain

import "time"

type InvocationRequest struct {
	Bucket         string
	Key            string
	SourceLanguage string
	TargetLanguage string
}

func (r InvocationRequest) Validate() error {
	if r.Bucket == "" {
		return invalidRequest("bucket is required")
	}
	if r.Key == "" {
		return invalidRequest("key is required")
	}
	return nil
}

type TranscriptionResult struct {
	Text      string
	ObjectKey string
}

type TranslationResult struct {
	Text       string
	SourceCode string
	TargetCode string
}

type SynthesisArtifact struct {
	FileName    string
	Size        int64
	ContentType string
}

type StoredObjectReference struct {
	Bucket        string
	Key           string
	TranscriptKey string
}

type TranslationRecord struct {
	ID             string
	Bucket         string
	InputKey       string
	TranscriptKey  string
	OutputKey      string
	SourceLanguage string
	TargetLanguage string
	CreatedAt      time.Time
}

const (
	TranscriptContentType = "text/plain; charset=utf-8"
	AudioContentType      = "audio/mpeg"
)

func TranscriptKey(id string) string {
	return "transcript/" + id + ".txt"
}

func OutputKey(id string, targetLanguage string) string {
	return "output/" + id + "_" + targetLanguage + ".mp3"
}
