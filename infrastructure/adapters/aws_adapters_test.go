package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"
	"voice-translator-lambda/domain"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/translate"
)

func newTestSession(t *testing.T, endpoint string) *session.Session {
	t.Helper()
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String("eu-west-1"),
		Endpoint:         aws.String(endpoint),
		Credentials:      credentials.NewStaticCredentials("AKID", "SECRET", ""),
		S3ForcePathStyle: aws.Bool(true),
		MaxRetries:       aws.Int(0),
	})
	if err != nil {
		t.Fatal("Failed to create session:", err)
	}
	return sess
}

func TestAwsTranslator_Translate(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target := r.Header.Get("X-Amz-Target"); !strings.HasSuffix(target, ".TranslateText") {
			t.Errorf("unexpected target %q", target)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error("Failed to decode request:", err)
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		_, _ = w.Write([]byte(`{"TranslatedText":"bonjour le monde","SourceLanguageCode":"en","TargetLanguageCode":"fr"}`))
	}))
	defer srv.Close()

	translator := NewAwsTranslator(NewZerologWrapper(), translate.New(newTestSession(t, srv.URL)))
	text, err := translator.Translate(context.Background(), outbound.TranslateTextRequest{
		Text:               "hello world",
		SourceLanguageCode: "en",
		TargetLanguageCode: "fr",
	})
	if err != nil {
		t.Fatal("Translate failed:", err)
	}
	if text != "bonjour le monde" {
		t.Errorf("translated text = %q", text)
	}
	if got["Text"] != "hello world" || got["SourceLanguageCode"] != "en" || got["TargetLanguageCode"] != "fr" {
		t.Errorf("unexpected request %v", got)
	}
}

func TestAwsTranslator_PropagatesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"UnsupportedLanguagePairException","message":"unsupported pair"}`))
	}))
	defer srv.Close()

	translator := NewAwsTranslator(NewZerologWrapper(), translate.New(newTestSession(t, srv.URL)))
	_, err := translator.Translate(context.Background(), outbound.TranslateTextRequest{
		Text: "hello", SourceLanguageCode: "en", TargetLanguageCode: "xx",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestPollySynthesizer_Synthesize(t *testing.T) {
	audio := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x64}, 512)
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/speech" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error("Failed to decode request:", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("x-amzn-RequestCharacters", "11")
		_, _ = w.Write(audio)
	}))
	defer srv.Close()

	synthesizer := NewPollySynthesizer(NewZerologWrapper(), polly.New(newTestSession(t, srv.URL)), &config.PollyConfig{Engine: "standard"})
	stream, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:         "bonjour",
		VoiceID:      "Chantal",
		LanguageCode: "fr-CA",
		OutputFormat: outbound.Mp3OutputFormat,
	})
	if err != nil {
		t.Fatal("Synthesize failed:", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		t.Fatal("Failed to read audio stream:", err)
	}
	if !bytes.Equal(data, audio) {
		t.Errorf("audio mismatch: got %d bytes", len(data))
	}
	if got["VoiceId"] != "Chantal" || got["LanguageCode"] != "fr-CA" || got["OutputFormat"] != "mp3" || got["Engine"] != "standard" {
		t.Errorf("unexpected request %v", got)
	}
	if _, ok := got["SampleRate"]; ok {
		t.Errorf("sample rate should be omitted by default")
	}
}

func TestS3ObjectStore_UploadAndDownload(t *testing.T) {
	objects := make(map[string][]byte)
	headers := make(map[string]http.Header)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			body, err := io.ReadAll(r.Body)
			if err != nil {
				t.Error("Failed to read body:", err)
			}
			objects[r.URL.Path] = body
			headers[r.URL.Path] = r.Header.Clone()
			w.Header().Set("ETag", `"etag"`)
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			body, ok := objects[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`<Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`))
				return
			}
			http.ServeContent(w, r, filepath.Base(r.URL.Path), time.Now(), bytes.NewReader(body))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	store := NewS3ObjectStore(NewZerologWrapper(), s3.New(newTestSession(t, srv.URL)))
	ctx := context.Background()

	err := store.Upload(ctx, outbound.UploadObjectRequest{
		ObjectLocation: outbound.ObjectLocation{Bucket: "b1", Key: "transcript/1.txt"},
		Body:           strings.NewReader("hello world"),
		Size:           11,
		ContentType:    domain.TranscriptContentType,
		Metadata:       map[string]string{"target-language": "fr"},
	})
	if err != nil {
		t.Fatal("Upload failed:", err)
	}
	if string(objects["/b1/transcript/1.txt"]) != "hello world" {
		t.Errorf("stored object = %q", objects["/b1/transcript/1.txt"])
	}
	h := headers["/b1/transcript/1.txt"]
	if h.Get("Content-Type") != domain.TranscriptContentType {
		t.Errorf("content type = %q", h.Get("Content-Type"))
	}
	if h.Get("X-Amz-Meta-Target-Language") != "fr" {
		t.Errorf("metadata header missing: %v", h)
	}

	file, err := os.Create(filepath.Join(t.TempDir(), "download"))
	if err != nil {
		t.Fatal("Failed to create file:", err)
	}
	defer file.Close()

	n, err := store.Download(ctx, outbound.ObjectLocation{Bucket: "b1", Key: "transcript/1.txt"}, file)
	if err != nil {
		t.Fatal("Download failed:", err)
	}
	if n != 11 {
		t.Errorf("downloaded %d bytes, want 11", n)
	}
	content, err := os.ReadFile(file.Name())
	if err != nil {
		t.Fatal("Failed to read downloaded file:", err)
	}
	if string(content) != "hello world" {
		t.Errorf("downloaded content = %q", content)
	}

	_, err = store.Download(ctx, outbound.ObjectLocation{Bucket: "b1", Key: "missing.wav"}, file)
	if err == nil {
		t.Error("expected an error for a missing object")
	}
}

func TestDynamoTranslationHistory_Save(t *testing.T) {
	var got struct {
		TableName string
		Item      map[string]map[string]string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target := r.Header.Get("X-Amz-Target"); target != "DynamoDB_20120810.PutItem" {
			t.Errorf("unexpected target %q", target)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error("Failed to decode request:", err)
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	history := NewDynamoTranslationHistory(NewZerologWrapper(), dynamodb.New(newTestSession(t, srv.URL)),
		&config.DynamoConfig{TableName: "voice-translations", TtlMinutes: 60})

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	err := history.Save(context.Background(), domain.TranslationRecord{
		ID:             "1709294400000",
		Bucket:         "b1",
		InputKey:       "input/abc.wav",
		TranscriptKey:  "transcript/1709294400000.txt",
		OutputKey:      "output/1709294400000_fr.mp3",
		SourceLanguage: "en",
		TargetLanguage: "fr",
		CreatedAt:      createdAt,
	})
	if err != nil {
		t.Fatal("Save failed:", err)
	}

	if got.TableName != "voice-translations" {
		t.Errorf("table = %q", got.TableName)
	}
	if got.Item["output_key"]["S"] != "output/1709294400000_fr.mp3" {
		t.Errorf("unexpected item %v", got.Item)
	}
	if got.Item["ttl"]["N"] != "1709298000" {
		t.Errorf("ttl = %v, want 1709298000", got.Item["ttl"])
	}
}
