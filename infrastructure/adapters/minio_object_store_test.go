package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"
	"voice-translator-lambda/domain"
)

type fakeMinioServer struct {
	mu      sync.Mutex
	objects map[string][]byte
	headers map[string]http.Header
}

func (f *fakeMinioServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.objects[r.URL.Path] = body
		f.headers[r.URL.Path] = r.Header.Clone()
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Content-Type", "audio/wav")
		http.ServeContent(w, r, filepath.Base(r.URL.Path), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), bytes.NewReader(body))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newMinioTestStore(t *testing.T) (outbound.ObjectStorePort, *fakeMinioServer) {
	t.Helper()
	fake := &fakeMinioServer{objects: make(map[string][]byte), headers: make(map[string]http.Header)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewMinioObjectStore(NewZerologWrapper(), &config.MinioConfig{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "minio",
		SecretKey: "minio-secret",
		Region:    "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		t.Fatal("NewMinioObjectStore failed:", err)
	}
	return store, fake
}

func TestMinioObjectStore_Upload(t *testing.T) {
	store, fake := newMinioTestStore(t)

	err := store.Upload(context.Background(), outbound.UploadObjectRequest{
		ObjectLocation: outbound.ObjectLocation{Bucket: "b1", Key: "transcript/1.txt"},
		Body:           strings.NewReader("hello world"),
		Size:           11,
		ContentType:    domain.TranscriptContentType,
		Metadata:       map[string]string{"target-language": "fr"},
	})
	if err != nil {
		t.Fatal("Upload failed:", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	body, ok := fake.objects["/b1/transcript/1.txt"]
	if !ok {
		t.Fatalf("object not stored, have %v", fake.objects)
	}
	if !strings.Contains(string(body), "hello world") {
		t.Errorf("stored body = %q", body)
	}
	h := fake.headers["/b1/transcript/1.txt"]
	if h.Get("Content-Type") != domain.TranscriptContentType {
		t.Errorf("content type = %q", h.Get("Content-Type"))
	}
	if h.Get("X-Amz-Meta-Target-Language") != "fr" {
		t.Errorf("metadata header missing: %v", h)
	}
}

func TestMinioObjectStore_Download(t *testing.T) {
	store, fake := newMinioTestStore(t)
	fake.objects["/b1/input/abc.wav"] = []byte("RIFF....WAVEfmt audio")

	file, err := os.Create(filepath.Join(t.TempDir(), "download"))
	if err != nil {
		t.Fatal("Failed to create file:", err)
	}
	defer file.Close()

	n, err := store.Download(context.Background(), outbound.ObjectLocation{Bucket: "b1", Key: "input/abc.wav"}, file)
	if err != nil {
		t.Fatal("Download failed:", err)
	}
	if n != int64(len("RIFF....WAVEfmt audio")) {
		t.Errorf("downloaded %d bytes", n)
	}
	content, err := os.ReadFile(file.Name())
	if err != nil {
		t.Fatal("Failed to read downloaded file:", err)
	}
	if string(content) != "RIFF....WAVEfmt audio" {
		t.Errorf("downloaded content = %q", content)
	}
}

func TestMinioObjectStore_DownloadMissingObject(t *testing.T) {
	store, _ := newMinioTestStore(t)

	file, err := os.Create(filepath.Join(t.TempDir(), "download"))
	if err != nil {
		t.Fatal("Failed to create file:", err)
	}
	defer file.Close()

	if _, err := store.Download(context.Background(), outbound.ObjectLocation{Bucket: "b1", Key: "missing.wav"}, file); err == nil {
		t.Fatal("expected an error for a missing object")
	}
}
