package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"voice-translator-lambda/domain"
	"voice-translator-lambda/infrastructure/adapters"

	"github.com/panjf2000/ants/v2"
)

type keyedPipeline struct {
	mu    sync.Mutex
	calls []string
}

func (k *keyedPipeline) Process(_ context.Context, request domain.InvocationRequest) (*domain.StoredObjectReference, error) {
	k.mu.Lock()
	k.calls = append(k.calls, request.Key)
	k.mu.Unlock()
	if request.Key == "input/broken.wav" {
		return nil, &domain.UpstreamServiceError{Service: "storage", Op: "download", Err: errors.New("NoSuchKey")}
	}
	return &domain.StoredObjectReference{Bucket: request.Bucket, Key: "output/" + request.Key}, nil
}

func TestBatchTranslator_Run(t *testing.T) {
	pool, err := ants.NewPool(2)
	if err != nil {
		t.Fatal("Failed to create pool:", err)
	}
	defer pool.Release()

	pipeline := &keyedPipeline{}
	batch := NewBatchTranslator(adapters.NewZerologWrapper(), pipeline, pool)

	keys := []string{"input/a.wav", "input/b.wav", "input/broken.wav", "input/c.wav", "input/d.wav"}
	var requests []domain.InvocationRequest
	for _, key := range keys {
		requests = append(requests, domain.InvocationRequest{Bucket: "b1", Key: key, SourceLanguage: "en", TargetLanguage: "fr"})
	}

	results, err := batch.Run(context.Background(), requests)
	if err != nil {
		t.Fatal("Run failed:", err)
	}

	var succeeded []string
	var failed []string
	for result := range results {
		if result.Err != nil {
			failed = append(failed, result.Request.Key)
			continue
		}
		succeeded = append(succeeded, result.Ref.Key)
	}
	sort.Strings(succeeded)

	if len(failed) != 1 || failed[0] != "input/broken.wav" {
		t.Errorf("failed = %v", failed)
	}
	want := []string{"output/input/a.wav", "output/input/b.wav", "output/input/c.wav", "output/input/d.wav"}
	if len(succeeded) != len(want) {
		t.Fatalf("succeeded = %v", succeeded)
	}
	for i := range want {
		if succeeded[i] != want[i] {
			t.Errorf("succeeded = %v, want %v", succeeded, want)
		}
	}
	if len(pipeline.calls) != len(keys) {
		t.Errorf("pipeline called %d times, want %d", len(pipeline.calls), len(keys))
	}
}
