package dispatcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/insha2472/english-to-kannada-translator/internal/offline"
	"github.com/insha2472/english-to-kannada-translator/internal/store"
	"github.com/insha2472/english-to-kannada-translator/internal/translator"
)

type mockService struct {
	nameVal       string
	translateFunc func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error)
	callCount     atomic.Int32
}

func (m *mockService) Name() string {
	if m.nameVal == "" {
		return "mock"
	}
	return m.nameVal
}

func (m *mockService) Translate(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	m.callCount.Add(1)
	if m.translateFunc != nil {
		return m.translateFunc(ctx, cfg, req)
	}
	return &translator.ServiceResult{ServiceName: m.Name(), TranslatedText: "ನಮಸ್ಕಾರ"}, nil
}

func (m *mockService) IsAvailable(ctx context.Context) error { return nil }

func (m *mockService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "kn"}, nil
}

func failingService() *mockService {
	return &mockService{
		nameVal: "broken",
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			return &translator.ServiceResult{ServiceName: "broken", Error: "boom"}, errors.New("boom")
		},
	}
}

func TestDispatcher_EmptyInput(t *testing.T) {
	d := New(&mockService{}, offline.New(nil), nil, Config{})

	res := d.Translate(context.Background(), "")
	if res.Text != "" {
		t.Errorf("expected empty result, got %q", res.Text)
	}

	res = d.Translate(context.Background(), "   \t ")
	if res.Text != "" {
		t.Errorf("expected empty result for whitespace, got %q", res.Text)
	}
}

func TestDispatcher_RemoteSuccess(t *testing.T) {
	svc := &mockService{}
	d := New(svc, offline.New(nil), nil, Config{Timeout: time.Second})

	res := d.Translate(context.Background(), "hello")
	if res.Text != "ನಮಸ್ಕಾರ" {
		t.Errorf("expected remote result, got %q", res.Text)
	}
	if res.Source != "mock" {
		t.Errorf("expected source 'mock', got %q", res.Source)
	}
	if svc.callCount.Load() != 1 {
		t.Errorf("expected 1 remote call, got %d", svc.callCount.Load())
	}
}

func TestDispatcher_FallbackOnRemoteError(t *testing.T) {
	fallback := offline.New(nil)
	d := New(failingService(), fallback, nil, Config{Timeout: time.Second})

	inputs := []string{"Hello, friend!", "good morning", "unknown words here", "water please"}
	for _, input := range inputs {
		res := d.Translate(context.Background(), input)
		if res.Source != SourceOffline {
			t.Errorf("Translate(%q) source = %q, want %q", input, res.Source, SourceOffline)
		}
		// The dispatcher output must equal the fallback translator's output exactly.
		if want := fallback.Translate(input); res.Text != want {
			t.Errorf("Translate(%q) = %q, want fallback output %q", input, res.Text, want)
		}
	}
}

func TestDispatcher_TrimsPaddedInput(t *testing.T) {
	fallback := offline.New(nil)
	d := New(failingService(), fallback, nil, Config{Timeout: time.Second})

	// Padded input must still match exact dictionary phrases.
	res := d.Translate(context.Background(), "  good morning \t")
	if res.Text != "ಶುಭೋದಯ" {
		t.Errorf("expected exact phrase match %q, got %q", "ಶುಭೋದಯ", res.Text)
	}
}

func TestDispatcher_FallbackOnNonKannadaResult(t *testing.T) {
	// A remote service that echoes English back must be treated as failed.
	echo := &mockService{
		nameVal: "echo",
		translateFunc: func(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			return &translator.ServiceResult{ServiceName: "echo", TranslatedText: req.Text}, nil
		},
	}
	fallback := offline.New(nil)
	d := New(echo, fallback, nil, Config{Timeout: time.Second})

	res := d.Translate(context.Background(), "good morning everyone")
	if res.Source != SourceOffline {
		t.Errorf("expected offline fallback, got source %q", res.Source)
	}
	if want := fallback.Translate("good morning everyone"); res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

func TestDispatcher_ChunksLongInput(t *testing.T) {
	svc := &mockService{}
	d := New(svc, offline.New(nil), nil, Config{Timeout: time.Second, MaxChunkChars: 20})

	res := d.Translate(context.Background(), "First sentence here. Second sentence here. Third one.")
	if res.Source != "mock" {
		t.Fatalf("expected remote source, got %q", res.Source)
	}
	if svc.callCount.Load() < 2 {
		t.Errorf("expected multiple chunked calls, got %d", svc.callCount.Load())
	}
}

func TestDispatcher_MemoryCacheHit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer db.Close()

	svc := &mockService{}
	d := New(svc, offline.New(nil), db, Config{Timeout: time.Second})

	first := d.Translate(context.Background(), "hello")
	if first.Source != "mock" {
		t.Fatalf("expected remote source on first call, got %q", first.Source)
	}

	second := d.Translate(context.Background(), "hello")
	if second.Source != SourceCache {
		t.Errorf("expected cache source on second call, got %q", second.Source)
	}
	if second.Text != first.Text {
		t.Errorf("cache returned %q, remote returned %q", second.Text, first.Text)
	}
	if svc.callCount.Load() != 1 {
		t.Errorf("expected 1 remote call total, got %d", svc.callCount.Load())
	}
}

func TestDispatcher_OfflineResultsNotCached(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer db.Close()

	svc := failingService()
	d := New(svc, offline.New(nil), db, Config{Timeout: time.Second})

	_ = d.Translate(context.Background(), "hello")
	res := d.Translate(context.Background(), "hello")
	if res.Source != SourceOffline {
		t.Errorf("expected offline source on repeat call, got %q", res.Source)
	}
	if svc.callCount.Load() != 2 {
		t.Errorf("expected remote to be retried on each call, got %d calls", svc.callCount.Load())
	}
}
