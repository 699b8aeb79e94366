// Package dispatcher selects between remote and offline translation. It tries
// the configured remote service first and on any failure silently falls back
// to the dictionary translator, so callers never see a translation error.
package dispatcher

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insha2472/english-to-kannada-translator/internal"
	"github.com/insha2472/english-to-kannada-translator/internal/chunker"
	"github.com/insha2472/english-to-kannada-translator/internal/offline"
	"github.com/insha2472/english-to-kannada-translator/internal/store"
	"github.com/insha2472/english-to-kannada-translator/internal/translator"
	"github.com/insha2472/english-to-kannada-translator/internal/validator"
)

// SourceOffline and SourceCache identify non-remote result origins; remote
// results carry the service name instead.
const (
	SourceOffline = "offline"
	SourceCache   = "cache"
)

type Config struct {
	// Timeout bounds each remote call.
	Timeout time.Duration
	// MaxAttempts is the total number of tries per remote call, including
	// the first (1 = no retries).
	MaxAttempts int
	// MaxChunkChars splits longer inputs into sentence-aligned chunks
	// before the remote call. ≤ 0 disables splitting.
	MaxChunkChars int
	// FuzzyThreshold enables near-match translation memory lookup when > 0.
	FuzzyThreshold float64
	// Credentials is a Google Cloud credentials file path, used only by the
	// official API backend.
	Credentials string
}

// Result is a completed translation and the path that produced it.
type Result struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

type Dispatcher struct {
	service  translator.TranslationService
	fallback *offline.Translator
	validate *validator.Validator
	db       *store.Store
	config   Config
}

// New creates a Dispatcher. db may be nil to run without translation memory
// and request history.
func New(service translator.TranslationService, fallback *offline.Translator, db *store.Store, config Config) *Dispatcher {
	if config.Timeout <= 0 {
		config.Timeout = 6 * time.Second
	}
	return &Dispatcher{
		service:  service,
		fallback: fallback,
		validate: validator.New(),
		db:       db,
		config:   config,
	}
}

// Translate translates English text to Kannada. Blank input yields an empty
// result; everything else yields a translation, falling back to the offline
// dictionary when the remote service fails in any way.
func (d *Dispatcher) Translate(ctx context.Context, text string) Result {
	// Trim once so padded input (form posts, CSV cells) still hits exact
	// dictionary phrases and cache keys.
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Text: "", Source: SourceOffline}
	}

	if cached, ok := d.lookupMemory(ctx, text); ok {
		return Result{Text: cached, Source: SourceCache}
	}

	reqID := uuid.New().String()
	d.recordRequest(ctx, reqID, text)

	translated, err := d.translateRemote(ctx, reqID, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Remote translation unavailable (%v), using offline dictionary\n", err)
		return Result{Text: d.fallback.Translate(text), Source: SourceOffline}
	}

	d.recordMemory(ctx, text, translated)
	return Result{Text: translated, Source: d.service.Name()}
}

// translateRemote runs the remote service over the (possibly chunked) input
// and validates that the joined output is Kannada.
func (d *Dispatcher) translateRemote(ctx context.Context, reqID, text string) (string, error) {
	cfg := translator.ServiceConfig{
		Credentials: d.config.Credentials,
		Timeout:     d.config.Timeout,
		MaxAttempts: d.config.MaxAttempts,
	}

	chunks := chunker.Chunk(text, d.config.MaxChunkChars)

	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		callCtx, cancel := context.WithTimeout(ctx, d.config.Timeout)
		res, err := d.service.Translate(callCtx, cfg, translator.TranslateRequest{
			Text:       chunk,
			SourceLang: internal.SourceLang,
			TargetLang: internal.TargetLang,
		})
		cancel()

		if res != nil {
			d.recordResult(ctx, reqID, res)
		}
		if err != nil {
			return "", err
		}
		if res.Error != "" {
			return "", fmt.Errorf("%s: %s", res.ServiceName, res.Error)
		}
		parts = append(parts, res.TranslatedText)
	}

	translated := strings.Join(parts, " ")

	if ok, err := d.validate.IsValid(translated); !ok {
		return "", fmt.Errorf("remote result rejected: %w", err)
	}

	return translated, nil
}

func (d *Dispatcher) lookupMemory(ctx context.Context, text string) (string, bool) {
	if d.db == nil {
		return "", false
	}

	cached, found, err := d.db.GetCachedTranslation(ctx, text, internal.SourceLang, internal.TargetLang)
	if err == nil && found {
		return cached, true
	}

	cached, found, err = d.db.FuzzyGetCachedTranslation(ctx, text, internal.SourceLang, internal.TargetLang, d.config.FuzzyThreshold)
	if err == nil && found {
		return cached, true
	}

	return "", false
}

// Persistence is best effort: a failing store never blocks a translation.

func (d *Dispatcher) recordRequest(ctx context.Context, reqID, text string) {
	if d.db == nil {
		return
	}
	_ = d.db.SaveRequest(ctx, internal.TranslationRequest{
		ID:         reqID,
		SourceText: text,
		SourceLang: internal.SourceLang,
		TargetLang: internal.TargetLang,
		Timestamp:  time.Now(),
	})
}

func (d *Dispatcher) recordResult(ctx context.Context, reqID string, res *translator.ServiceResult) {
	if d.db == nil {
		return
	}
	_ = d.db.SaveResult(ctx, reqID, res.ServiceName, res.TranslatedText,
		res.Confidence, int(res.Latency.Milliseconds()), res.Error)
}

func (d *Dispatcher) recordMemory(ctx context.Context, text, translated string) {
	if d.db == nil {
		return
	}
	// Only remote successes enter translation memory; offline output must
	// stay recomputable so remote results can replace it later.
	_ = d.db.SaveToMemory(ctx, text, internal.SourceLang, internal.TargetLang, translated, d.service.Name())
}
