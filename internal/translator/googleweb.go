package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultWebEndpoint = "https://translate.googleapis.com/translate_a/single"
	defaultWebTimeout  = 6 * time.Second

	// defaultWebAttempts is the total number of tries per request.
	defaultWebAttempts = 2

	// webBackoffStep is multiplied by the attempt number between tries.
	webBackoffStep = 400 * time.Millisecond
)

// GoogleWebService translates through Google's unofficial web endpoint.
// No API key is required; in exchange the endpoint offers no SLA, so
// failed requests are retried with a linearly growing delay.
type GoogleWebService struct {
	endpoint    string
	maxAttempts int
	backoffStep time.Duration
	client      *http.Client
}

func NewGoogleWebService() *GoogleWebService {
	return &GoogleWebService{
		endpoint:    defaultWebEndpoint,
		maxAttempts: defaultWebAttempts,
		backoffStep: webBackoffStep,
		client:      &http.Client{Timeout: defaultWebTimeout},
	}
}

func (s *GoogleWebService) Name() string {
	return "googleweb"
}

func (s *GoogleWebService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if req.Text == "" {
		return result, nil
	}

	maxAttempts := s.maxAttempts
	if cfg.MaxAttempts > 0 {
		maxAttempts = cfg.MaxAttempts
	}

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = "en"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", req.TargetLang)
	params.Set("dt", "t")
	params.Set("q", req.Text)
	apiURL := s.endpoint + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		translated, err := s.fetch(ctx, apiURL)
		if err == nil {
			result.TranslatedText = translated
			result.Confidence = 1.0
			return result, nil
		}
		lastErr = err

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				result.Error = ctx.Err().Error()
				return result, ctx.Err()
			case <-time.After(s.backoffStep * time.Duration(attempt)):
			}
		}
	}

	result.Error = lastErr.Error()
	return result, lastErr
}

func (s *GoogleWebService) fetch(ctx context.Context, apiURL string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return parseWebResponse(raw)
}

// parseWebResponse extracts translated text from the endpoint's nested-array
// payload. The body looks like [[["translated","source",...],...],...]:
// element 0 holds one entry per source sentence, each entry's element 0 is
// the translated text. Sentence entries are concatenated in order.
func parseWebResponse(raw []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response payload")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}
	if len(sentences) == 0 {
		return "", fmt.Errorf("no sentences in response")
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(sentence[0], &text); err != nil {
			return "", fmt.Errorf("unexpected sentence shape: %w", err)
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated text in response")
	}
	return sb.String(), nil
}

func (s *GoogleWebService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GoogleWebService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "kn"}, nil
}
