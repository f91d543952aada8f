package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/toneanalyzer/internal/models"
)

var (
	toneAnalyzerInstance *ToneAnalyzerClient
	toneAnalyzerOnce     sync.Once
)

type ToneAnalyzerClient struct {
	BaseURL string
	Client  *http.Client
	timeout time.Duration
}

type Option func(*ToneAnalyzerClient)

// WithHTTPClient replaces the transport. The deadline is still applied.
func WithHTTPClient(c *http.Client) Option {
	return func(t *ToneAnalyzerClient) { t.Client = c }
}

func WithTimeout(d time.Duration) Option {
	return func(t *ToneAnalyzerClient) { t.timeout = d }
}

func NewToneAnalyzerClient(baseURL string, opts ...Option) *ToneAnalyzerClient {
	c := &ToneAnalyzerClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{},
		timeout: ANALYZE_TIMEOUT,
	}
	for _, opt := range opts {
		opt(c)
	}
	httpClient := *c.Client
	httpClient.Timeout = c.timeout
	c.Client = &httpClient
	return c
}

func InitToneAnalyzerClient(baseURL string) *ToneAnalyzerClient {
	toneAnalyzerOnce.Do(func() {
		slog.Info("[ToneAnalyzerClient] Initializing Client",
			slog.String("base_url", baseURL),
			slog.Duration("timeout", ANALYZE_TIMEOUT))
		toneAnalyzerInstance = NewToneAnalyzerClient(baseURL)
	})
	return toneAnalyzerInstance
}

func GetToneAnalyzerClient() *ToneAnalyzerClient {
	if toneAnalyzerInstance == nil {
		panic("[ToneAnalyzerClient] Error: client is not initialized")
	}
	return toneAnalyzerInstance
}

// Analyze sends one request to the analysis endpoint. It never retries.
func (c *ToneAnalyzerClient) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	var result models.AnalysisResult

	req.AdditionalContext = strings.TrimSpace(req.AdditionalContext)
	if err := models.ValidateRequest(req); err != nil {
		return result, newValidationError(err)
	}

	body, err := json.Marshal(models.TRPCRequest[models.AnalysisRequest]{JSON: req})
	if err != nil {
		return result, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	data, err := c.do(ctx, http.MethodPost, ANALYZE_PATH, body)
	if err != nil {
		slog.Error("[ToneAnalyzerClient] Analysis request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return models.AnalysisResult{}, &ProtocolError{Reason: ReasonSchemaViolation, Err: err}
	}
	if err := models.ValidateResult(result); err != nil {
		return models.AnalysisResult{}, &ProtocolError{Reason: ReasonSchemaViolation, Err: err}
	}
	if result.ImpliedMeanings == nil {
		result.ImpliedMeanings = []string{}
	}

	slog.Info("[ToneAnalyzerClient] Analysis request successful",
		slog.String("sentiment", string(result.Sentiment)),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// History is best effort: every failure is logged and yields an empty slice.
func (c *ToneAnalyzerClient) History(ctx context.Context) []models.AnalysisResult {
	history := []models.AnalysisResult{}

	data, err := c.do(ctx, http.MethodGet, HISTORY_PATH, nil)
	if err != nil {
		slog.Warn("[ToneAnalyzerClient] Failed to fetch history",
			slog.String("error", err.Error()))
		return history
	}

	var results []models.AnalysisResult
	if err := json.Unmarshal(data, &results); err != nil {
		slog.Warn("[ToneAnalyzerClient] Failed to decode history",
			slog.String("error", err.Error()),
			getPreview(data))
		return history
	}

	for _, result := range results {
		if err := models.ValidateResult(result); err != nil {
			slog.Warn("[ToneAnalyzerClient] History entry violates schema",
				slog.String("error", err.Error()))
			return []models.AnalysisResult{}
		}
		if result.ImpliedMeanings == nil {
			result.ImpliedMeanings = []string{}
		}
		history = append(history, result)
	}
	return history
}

// Ping reports whether the server answers at all.
func (c *ToneAnalyzerClient) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, PING_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.BaseURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// do performs the request and returns the raw result.data payload.
func (c *ToneAnalyzerClient) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("X-Request-ID", requestID)

	slog.Debug("[ToneAnalyzerClient] Sending request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID))

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.timeout)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &ServerError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err, c.timeout)
	}

	var envelope models.TRPCResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		slog.Error("[ToneAnalyzerClient] Failed to unmarshal response",
			slog.String("path", path),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return nil, &ProtocolError{Reason: ReasonMalformedBody, Err: err}
	}
	if !envelope.HasData() {
		return nil, &ProtocolError{Reason: ReasonMissingData, Err: errors.New("result.data is absent")}
	}

	return envelope.Result.Data, nil
}

// statusText strips the code from "500 Internal Server Error".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
