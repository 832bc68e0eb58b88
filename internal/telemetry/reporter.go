// Package telemetry ships per-turn metrics to the MLOps collector.
// Every call is fire-and-forget: a dropped record is accepted
// information loss, never a turn failure.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Record is the collector's payload for one chat turn.
type Record struct {
	BusinessID            string  `json:"business_id"`
	ResponseTimeMs        int64   `json:"response_time_ms"`
	SessionID             string  `json:"session_id,omitempty"`
	SuccessRate           float64 `json:"success_rate"`
	TokensUsed            int     `json:"tokens_used,omitempty"`
	APICostUSD            float64 `json:"api_cost_usd,omitempty"`
	ModelName             string  `json:"model_name,omitempty"`
	IntentDetected        string  `json:"intent_detected,omitempty"`
	AppointmentRequested  bool    `json:"appointment_requested,omitempty"`
	HumanHandoffRequested bool    `json:"human_handoff_requested,omitempty"`
	UserMessageLength     int     `json:"user_message_length,omitempty"`
	AIResponseLength      int     `json:"ai_response_length,omitempty"`
	ResponseType          string  `json:"response_type,omitempty"`
}

// Reporter delivers records to a collector. Implementations must not
// block the caller beyond a short bounded timeout and must treat
// delivery as best-effort.
type Reporter interface {
	Track(ctx context.Context, record Record) error
}

// HTTPReporter posts records as JSON to a fixed collector endpoint.
type HTTPReporter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPReporter creates a reporter targeting the given endpoint.
func NewHTTPReporter(endpoint string, timeout time.Duration) *HTTPReporter {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HTTPReporter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Track posts the record. The caller is expected to log and otherwise
// ignore the returned error.
func (r *HTTPReporter) Track(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode telemetry record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telemetry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post telemetry record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("telemetry collector returned %d", resp.StatusCode)
	}
	return nil
}

// Nop discards every record. Used when no collector is configured.
type Nop struct{}

// Track implements Reporter.
func (Nop) Track(context.Context, Record) error { return nil }

// EstimateTokens approximates token usage at ~4 characters per token.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	tokens := (len(text) + 3) / 4
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// EstimateCostUSD converts a token count into dollars given a per-1K
// token rate. A zero rate disables cost reporting.
func EstimateCostUSD(totalTokens int, costPer1KTokens float64) float64 {
	if costPer1KTokens <= 0 {
		return 0
	}
	return float64(totalTokens) / 1000 * costPer1KTokens
}
