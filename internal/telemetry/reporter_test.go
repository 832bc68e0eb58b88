package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPReporterPostsRecord(t *testing.T) {
	var got Record
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	reporter := NewHTTPReporter(server.URL, time.Second)
	record := Record{BusinessID: "b1", ResponseTimeMs: 120, SuccessRate: 1}

	if err := reporter.Track(context.Background(), record); err != nil {
		t.Fatalf("Track err: %v", err)
	}
	if got.BusinessID != "b1" || got.ResponseTimeMs != 120 {
		t.Fatalf("collector saw wrong record: %+v", got)
	}
}

func TestHTTPReporterCollectorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	reporter := NewHTTPReporter(server.URL, time.Second)
	if err := reporter.Track(context.Background(), Record{BusinessID: "b1"}); err == nil {
		t.Fatal("expected error for 500 from collector")
	}
}

func TestHTTPReporterUnreachableCollector(t *testing.T) {
	reporter := NewHTTPReporter("http://127.0.0.1:1/track", 100*time.Millisecond)
	if err := reporter.Track(context.Background(), Record{BusinessID: "b1"}); err == nil {
		t.Fatal("expected error for unreachable collector")
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Fatalf("empty text should cost 0 tokens, got %d", got)
	}
	if got := EstimateTokens("ab"); got != 1 {
		t.Fatalf("short text should cost 1 token, got %d", got)
	}
	if got := EstimateTokens("12345678"); got != 2 {
		t.Fatalf("expected 2 tokens for 8 chars, got %d", got)
	}
}

func TestEstimateCostUSD(t *testing.T) {
	if got := EstimateCostUSD(500, 0); got != 0 {
		t.Fatalf("zero rate should cost nothing, got %f", got)
	}
	if got := EstimateCostUSD(500, 0.02); got != 0.01 {
		t.Fatalf("expected 0.01, got %f", got)
	}
}
