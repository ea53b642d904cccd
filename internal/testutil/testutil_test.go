package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}

	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestEventFixtures(t *testing.T) {
	done := SampleCompletedEvent("2024-06-12T23:30Z")
	if !done.Status.Completed || len(done.Competitors) != 2 {
		t.Fatalf("unexpected completed fixture %+v", done)
	}
	if done.Competitors[0].HomeAway != "home" || done.Competitors[0].Score != "24" {
		t.Fatalf("unexpected home competitor %+v", done.Competitors[0])
	}

	next := SampleScheduledEvent("2024-06-20T17:00Z")
	if next.Status.State != "pre" || next.Status.Completed {
		t.Fatalf("unexpected scheduled fixture %+v", next)
	}

	result := SampleScoreboardResult(done, next)
	if len(result.Events) != 2 || result.RequestURL == "" {
		t.Fatalf("unexpected result fixture %+v", result)
	}
	if empty := SampleScoreboardResult(); empty.Events == nil {
		t.Fatalf("expected non-nil events for empty result")
	}
}
