package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeTestJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func answer(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
}

func TestRequestTipSuccess(t *testing.T) {
	var got chatRequest
	var auth, path string

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		writeTestJSON(w, answer("  Keep your core tight.  "))
	})

	log, _ := test.NewNullLogger()
	c := NewClient(Config{APIKey: "secret", Model: "test-model", BaseURL: srv.URL + "/"}, log)

	tip := c.RequestTip(context.Background(), "How to improve my push-up form?")
	if tip != "Keep your core tight." {
		t.Errorf("tip = %q", tip)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", auth)
	}
	if path != "/chat/completions" {
		t.Errorf("path = %q", path)
	}
	if got.Model != "test-model" {
		t.Errorf("model = %q", got.Model)
	}
	if len(got.Messages) != 1 || !strings.Contains(got.Messages[0].Content, "How to improve my push-up form?") {
		t.Errorf("messages = %+v", got.Messages)
	}
}

func TestRequestTipNotConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeTestJSON(w, answer("unused"))
	})

	log, _ := test.NewNullLogger()
	c := NewClient(Config{BaseURL: srv.URL}, log)

	if c.Configured() {
		t.Error("client without key should not be configured")
	}
	if tip := c.RequestTip(context.Background(), "anything"); tip != MsgNotConfigured {
		t.Errorf("tip = %q, want %q", tip, MsgNotConfigured)
	}
	if calls.Load() != 0 {
		t.Errorf("server called %d times, want 0", calls.Load())
	}
}

func TestRequestTipHTTPError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInternalServerError)
	})

	log, hook := test.NewNullLogger()
	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, log)

	tip := c.RequestTip(context.Background(), "q")
	want := "Sorry, I couldn't get a tip for you right now. Error: API error 500"
	if !strings.HasPrefix(tip, want) {
		t.Errorf("tip = %q, want prefix %q", tip, want)
	}
	if !strings.Contains(tip, "quota exceeded") {
		t.Errorf("tip = %q, want response body included", tip)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.ErrorLevel {
		t.Errorf("expected an error log entry, got %v", entry)
	}
}

func TestRequestTipEmptyAnswer(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"no choices", map[string]any{"choices": []any{}}},
		{"blank content", answer("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeTestJSON(w, tt.body)
			})

			log, hook := test.NewNullLogger()
			c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, log)

			if tip := c.RequestTip(context.Background(), "q"); tip != MsgUnknownError {
				t.Errorf("tip = %q, want %q", tip, MsgUnknownError)
			}
			if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
				t.Errorf("expected a warning log entry, got %v", entry)
			}
		})
	}
}

func TestTipCanceledContext(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, answer("late"))
	})

	log, _ := test.NewNullLogger()
	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Tip(ctx, "q"); err == nil {
		t.Error("Tip() with canceled context should fail")
	}
}

func TestNewClientDefaults(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := NewClient(Config{}, log)
	if c.cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", c.cfg.Model, DefaultModel)
	}
	if c.cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.cfg.BaseURL, DefaultBaseURL)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Is stretching useful?")
	if !strings.Contains(p, `"Is stretching useful?"`) {
		t.Errorf("prompt does not quote the question: %q", p)
	}
	if !strings.Contains(p, "Do not use markdown") {
		t.Errorf("prompt missing formatting instruction: %q", p)
	}
}

func TestSequencer(t *testing.T) {
	var s Sequencer
	if s.IsLatest(0) {
		t.Error("zero should never be latest")
	}

	first := s.Next()
	if !s.IsLatest(first) {
		t.Error("first request should be latest")
	}

	second := s.Next()
	if s.IsLatest(first) {
		t.Error("older request should be stale after a newer one")
	}
	if !s.IsLatest(second) {
		t.Error("newest request should be latest")
	}
}
