package advice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetReturnsAdviceText(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Écoutez-vous l'un l'autre."}]}}]}`))
	}))
	defer server.Close()

	svc := NewService(Config{APIKey: "test-key"})
	svc.baseURL = server.URL

	got, err := svc.Get(context.Background(), "la communication")
	if err != nil {
		t.Fatalf("get advice: %v", err)
	}
	if got != "Écoutez-vous l'un l'autre." {
		t.Errorf("advice = %q", got)
	}
	if !strings.Contains(gotPath, "generateContent") {
		t.Errorf("unexpected path %q", gotPath)
	}
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Respirez."}]}}]}`))
	}))
	defer server.Close()

	svc := NewService(Config{APIKey: "test-key"})
	svc.baseURL = server.URL

	got, err := svc.Get(context.Background(), "le stress")
	if err != nil {
		t.Fatalf("get advice after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if got != "Respirez." {
		t.Errorf("advice = %q", got)
	}
}

func TestGetFailsWithoutRetryOnClientError(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	svc := NewService(Config{APIKey: "bad-key"})
	svc.baseURL = server.URL

	if _, err := svc.Get(context.Background(), "sujet"); err == nil {
		t.Fatal("expected error for 403")
	}
	if calls != 1 {
		t.Errorf("client errors must not be retried, calls = %d", calls)
	}
}

func TestGetUnconfigured(t *testing.T) {
	svc := NewService(Config{})
	if svc.Configured() {
		t.Error("service without key should report unconfigured")
	}
	if _, err := svc.Get(context.Background(), "sujet"); err == nil {
		t.Error("expected error when unconfigured")
	}
}

func TestGetEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := NewService(Config{APIKey: "test-key"})
	svc.baseURL = server.URL

	if _, err := svc.Get(context.Background(), "sujet"); err == nil {
		t.Error("expected error for empty candidates")
	}
}
