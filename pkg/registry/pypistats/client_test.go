package pypistats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"deptally/pkg/registry"
)

func TestClient_RecentDownloads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/packages/requests/recent" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"data": {"last_day": 1, "last_week": 7, "last_month": 12345678}, "package": "requests", "type": "recent_downloads"}`))
	}))
	defer server.Close()

	n, err := NewClient(server.URL).RecentDownloads(context.Background(), "requests")
	if err != nil {
		t.Fatalf("RecentDownloads failed: %v", err)
	}
	if n != 12345678 {
		t.Errorf("expected 12345678 downloads, got %d", n)
	}
}

func TestClient_RecentDownloads_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewClient(server.URL).RecentDownloads(context.Background(), "no-such-pkg")
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_RecentDownloads_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).RecentDownloads(context.Background(), "requests")
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if errors.Is(err, registry.ErrNotFound) {
		t.Error("rate limiting must not look like not-found")
	}
	if !errors.Is(err, registry.ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}
