package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veridex/veridex/internal/model"
)

func newsAPIConfig(endpoint, key string) model.NewsAPIConfig {
	return model.NewsAPIConfig{
		APIKey:        key,
		Endpoint:      endpoint,
		PageSize:      5,
		Timeout:       2 * time.Second,
		SimilarityMin: 0.10,
		Sources:       []string{"bbc-news", "reuters"},
	}
}

func TestNewsAPIProvider_SkippedWithoutKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	p := NewNewsAPIProvider(newsAPIConfig(srv.URL, ""), nil)
	items, err := p.Retrieve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items != nil {
		t.Errorf("expected no items without a key, got %v", items)
	}
	if called {
		t.Error("no request must be made without a credential")
	}
}

func TestNewsAPIProvider_ParsesAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" {
			t.Errorf("missing apiKey parameter")
		}
		if q.Get("sortBy") != "relevancy" {
			t.Errorf("sortBy = %q, want relevancy", q.Get("sortBy"))
		}
		if q.Get("pageSize") != "5" {
			t.Errorf("pageSize = %q, want 5", q.Get("pageSize"))
		}
		if q.Get("sources") != "bbc-news,reuters" {
			t.Errorf("sources = %q", q.Get("sources"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"title": "nasa confirms water found on mars", "url": "https://example.com/a", "publishedAt": "2026-08-30T10:00:00Z"},
				{"title": "completely unrelated celebrity gossip", "url": "https://example.com/b", "publishedAt": "2026-08-30T11:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	p := NewNewsAPIProvider(newsAPIConfig(srv.URL, "test-key"), nil)
	items, err := p.Retrieve(context.Background(), "water found on mars by nasa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item above the cutoff, got %d: %v", len(items), items)
	}
	if items[0].Title != "nasa confirms water found on mars" {
		t.Errorf("wrong title kept: %q", items[0].Title)
	}
	if items[0].Provider != model.ProviderNewsAPI {
		t.Errorf("provider = %q, want %q", items[0].Provider, model.ProviderNewsAPI)
	}
	if items[0].Similarity <= 0.10 {
		t.Errorf("kept item must clear the cutoff, got %f", items[0].Similarity)
	}
	if items[0].Published == nil {
		t.Error("expected published timestamp to be parsed")
	}
}

func TestNewsAPIProvider_TruncatesLongQuery(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "verylongword "
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if n := len([]rune(r.URL.Query().Get("q"))); n > queryMaxChars {
			t.Errorf("query sent with %d chars, want <= %d", n, queryMaxChars)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	p := NewNewsAPIProvider(newsAPIConfig(srv.URL, "test-key"), nil)
	if _, err := p.Retrieve(context.Background(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewsAPIProvider_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := NewNewsAPIProvider(newsAPIConfig(srv.URL, "test-key"), nil)
			if _, err := p.Retrieve(context.Background(), "query"); err == nil {
				t.Error("expected an error for the retriever to absorb")
			}
		})
	}
}

func TestNewsAPIProvider_EmptyArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	p := NewNewsAPIProvider(newsAPIConfig(srv.URL, "test-key"), nil)
	items, err := p.Retrieve(context.Background(), "query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %v", items)
	}
}
