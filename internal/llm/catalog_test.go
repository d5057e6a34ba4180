package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListModels_StaticKinds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		kind  string
		first string
	}{
		{"dashscope", "qwen-max"},
		{"anthropic", "claude-sonnet-4-20250514"},
		{"gemini", "gemini-2.0-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			models := ListModels(ctx, tt.kind, "unused", "")
			if len(models) == 0 {
				t.Fatalf("expected models for %s", tt.kind)
			}
			if models[0] != tt.first {
				t.Fatalf("expected first model %q, got %q", tt.first, models[0])
			}
		})
	}
}

func TestListModels_KindIsCaseInsensitive(t *testing.T) {
	models := ListModels(context.Background(), "DashScope", "unused", "")
	if len(models) == 0 {
		t.Fatal("expected models for DashScope")
	}
}

func TestListModels_UnknownKindEmpty(t *testing.T) {
	if models := ListModels(context.Background(), "cohere", "k", ""); models != nil {
		t.Fatalf("expected nil, got %v", models)
	}
}

func TestListModels_OpenAILive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "gpt-4o-mini"},
				{"id": "gpt-4o"},
			},
		})
	}))
	defer server.Close()

	models := ListModels(context.Background(), "openai", "sk-test", server.URL)
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %v", models)
	}
	if models[0] != "gpt-4o-mini" {
		t.Fatalf("expected gpt-4o-mini first, got %q", models[0])
	}
}

func TestListModels_OpenAIFailureIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	models := ListModels(context.Background(), "openai", "sk-test", server.URL)
	if len(models) != 0 {
		t.Fatalf("expected empty list on failure, got %v", models)
	}
}

func TestCatalog_CachesPerIdentifier(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "m1"}},
		})
	}))
	defer server.Close()

	ctx := context.Background()
	c := NewCatalog()

	first := c.Models(ctx, "gateway", "openai", "sk-test", server.URL)
	second := c.Models(ctx, "gateway", "openai", "sk-test", server.URL)
	if calls != 1 {
		t.Fatalf("expected 1 lookup, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected cached list, got %v / %v", first, second)
	}

	c.Refresh("gateway")
	_ = c.Models(ctx, "gateway", "openai", "sk-test", server.URL)
	if calls != 2 {
		t.Fatalf("expected refresh to trigger a new lookup, got %d calls", calls)
	}
}

func TestCatalog_CachesEmptyResults(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx := context.Background()
	c := NewCatalog()

	_ = c.Models(ctx, "gateway", "openai", "sk-test", server.URL)
	_ = c.Models(ctx, "gateway", "openai", "sk-test", server.URL)
	if calls != 1 {
		t.Fatalf("expected failed lookup to be cached, got %d calls", calls)
	}
}
