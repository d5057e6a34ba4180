package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// dashscopeModels is the hand-maintained Qwen list. DashScope has no
// public models-listing endpoint.
var dashscopeModels = []string{
	"qwen-max",
	"qwen-max-latest",
	"qwen-plus",
	"qwen-plus-latest",
	"qwen-turbo",
	"qwen-turbo-latest",
	"qwen-long",
	"qwen2.5-72b-instruct",
	"qwen2.5-32b-instruct",
	"qwen2.5-14b-instruct",
	"qwen2.5-7b-instruct",
}

// anthropicModels is the hand-maintained Claude list.
var anthropicModels = []string{
	"claude-sonnet-4-20250514",
	"claude-haiku-4-5-20251001",
	"claude-3-5-sonnet-20241022",
	"claude-3-5-haiku-20241022",
}

// geminiModels is the hand-maintained Gemini list.
var geminiModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-pro",
}

// ListModels returns the model names usable with a provider kind, in
// vendor order. The openai kind performs a live lookup; the other kinds
// return static lists. A transport failure during the live lookup is
// logged and swallowed: callers get an empty list, meaning "no models
// available", and must not distinguish it from a failed call.
func ListModels(ctx context.Context, kind, apiKey, baseURL string) []string {
	switch strings.ToLower(kind) {
	case "openai":
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		client := openai.NewClientWithConfig(cfg)

		list, err := client.ListModels(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: listing models for %s: %v\n", kind, err)
			return nil
		}
		models := make([]string, 0, len(list.Models))
		for _, m := range list.Models {
			models = append(models, m.ID)
		}
		return models

	case "dashscope":
		return append([]string(nil), dashscopeModels...)

	case "anthropic":
		return append([]string(nil), anthropicModels...)

	case "gemini":
		return append([]string(nil), geminiModels...)

	default:
		return nil
	}
}

// Catalog caches model lists per provider identifier for the lifetime
// of a session. There is no TTL; invalidation is the explicit Refresh.
type Catalog struct {
	mu    sync.Mutex
	cache map[string][]string
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{cache: make(map[string][]string)}
}

// Models returns the cached list for the identifier, performing the
// lookup on first use.
func (c *Catalog) Models(ctx context.Context, id, kind, apiKey, baseURL string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if models, ok := c.cache[id]; ok {
		return models
	}
	models := ListModels(ctx, kind, apiKey, baseURL)
	c.cache[id] = models
	return models
}

// Refresh drops the cached entry for one provider identifier so the
// next Models call performs a fresh lookup.
func (c *Catalog) Refresh(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, id)
}
