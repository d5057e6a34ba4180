package reading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/readleaf/readleaf/internal/llm"
)

// Generator produces articles with comprehension questions.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate builds the prompts, calls the provider once, and parses the
// completion as the article/questions contract. Any transport, parse or
// missing-key failure returns a nil content with the error; there is no
// retry at this layer. The question count and type split are whatever
// the model returned — only strict mode rejects a wrong count.
func (g *Generator) Generate(ctx context.Context, words []string, age, lexile int, category Category) (*GeneratedContent, error) {
	ctx = llm.WithPurpose(ctx, "article-gen")

	system, user := BuildArticlePrompts(words, age, lexile, category)

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}
	if g.cfg.Strict {
		req.Schema = GenerationSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("article generation failed: %w", err)
	}

	return decodeGeneration(resp.Content)
}

func decodeGeneration(raw json.RawMessage) (*GeneratedContent, error) {
	text, ok := ExtractJSON(string(raw))
	if !ok {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var out struct {
		Article   *string     `json:"article"`
		Questions *[]Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse generation response: %w", err)
	}
	if out.Article == nil || out.Questions == nil {
		return nil, fmt.Errorf("generation response missing article or questions")
	}

	return &GeneratedContent{
		Article:   *out.Article,
		Questions: *out.Questions,
	}, nil
}
