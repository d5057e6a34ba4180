package llm

import "fmt"

// DashScope's OpenAI-compatible endpoint. The native DashScope API has
// its own request shape, but the compatible mode speaks chat
// completions, so the OpenAI adapter is reused underneath.
const defaultDashScopeBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// DashScopeProvider targets Alibaba DashScope (Qwen) models.
type DashScopeProvider struct {
	*OpenAIProvider
}

// NewDashScopeProvider creates a provider for the DashScope API.
func NewDashScopeProvider(model, apiKey, baseURL string) (*DashScopeProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("dashscope API key is required")
	}

	if baseURL == "" {
		baseURL = defaultDashScopeBaseURL
	}

	inner, err := NewOpenAIProvider(model, apiKey, baseURL)
	if err != nil {
		return nil, err
	}

	return &DashScopeProvider{OpenAIProvider: inner}, nil
}
