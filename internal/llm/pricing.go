package llm

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens, sourced from vendor price pages.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models in the static catalogs plus the common
// OpenAI-kind models. Gateways behind base-URL overrides report model
// IDs of their own; those show up as unknown in the stats output.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-3-5-sonnet-20241022": {3, 15},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},

	// OpenAI
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-3.5-turbo": {0.5, 1.5},

	// DashScope (Qwen)
	"qwen-max":             {1.6, 6.4},
	"qwen-plus":            {0.4, 1.2},
	"qwen-turbo":           {0.05, 0.2},
	"qwen-long":            {0.07, 0.28},
	"qwen2.5-72b-instruct": {0.57, 1.71},
	"qwen2.5-32b-instruct": {0.25, 0.75},
	"qwen2.5-14b-instruct": {0.14, 0.42},
	"qwen2.5-7b-instruct":  {0.07, 0.21},

	// Google (Gemini)
	"gemini-2.0-flash": {0.1, 0.4},
	"gemini-2.0-pro":   {1.25, 10},
}
