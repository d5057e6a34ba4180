package reading

// Config holds generation and grading knobs shared by Generator and
// Evaluator.
type Config struct {
	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature for the model call.
	Temperature float64

	// Strict turns on schema validation of the model's output. Off by
	// default: the lenient pass-through matches the shape of existing
	// attempt logs, which never enforced the question count.
	Strict bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
