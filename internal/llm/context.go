package llm

import "context"

// The purpose label rides on the context so the event log can slice
// usage by feature ("article-gen", "evaluation") without threading an
// extra parameter through every call site.

type purposeKey struct{}

// WithPurpose attaches a purpose label for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the attached purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
