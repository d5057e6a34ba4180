package reading

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls the first JSON object out of free-form model text.
// Models are instructed to emit only JSON but routinely wrap it in code
// fences or surrounding prose; the heuristic here is deliberately
// narrow and runs in two stages:
//
//  1. strip known framing (whitespace, a ``` or ```json fence)
//  2. locate the first balanced {...} span and check it parses
//
// The returned string is the candidate object; ok is false when no
// parseable object is found.
func ExtractJSON(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return trimmed, true
	}

	if inner, ok := stripCodeFence(trimmed); ok {
		if strings.HasPrefix(inner, "{") && json.Valid([]byte(inner)) {
			return inner, true
		}
		// Fenced but still framed; fall through to the brace scan on
		// the fence contents.
		trimmed = inner
	}

	if candidate, ok := firstBalancedObject(trimmed); ok && json.Valid([]byte(candidate)) {
		return candidate, true
	}

	return "", false
}

// stripCodeFence returns the content between the first ``` fence (with
// optional language tag) and its closing fence.
func stripCodeFence(s string) (string, bool) {
	open := strings.Index(s, "```")
	if open < 0 {
		return "", false
	}
	rest := s[open+3:]

	// Skip the language tag line, e.g. "json".
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "" || isFenceTag(firstLine) {
			rest = rest[nl+1:]
		}
	}

	if close := strings.Index(rest, "```"); close >= 0 {
		rest = rest[:close]
	}
	return strings.TrimSpace(rest), true
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// firstBalancedObject scans for the first '{' and returns the span up
// to its matching '}', honoring JSON string literals and escapes.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
