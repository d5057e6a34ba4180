package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestNewGeminiProvider_RequiresKeyAndModel(t *testing.T) {
	ctx := context.Background()
	if _, err := NewGeminiProvider(ctx, "gemini-2.0-flash", ""); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if _, err := NewGeminiProvider(ctx, "", "key"); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a thing",
		"properties": map[string]any{
			"kind": map[string]any{
				"type": "string",
				"enum": []any{"a", "b"},
			},
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"kind"},
	}

	schema := buildGeminiSchema(def)
	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %v, want object", schema.Type)
	}
	if schema.Description != "a thing" {
		t.Fatalf("description = %q", schema.Description)
	}
	if schema.Properties["kind"].Type != genai.TypeString {
		t.Fatalf("kind type = %v", schema.Properties["kind"].Type)
	}
	if len(schema.Properties["kind"].Enum) != 2 {
		t.Fatalf("enum = %v", schema.Properties["kind"].Enum)
	}
	if schema.Properties["items"].Items.Type != genai.TypeInteger {
		t.Fatalf("array item type = %v", schema.Properties["items"].Items.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "kind" {
		t.Fatalf("required = %v", schema.Required)
	}
}

func TestBuildGeminiContents_MapsRoles(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if contents[0].Role != "user" {
		t.Fatalf("role = %q, want user", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Fatalf("role = %q, want model", contents[1].Role)
	}
}
