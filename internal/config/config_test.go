package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(cfg.Providers) != 0 {
		t.Fatalf("expected no providers, got %v", cfg.SectionNames())
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
providers:
  dashscope:
    api_key: sk-ds
    models:
      - qwen-max
      - qwen-turbo
  gateway:
    kind: openai
    api_key: sk-gw
    api_base: https://gateway.example.com/v1
    models: gpt-4o-mini, gpt-4o
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ds, ok := cfg.Provider("dashscope")
	if !ok {
		t.Fatal("expected dashscope section")
	}
	// The section name doubles as the kind when none is given.
	if ds.Kind != "dashscope" {
		t.Errorf("kind = %q, want dashscope", ds.Kind)
	}
	if !reflect.DeepEqual([]string(ds.Models), []string{"qwen-max", "qwen-turbo"}) {
		t.Errorf("models = %v", ds.Models)
	}

	gw, ok := cfg.Provider("gateway")
	if !ok {
		t.Fatal("expected gateway section")
	}
	if gw.Kind != "openai" {
		t.Errorf("kind = %q, want openai", gw.Kind)
	}
	if gw.APIBase != "https://gateway.example.com/v1" {
		t.Errorf("api_base = %q", gw.APIBase)
	}
	if !reflect.DeepEqual([]string(gw.Models), []string{"gpt-4o-mini", "gpt-4o"}) {
		t.Errorf("comma-separated models = %v", gw.Models)
	}
}

func TestLoad_DropsSectionsWithoutKey(t *testing.T) {
	path := writeConfig(t, `
providers:
  anthropic:
    api_key: sk-ant
  openai:
    api_base: https://api.openai.com/v1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := cfg.Provider("openai"); ok {
		t.Fatal("sections without api_key must be dropped")
	}
	if _, ok := cfg.Provider("anthropic"); !ok {
		t.Fatal("sections with api_key must survive")
	}
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := writeConfig(t, "providers: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSectionNames_Sorted(t *testing.T) {
	path := writeConfig(t, `
providers:
  zeta:
    api_key: k1
  alpha:
    api_key: k2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg.SectionNames(), []string{"alpha", "zeta"}) {
		t.Fatalf("names = %v", cfg.SectionNames())
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("READLEAF_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/custom.yaml" {
		t.Fatalf("path = %q", p)
	}
}
