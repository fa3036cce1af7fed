package links

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoadEmbedded(t *testing.T) {
	loader := NewLoader("")
	if loader.Source() != SourceEmbedded {
		t.Errorf("Source() = %q, want %q", loader.Source(), SourceEmbedded)
	}

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config.Links) != 7 {
		t.Fatalf("embedded catalog has %d links, want 7", len(config.Links))
	}
	if config.Links[0].ID != "tg" || config.Links[6].ID != "steam" {
		t.Errorf("unexpected catalog order: first=%s last=%s", config.Links[0].ID, config.Links[6].ID)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "links.yaml")

	yamlContent := `links:
  - id: site
    title: Website
    url: https://example.com
    category: other
`
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config.Links) != 1 || config.Links[0].Title != "Website" {
		t.Errorf("Load() = %+v, want one Website link", config.Links)
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	t.Setenv("HUB_VAR_INVITE", "https://discord.gg/abc")

	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "links.yaml")
	yamlContent := `links:
  - id: dc
    title: Discord
    url: {{HUB_VAR_INVITE}}
    category: main
`
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	config, err := NewLoader(yamlPath).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := config.Links[0].URL; got != "https://discord.gg/abc" {
		t.Errorf("URL = %q, want expanded variable", got)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/links.yaml")
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestExpandTemplateVariables(t *testing.T) {
	t.Setenv("HUB_VAR_URL", "https://x.test")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "set variable", input: "url: {{HUB_VAR_URL}}", expected: "url: https://x.test"},
		{name: "spaces inside braces", input: "url: {{ HUB_VAR_URL }}", expected: "url: https://x.test"},
		{name: "unset variable", input: "url: {{HUB_VAR_MISSING}}", expected: "url: "},
		{name: "foreign template untouched", input: "x: {{OTHER}}", expected: "x: {{OTHER}}"},
		{name: "no template variables", input: "plain text", expected: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandTemplateVariables([]byte(tt.input))
			if string(result) != tt.expected {
				t.Errorf("expandTemplateVariables() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}
