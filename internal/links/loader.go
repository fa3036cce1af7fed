package links

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the catalog compiled into the binary.
const SourceEmbedded = "embedded"

//go:embed catalog.yaml
var embeddedCatalog []byte

var templateVariable = regexp.MustCompile(`\{\{\s*(HUB_VAR_[A-Z0-9_]+)\s*\}\}`)

// Loader reads a catalog file, or the embedded catalog when no path is set.
type Loader struct {
	filePath string
}

// NewLoader creates a loader. An empty filePath selects the embedded catalog.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where Load reads from.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return SourceEmbedded
	}
	return l.filePath
}

// Load reads and parses the catalog.
func (l *Loader) Load() (CatalogConfig, error) {
	data := embeddedCatalog
	if l.filePath != "" {
		raw, err := os.ReadFile(l.filePath)
		if err != nil {
			return CatalogConfig{}, fmt.Errorf("failed to read links file: %w", err)
		}
		data = raw
	}

	data = expandTemplateVariables(data)

	var config CatalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CatalogConfig{}, fmt.Errorf("failed to parse links yaml: %w", err)
	}

	return config, nil
}

// expandTemplateVariables substitutes {{HUB_VAR_...}} with the environment value.
// Unset variables expand to "".
// Example: url: {{HUB_VAR_DISCORD_INVITE}} -> url: https://discord.gg/abc
func expandTemplateVariables(data []byte) []byte {
	return templateVariable.ReplaceAllFunc(data, func(m []byte) []byte {
		name := templateVariable.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
