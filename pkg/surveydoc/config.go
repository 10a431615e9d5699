package surveydoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file looked up when none is given.
const DefaultConfigPath = "surveydoc.yaml"

// Load loads configuration from a file. Settings missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the default if path is
// empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitConfig writes the default config to path unless a file already exists.
// It reports whether a file was written.
func InitConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := Default().Save(path); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks settings that every stage relies on.
func (c *Config) Validate() error {
	var problems []string
	if c.MatchedFiles.Column == "" {
		problems = append(problems, "matched_files.column is empty")
	}
	if c.MatchedFiles.Separator == "" {
		problems = append(problems, "matched_files.separator is empty")
	}
	if c.Match.Engine != EngineExcelize {
		problems = append(problems, fmt.Sprintf("match.engine %q is not supported (use %q)", c.Match.Engine, EngineExcelize))
	}
	if len(c.Match.IdentifierKeywords) == 0 {
		problems = append(problems, "match.identifier_keywords is empty")
	}
	if c.Generate.HeaderRows != 1 && c.Generate.HeaderRows != 2 {
		problems = append(problems, fmt.Sprintf("generate.header_rows must be 1 or 2, got %d", c.Generate.HeaderRows))
	}
	if c.Intake.WindowHours <= 0 {
		problems = append(problems, "intake.window_hours must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// expandHome replaces a leading ~ in path with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
