// Package config loads and validates esgen's persisted configuration: the
// Render and Batch defaults that back `esgen render` and `esgen batch`
// when their CLI flags are left unset. Loading is
// viper-backed, with upward directory search for a config file and the
// same fail-fast Validate discipline a CLI tool's config loader needs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/esgen/internal/constants"
	"github.com/spf13/viper"
)

// RenderConfig holds the emitter.Options defaults applied when a CLI flag
// is left unset.
type RenderConfig struct {
	// Indent is the unit repeated IndentLevel times per nesting depth.
	Indent string `json:"indent" mapstructure:"indent" yaml:"indent"`

	// LineEnd is "lf" or "crlf".
	LineEnd string `json:"line_end" mapstructure:"line_end" yaml:"line_end"`

	// IndentLevel is the starting indentation depth.
	IndentLevel int `json:"indent_level" mapstructure:"indent_level" yaml:"indent_level"`

	// Comments controls whether leading/trailing comments are emitted.
	Comments bool `json:"comments" mapstructure:"comments" yaml:"comments"`

	// SourceMap, when non-empty, is the path a source map is written to
	// alongside the rendered output.
	SourceMap string `json:"source_map,omitempty" mapstructure:"source_map" yaml:"source_map,omitempty"`
}

// BatchConfig holds the defaults for `esgen batch`.
type BatchConfig struct {
	// Concurrency bounds how many files render at once. 0 or negative
	// falls back to constants.DefaultConcurrency.
	Concurrency int `json:"concurrency" mapstructure:"concurrency" yaml:"concurrency"`

	// OutputDir, when non-empty, collects every rendered file instead of
	// writing `<name>.js` next to its input.
	OutputDir string `json:"output_dir,omitempty" mapstructure:"output_dir" yaml:"output_dir,omitempty"`

	// Progress controls whether a progress bar is shown.
	Progress bool `json:"progress" mapstructure:"progress" yaml:"progress"`

	// IncludePatterns must be non-empty (Validate rejects an empty list);
	// discovery does not consult it and selects files by their
	// `.ast.json` suffix. ExcludePatterns skips a discovered file whose
	// base name matches an entry as a glob or whose path contains an
	// entry as a substring, and a walked directory whose name matches one.
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
}

// OutputConfig holds a report format that is validated on load. `esgen
// render` and `esgen batch` do not read it: they take their report format
// from their own --format flag, which defaults to "text".
type OutputConfig struct {
	// Format is "text", "json", or "yaml".
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// Config is esgen's top-level persisted configuration.
type Config struct {
	Render RenderConfig `json:"render" mapstructure:"render" yaml:"render"`
	Batch  BatchConfig  `json:"batch" mapstructure:"batch" yaml:"batch"`
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns the configuration used when no config file is
// found and no CLI flags override it.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Indent:      constants.DefaultIndent,
			LineEnd:     constants.LineEndingLF,
			IndentLevel: 0,
			Comments:    true,
		},
		Batch: BatchConfig{
			Concurrency: constants.DefaultConcurrency,
			Progress:    true,
			IncludePatterns: []string{
				"*.ast.json",
			},
			ExcludePatterns: []string{
				"*.min.ast.json",
			},
		},
		Output: OutputConfig{
			Format: constants.OutputFormatText,
		},
	}
}

// LoadConfig loads configuration from file, or returns DefaultConfig if
// no file is found.
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with a target path context: if
// configPath is empty, discovery searches upward from targetPath (or the
// current directory, if targetPath is also empty).
func LoadConfigWithTarget(configPath, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = discoverConfigFile(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// discoverConfigFile finds the appropriate config file path.
func discoverConfigFile(targetPath string) string {
	return findDefaultConfig(targetPath)
}

// loadConfigFromFile reads and parses a configuration file, falling back
// to DefaultConfig when configPath is empty.
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A new viper instance per call avoids shared global state races.
	v := viper.New()
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(configPath)

	cfg := DefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// searchConfigInDirectory returns the first candidate file name present
// in dir, or "".
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig searches for a config file, starting at targetPath
// and walking up to the filesystem root, then falling back to the
// current directory and ~/.config/esgen.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.ConfigFileName,
		".esgen.yml",
		".esgen.json",
		"esgen.yaml",
		"esgen.yml",
		"esgen.json",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			if info, statErr := os.Stat(absPath); statErr == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if found := searchConfigInDirectory(dir, candidates); found != "" {
					return found
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if found := searchConfigInDirectory(".", candidates); found != "" {
		return found
	}

	if home, err := os.UserHomeDir(); err == nil {
		if found := searchConfigInDirectory(filepath.Join(home, ".config", constants.ToolName), candidates); found != "" {
			return found
		}
	}

	return ""
}

// Validate checks the configuration for internally-consistent values.
func (c *Config) Validate() error {
	if c.Render.Indent == "" {
		return fmt.Errorf("render.indent cannot be empty")
	}
	if c.Render.LineEnd != constants.LineEndingLF && c.Render.LineEnd != constants.LineEndingCRLF {
		return fmt.Errorf("invalid render.line_end %q, must be one of: lf, crlf", c.Render.LineEnd)
	}
	if c.Render.IndentLevel < 0 {
		return fmt.Errorf("render.indent_level must be >= 0, got %d", c.Render.IndentLevel)
	}

	validFormats := map[string]bool{
		constants.OutputFormatText: true,
		constants.OutputFormatJSON: true,
		constants.OutputFormatYAML: true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format %q, must be one of: text, json, yaml", c.Output.Format)
	}

	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("batch.concurrency must be >= 0, got %d", c.Batch.Concurrency)
	}
	if len(c.Batch.IncludePatterns) == 0 {
		return fmt.Errorf("batch.include_patterns cannot be empty")
	}

	return nil
}

// LineEndString returns the literal line terminator c.Render.LineEnd
// names, for direct use as emitter.Options.LineEnd.
func (c *RenderConfig) LineEndString() string {
	if c.LineEnd == constants.LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// ResolvedConcurrency returns Concurrency, or
// constants.DefaultConcurrency when Concurrency is not positive.
func (c *BatchConfig) ResolvedConcurrency() int {
	if c.Concurrency <= 0 {
		return constants.DefaultConcurrency
	}
	return c.Concurrency
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("render", cfg.Render)
	v.Set("batch", cfg.Batch)
	v.Set("output", cfg.Output)

	return v.WriteConfig()
}
