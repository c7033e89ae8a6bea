// Package constants holds the small, tool-wide literals shared by the
// config loader and the CLI: the binary's name, its config file name, and
// the environment variable prefix viper watches for overrides.
package constants

const (
	// ToolName is the binary and config-search name.
	ToolName = "esgen"

	// ConfigFileName is the default name init writes and LoadConfig
	// prefers when searching a directory.
	ConfigFileName = ".esgen.yaml"

	// EnvVarPrefix is the prefix viper uses for ESGEN_-style environment
	// overrides (e.g. ESGEN_RENDER_INDENT). Overrides apply to keys present
	// in a loaded config file.
	EnvVarPrefix = "ESGEN"
)

// Output report formats for `esgen render --format` and `esgen batch`.
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Line ending styles for `esgen render --line-end` and Config.Render.LineEnd.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// DefaultIndent is the indentation unit used when no config or flag
// overrides it.
const DefaultIndent = "\t"

// DefaultConcurrency is used by the batch renderer when config does not
// specify a positive value.
const DefaultConcurrency = 4
