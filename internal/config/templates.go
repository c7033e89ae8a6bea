package config

import "strconv"

// IndentStyle is a named indentation preset offered by `esgen init
// --interactive`, scoped to the one thing an emitter actually varies on.
type IndentStyle string

const (
	IndentStyleTwoSpace  IndentStyle = "2-space"
	IndentStyleFourSpace IndentStyle = "4-space"
	IndentStyleTab       IndentStyle = "tab"
)

// IndentString returns the literal indent unit a style names.
func (s IndentStyle) IndentString() string {
	switch s {
	case IndentStyleFourSpace:
		return "    "
	case IndentStyleTab:
		return "\t"
	default:
		return "  "
	}
}

// LineEndingStyle is a named line-ending preset for `esgen init
// --interactive`.
type LineEndingStyle string

const (
	LineEndingStyleLF   LineEndingStyle = "lf"
	LineEndingStyleCRLF LineEndingStyle = "crlf"
)

// GetFullConfigTemplate returns a documented .esgen.yaml with every field
// explained, seeded from the wizard's chosen indent and line-ending
// presets.
func GetFullConfigTemplate(indent IndentStyle, lineEnd LineEndingStyle) string {
	indentLiteral := indent.IndentString()
	if indent == IndentStyleTab {
		indentLiteral = `"\t"`
	} else {
		indentLiteral = `"` + indentLiteral + `"`
	}

	return `# esgen Configuration
# Documentation: https://github.com/ludo-technologies/esgen

# ==============================================================================
# RENDER
# ==============================================================================
# Options applied by "esgen render" and "esgen batch" when a matching CLI
# flag is left unset.
render:
  # Indentation unit repeated indent_level times per nesting depth.
  indent: ` + indentLiteral + `

  # Line terminator: "lf" or "crlf".
  line_end: "` + string(lineEnd) + `"

  # Starting indentation depth.
  indent_level: 0

  # Emit leading/trailing comments attached to AST nodes.
  comments: true

  # Path a source map is written to alongside rendered output. Empty
  # disables source-map generation.
  source_map: ""

# ==============================================================================
# BATCH
# ==============================================================================
# Options for "esgen batch", which renders every discovered AST file
# concurrently.
batch:
  # Number of files rendered at once (0 = ` + strconv.Itoa(DefaultBatchConcurrencyDoc) + `).
  concurrency: ` + strconv.Itoa(DefaultBatchConcurrencyDoc) + `

  # Collects every rendered file here instead of writing "<name>.js" next
  # to its input AST file. Empty uses the next-to-input behavior.
  output_dir: ""

  # Show a progress bar while batch rendering.
  progress: true

  # Must list at least one pattern. Discovery does not read this list: it
  # picks up every file whose name ends in ".ast.json".
  include_patterns:
    - "*.ast.json"

  # Files whose base name matches a glob here, or whose path contains an
  # entry as plain text, are left out of discovery.
  exclude_patterns:
    - "*.min.ast.json"

# ==============================================================================
# OUTPUT
# ==============================================================================
output:
  # Report format: "text", "json", "yaml".
  format: "text"
`
}

// DefaultBatchConcurrencyDoc mirrors constants.DefaultConcurrency for use
// inside the YAML template's comment text and default value; kept as a
// separate literal so the template package does not need to import
// constants twice for one number.
const DefaultBatchConcurrencyDoc = 4

// GetMinimalConfigTemplate returns a minimal .esgen.yaml with only the
// fields most users adjust.
func GetMinimalConfigTemplate() string {
	return `# esgen Configuration (minimal)
# See full options: https://github.com/ludo-technologies/esgen

render:
  indent: "\t"
  line_end: "lf"
  comments: true

batch:
  concurrency: 4
  progress: true
  include_patterns:
    - "*.ast.json"

output:
  format: "text"
`
}
