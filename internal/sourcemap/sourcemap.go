// Package sourcemap is the concrete source-map v3 sink the emitter's
// Options.SourceMap wires against. The corpus carries no source-map
// encoder (DESIGN.md records the search), so the VLQ/base64 encoding here
// is a from-scratch implementation of the public source-map v3 format,
// kept deliberately small: sources indexed in first-seen order, no "names" tracking,
// mappings accumulated in emission order and grouped by generated line.
package sourcemap

import (
	"encoding/base64"
	"encoding/json"
	"sort"
	"strings"
)

// segment is one mapping within a single generated line, storing the
// already-delta-encoded fields is left to encode time so Add can stay a
// trivial append.
type segment struct {
	generatedColumn int
	sourceIndex     int
	originalLine    int
	originalColumn  int
}

// Map accumulates (generated position -> original position) mappings as
// an emitter.SourceMapSink and renders them to the standard source-map v3
// JSON document on demand.
type Map struct {
	sources     []string
	sourceIndex map[string]int
	byLine      map[int][]segment
	maxLine     int
}

// New creates an empty Map.
func New() *Map {
	return &Map{
		sourceIndex: make(map[string]int),
		byLine:      make(map[int][]segment),
	}
}

// Add records a mapping from a generated (line, column) back to an
// original (line, column) in sourceFile. It implements
// emitter.SourceMapSink so a *Map can be passed directly as
// emitter.Options.SourceMap.
func (m *Map) Add(sourceFile string, originalLine, originalCol, generatedLine, generatedCol int) {
	idx, ok := m.sourceIndex[sourceFile]
	if !ok {
		idx = len(m.sources)
		m.sources = append(m.sources, sourceFile)
		m.sourceIndex[sourceFile] = idx
	}

	m.byLine[generatedLine] = append(m.byLine[generatedLine], segment{
		generatedColumn: generatedCol,
		sourceIndex:     idx,
		originalLine:    originalLine,
		originalColumn:  originalCol,
	})
	if generatedLine > m.maxLine {
		m.maxLine = generatedLine
	}
}

// document is the wire shape of a source-map v3 file.
type document struct {
	Version  int      `json:"version"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// JSON renders the accumulated mappings as a source-map v3 document.
func (m *Map) JSON() ([]byte, error) {
	doc := document{
		Version:  3,
		Sources:  m.sources,
		Names:    []string{},
		Mappings: m.encodeMappings(),
	}
	return json.Marshal(doc)
}

// encodeMappings walks generated lines 0..maxLine in order, emitting one
// semicolon-separated group per line and one comma-separated, VLQ-encoded
// segment per mapping. Each field within a segment (besides the generated
// column) is a delta against the previous segment emitted for that same
// field, per the source-map v3 spec; the running source/line/column
// deltas persist across line boundaries, while the generated-column delta
// resets to 0 at the start of each line.
func (m *Map) encodeMappings() string {
	var out strings.Builder

	prevSource, prevOrigLine, prevOrigCol := 0, 0, 0

	for line := 0; line <= m.maxLine; line++ {
		if line > 0 {
			out.WriteByte(';')
		}
		segs := m.byLine[line]
		sort.Slice(segs, func(i, j int) bool {
			return segs[i].generatedColumn < segs[j].generatedColumn
		})

		prevGenCol := 0
		for i, s := range segs {
			if i > 0 {
				out.WriteByte(',')
			}
			writeVLQ(&out, s.generatedColumn-prevGenCol)
			writeVLQ(&out, s.sourceIndex-prevSource)
			writeVLQ(&out, s.originalLine-prevOrigLine)
			writeVLQ(&out, s.originalColumn-prevOrigCol)

			prevGenCol = s.generatedColumn
			prevSource = s.sourceIndex
			prevOrigLine = s.originalLine
			prevOrigCol = s.originalColumn
		}
	}

	return out.String()
}

const vlqBase64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// writeVLQ appends value to out using the base64-VLQ encoding source maps
// use: the sign occupies the low bit, 5 payload bits per digit, and a
// continuation bit (0x20) marks all but the final digit.
func writeVLQ(out *strings.Builder, value int) {
	v := value << 1
	if value < 0 {
		v = (-value << 1) | 1
	}

	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		out.WriteByte(vlqBase64Chars[digit])
		if v == 0 {
			break
		}
	}
}

// Base64 is a convenience for embedding a generated data: URL, unused by
// the CLI today but kept alongside JSON since both are standard
// source-map delivery mechanisms.
func (m *Map) Base64() (string, error) {
	data, err := m.JSON()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
