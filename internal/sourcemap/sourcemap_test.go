package sourcemap

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMapJSONRoundTripsSourcesAndVersion(t *testing.T) {
	m := New()
	m.Add("a.ast.json", 0, 0, 0, 0)
	m.Add("a.ast.json", 1, 4, 1, 0)

	data, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Version != 3 {
		t.Errorf("Version = %d, want 3", doc.Version)
	}
	if len(doc.Sources) != 1 || doc.Sources[0] != "a.ast.json" {
		t.Errorf("Sources = %v, want [a.ast.json]", doc.Sources)
	}
	if doc.Mappings == "" {
		t.Errorf("Mappings is empty")
	}
}

func TestMapJSONMultipleSources(t *testing.T) {
	m := New()
	m.Add("a.ast.json", 0, 0, 0, 0)
	m.Add("b.ast.json", 0, 0, 1, 0)

	data, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Sources) != 2 {
		t.Fatalf("Sources = %v, want 2 entries", doc.Sources)
	}
}

func TestWriteVLQKnownValues(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{15, "e"},
		{16, "gB"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		writeVLQ(&sb, tt.value)
		if got := sb.String(); got != tt.want {
			t.Errorf("writeVLQ(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestMapBase64IsValid(t *testing.T) {
	m := New()
	m.Add("a.ast.json", 0, 0, 0, 0)
	if _, err := m.Base64(); err != nil {
		t.Fatalf("Base64: %v", err)
	}
}
