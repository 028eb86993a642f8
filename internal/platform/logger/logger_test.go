package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_JSON_MergesBaseAndCallFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "admin", Out: &buf})

	l.With(map[string]any{"component": "store"}).Info("records loaded", map[string]any{"count": 3, "": "skip"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q (%v)", buf.String(), err)
	}
	if entry["app"] != "admin" || entry["component"] != "store" || entry["message"] != "records loaded" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["count"] != float64(3) {
		t.Fatalf("expected count=3, got %#v", entry["count"])
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key should be dropped")
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Out: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	if ParseLevel("nope") != Info || ParseLevel("WARNING") != Warn {
		t.Fatalf("unexpected parse results")
	}
}
