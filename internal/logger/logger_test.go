package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture redirects stdout around fn and returns what was printed.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestTaggedHelpers(t *testing.T) {
	out := capture(t, func() {
		Info("TAG", "info message")
		Success("TAG", "success message")
		Warn("TAG", "warn message")
		Error("TAG", "error message")
	})
	for _, want := range []string{"info message", "success message", "warn message", "error message"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(out, "[TAG]") {
		t.Error("output missing tag")
	}
}

func TestBanner(t *testing.T) {
	out := capture(t, func() { Banner("v1.2.3") })
	if !strings.Contains(out, "v1.2.3") {
		t.Error("banner missing version")
	}
	out = capture(t, func() { Banner("") })
	if !strings.Contains(out, "dev") {
		t.Error("empty version should fall back to dev")
	}
}

func TestSectionAndStats(t *testing.T) {
	out := capture(t, func() {
		Section("Catalog Statistics")
		Stats("Neutron stars", 42)
	})
	if !strings.Contains(out, "Catalog Statistics") || !strings.Contains(out, "42") {
		t.Errorf("unexpected output: %q", out)
	}
}
