package links

import (
	"strings"
	"testing"
)

func TestPlainText(t *testing.T) {
	markup := newTestRenderer(nil).Render(Make("enable", "/users/1/enable", Attributes{}, false))

	text, err := PlainText(markup)
	if err != nil {
		t.Fatalf("PlainText: %v", err)
	}
	if !strings.Contains(text, "Enable") {
		t.Fatalf("expected title in text, got %q", text)
	}
	if !strings.Contains(text, "/users/1/enable") {
		t.Fatalf("expected target in text, got %q", text)
	}
	if strings.Contains(text, "<") {
		t.Fatalf("expected markup to be removed, got %q", text)
	}
}
