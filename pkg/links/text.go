package links

import (
	"strings"

	"github.com/jaytaylor/html2text"
)

// PlainText converts rendered link markup into plain text, keeping the target
// URL next to the label.
func PlainText(markup string) (string, error) {
	text, err := html2text.FromString(markup, html2text.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
