// Package export renders the finished script for output formats beyond raw
// Markdown.
package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// HTML converts the assembled Markdown script to HTML.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
