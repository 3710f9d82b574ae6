package content

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownRenderer converts snippet markdown to sanitized HTML for the
// admin preview of snippet_markdown fields.
type MarkdownRenderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewMarkdownRenderer creates a renderer with GFM extensions and a
// UGC sanitization policy.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to sanitized HTML. Render failures fall back
// to the empty string; the raw markdown value is always returned to the
// caller separately, so nothing is lost.
func (r *MarkdownRenderer) Render(markdown string) string {
	if markdown == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return r.sanitizer.Sanitize(buf.String())
}
