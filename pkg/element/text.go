package element

import (
	"strings"

	"htmlgen/pkg/theme"
)

// htmlEscaper encodes the four characters that are unsafe in HTML content
// and double-quoted attribute values. The apostrophe is deliberately left
// alone: this library only emits double-quoted attributes.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// encode HTML-encodes user-supplied content.
func encode(s string) string {
	return htmlEscaper.Replace(s)
}

// Text is a leaf node holding an immutable string. It renders as the
// HTML-encoded content only: no tag, no attributes, no children.
type Text struct {
	content string
}

// NewText creates a text leaf.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Content returns the unencoded literal content.
func (t *Text) Content() string {
	return t.content
}

// Build returns the HTML-encoded content. The theme is not consulted.
func (t *Text) Build(_ *theme.Theme) (string, error) {
	return encode(t.content), nil
}

// RawHTML is a leaf node whose content is emitted completely unescaped and
// unvalidated. It is the engine's one deliberate trust boundary: callers who
// use it vouch for the markup themselves.
type RawHTML struct {
	markup string
}

// NewRawHTML creates a raw passthrough leaf.
func NewRawHTML(markup string) *RawHTML {
	return &RawHTML{markup: markup}
}

// Build returns the stored markup verbatim.
func (r *RawHTML) Build(_ *theme.Theme) (string, error) {
	return r.markup, nil
}
