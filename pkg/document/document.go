// Package document is the entry point for assembling and rendering HTML
// documents. A Document owns an ordered list of root nodes and a single
// theme; Build renders every root against the theme and concatenates the
// results into one HTML string.
package document

import (
	"fmt"
	"strings"

	"htmlgen/pkg/element"
	"htmlgen/pkg/theme"
)

// UsageError reports a builder sequencing violation, such as defining a
// second header row on one table. It is recorded when the violating call is
// made and surfaced from Build.
type UsageError struct {
	Op     string // the builder call that was misused
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Document owns the root node list and the theme used to render it.
type Document struct {
	theme *theme.Theme
	roots []element.Node
	err   error // first builder usage error, sticky
}

// New creates a document rendered against the given theme. A nil theme is
// treated as an empty one.
func New(t *theme.Theme) *Document {
	if t == nil {
		t = theme.New()
	}
	return &Document{theme: t}
}

// Theme returns the document's theme, for registering style bundles.
func (d *Document) Theme() *theme.Theme {
	return d.theme
}

// Add attaches a node to the document root. Nodes are rendered in the order
// they were added.
func (d *Document) Add(node element.Node) *Document {
	d.roots = append(d.roots, node)
	return d
}

// Build renders every root node against the theme and concatenates the
// markup. Rendering is all-or-nothing: any validation or usage error aborts
// the whole call with no partial output.
func (d *Document) Build() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	var b strings.Builder
	for _, root := range d.roots {
		markup, err := root.Build(d.theme)
		if err != nil {
			return "", err
		}
		b.WriteString(markup)
	}
	return b.String(), nil
}

// fail records the first builder usage error for Build to surface.
func (d *Document) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}
