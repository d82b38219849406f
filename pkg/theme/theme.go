package theme

import "strings"

// ElementStyle bundles the CSS properties and HTML attributes that a theme
// applies to one selector. Both maps are last-write-wins on construction.
type ElementStyle struct {
	Styles     map[string]string // CSS property -> value
	Attributes map[string]string // HTML attribute -> value
}

// Empty returns an ElementStyle with no properties and no attributes.
// Both maps are non-nil so callers can range over them directly.
func Empty() ElementStyle {
	return ElementStyle{
		Styles:     make(map[string]string),
		Attributes: make(map[string]string),
	}
}

// Theme maps selectors to reusable style bundles. A selector is either a bare
// tag name ("h1") or a class selector prefixed with a dot (".button").
// Selector matching is case-insensitive; stored values are kept verbatim.
type Theme struct {
	styles map[string]ElementStyle
}

// New creates an empty theme.
func New() *Theme {
	return &Theme{styles: make(map[string]ElementStyle)}
}

// AddStyle registers the bundle for a selector, replacing any bundle a
// previous AddStyle call stored for the same selector.
func (t *Theme) AddStyle(selector string, style ElementStyle) {
	t.styles[strings.ToLower(selector)] = cloneStyle(style)
}

// GetStyleFor returns the bundle registered for a selector. A lookup miss
// returns an empty bundle, never an error.
func (t *Theme) GetStyleFor(selector string) ElementStyle {
	if style, ok := t.styles[strings.ToLower(selector)]; ok {
		return cloneStyle(style)
	}
	return Empty()
}

// cloneStyle copies a bundle so the theme and its callers never share maps.
func cloneStyle(style ElementStyle) ElementStyle {
	cloned := Empty()
	for property, value := range style.Styles {
		cloned.Styles[property] = value
	}
	for name, value := range style.Attributes {
		cloned.Attributes[name] = value
	}
	return cloned
}
