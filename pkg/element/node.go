// Package element provides the node model and rendering engine for
// programmatic HTML generation. Nodes are composed bottom-up into a tree,
// resolved against a theme and serialized to a single HTML string with all
// CSS inlined.
package element

import (
	"fmt"
	"strings"

	"htmlgen/pkg/theme"
)

// Node is a unit in the render tree: either a leaf (raw text) or an element
// carrying a tag, attributes, styles, classes and children.
type Node interface {
	// Build validates the node, resolves it against the theme and returns
	// its complete HTML markup. Build never mutates the tree, so repeated
	// calls on an unchanged tree return identical output.
	Build(t *theme.Theme) (string, error)
}

// Element is a generic renderable element. Specialized variants (Link, Image,
// Table and friends) embed it and layer their own validation on top.
type Element struct {
	tag         string
	classes     []string
	styles      *propertyMap
	attributes  *propertyMap
	children    []Node
	selfClosing bool
}

// NewElement creates an element with the given tag name. The tag is fixed for
// the lifetime of the element.
func NewElement(tag string) *Element {
	return &Element{
		tag:        strings.ToLower(strings.TrimSpace(tag)),
		styles:     newPropertyMap(),
		attributes: newPropertyMap(),
	}
}

// NewTextElement creates an element wrapping a single encoded text child,
// e.g. NewTextElement("p", "Hi") renders as <p>Hi</p>.
func NewTextElement(tag, text string) *Element {
	return NewElement(tag).AddChild(NewText(text))
}

// NewStrong creates a <strong> element around encoded text.
func NewStrong(text string) *Element {
	return NewTextElement("strong", text)
}

// NewEm creates an <em> element around encoded text.
func NewEm(text string) *Element {
	return NewTextElement("em", text)
}

// NewList creates a <ul> or <ol> element.
func NewList(ordered bool) *Element {
	if ordered {
		return NewElement("ol")
	}
	return NewElement("ul")
}

// NewListItem creates an <li> element.
func NewListItem() *Element {
	return NewElement("li")
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// AddChild appends a child node. A node must be attached to exactly one
// parent; ownership is never transferred afterwards.
func (e *Element) AddChild(child Node) *Element {
	e.children = append(e.children, child)
	return e
}

// AddText appends an encoded text child.
func (e *Element) AddText(text string) *Element {
	return e.AddChild(NewText(text))
}

// AddClass appends a class name. Local classes always appear in the rendered
// class attribute, whether or not the theme defines a bundle for them.
func (e *Element) AddClass(name string) *Element {
	e.classes = append(e.classes, strings.TrimSpace(name))
	return e
}

// AddStyle sets a local CSS property override. Later calls for the same
// property win.
func (e *Element) AddStyle(property, value string) *Element {
	e.styles.Set(property, value)
	return e
}

// AddAttribute sets a local HTML attribute override. Attribute names are
// matched case-insensitively; values are kept verbatim.
func (e *Element) AddAttribute(name, value string) *Element {
	e.attributes.Set(name, value)
	return e
}

// Classes returns a copy of the locally applied class names in the order they
// were added.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Attribute returns a locally set attribute value.
func (e *Element) Attribute(name string) (string, bool) {
	return e.attributes.Get(name)
}

// Children returns the child nodes in attachment order.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Build resolves the element against the theme and serializes it together
// with its children.
func (e *Element) Build(t *theme.Theme) (string, error) {
	return e.render(t)
}

// requireAttribute checks that a local attribute is present and not blank.
// Variants use it to implement their required-field invariants.
func (e *Element) requireAttribute(name string) error {
	value, ok := e.attributes.Get(name)
	if !ok || strings.TrimSpace(value) == "" {
		return &ValidationError{
			Tag:    e.tag,
			Reason: fmt.Sprintf("required attribute %q is missing or blank", name),
		}
	}
	return nil
}
