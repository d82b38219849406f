package element

import (
	"strings"

	"htmlgen/pkg/theme"
)

// render resolves the element's final attributes, styles and classes against
// the theme and serializes the element with its children.
//
// Resolution order, later steps winning on conflict:
//  1. theme bundle for the tag name
//  2. theme bundles for each local class, in the order the classes were added
//  3. local style and attribute overrides
//  4. local class names joined into the class set
//
// An attribute named "class" is never merged as an attribute; its
// space-separated tokens are collected into the class set instead, because
// class application is additive rather than overriding.
func (e *Element) render(t *theme.Theme) (string, error) {
	attrs, styles, classes := e.resolve(t)

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)

	for _, name := range attrs.Keys() {
		value, _ := attrs.Get(name)
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(encode(value))
		b.WriteString(`"`)
	}

	if len(classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(encode(strings.Join(classes, " ")))
		b.WriteString(`"`)
	}

	if styles.Len() > 0 {
		pairs := make([]string, 0, styles.Len())
		for _, property := range styles.Keys() {
			value, _ := styles.Get(property)
			pairs = append(pairs, property+":"+value)
		}
		b.WriteString(` style="`)
		b.WriteString(encode(strings.Join(pairs, ";")))
		b.WriteString(`"`)
	}

	if e.selfClosing {
		b.WriteString(" />")
		return b.String(), nil
	}

	b.WriteString(">")
	for _, child := range e.children {
		markup, err := child.Build(t)
		if err != nil {
			return "", err
		}
		b.WriteString(markup)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteString(">")

	return b.String(), nil
}

// resolve computes the working attribute map, style map and class set for
// one element. Theme bundle maps are walked in sorted key order so the
// resulting insertion order is identical across renders.
func (e *Element) resolve(t *theme.Theme) (*propertyMap, *propertyMap, []string) {
	attrs := newPropertyMap()
	styles := newPropertyMap()
	classes := newClassSet()

	merge := func(bundle theme.ElementStyle) {
		for _, property := range sortedKeys(bundle.Styles) {
			styles.Set(property, bundle.Styles[property])
		}
		for _, name := range sortedKeys(bundle.Attributes) {
			if strings.EqualFold(name, "class") {
				classes.addTokens(bundle.Attributes[name])
				continue
			}
			attrs.Set(name, bundle.Attributes[name])
		}
	}

	if t != nil {
		merge(t.GetStyleFor(e.tag))
		for _, class := range e.classes {
			merge(t.GetStyleFor("." + class))
		}
	}

	for _, property := range e.styles.Keys() {
		value, _ := e.styles.Get(property)
		styles.Set(property, value)
	}
	for _, name := range e.attributes.Keys() {
		value, _ := e.attributes.Get(name)
		if name == "class" {
			classes.addTokens(value)
			continue
		}
		attrs.Set(name, value)
	}

	for _, class := range e.classes {
		classes.add(class)
	}

	return attrs, styles, classes.values()
}
