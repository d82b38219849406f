package document

import (
	"strconv"

	"htmlgen/pkg/element"
)

// Convenience helpers. Each one is pure sugar over the element constructors:
// it builds a node, attaches it to the document root and returns it so
// callers can keep chaining classes, styles and attributes.

// H1 adds a level-1 heading.
func (d *Document) H1(text string) *element.Element { return d.heading(1, text) }

// H2 adds a level-2 heading.
func (d *Document) H2(text string) *element.Element { return d.heading(2, text) }

// H3 adds a level-3 heading.
func (d *Document) H3(text string) *element.Element { return d.heading(3, text) }

// H4 adds a level-4 heading.
func (d *Document) H4(text string) *element.Element { return d.heading(4, text) }

// H5 adds a level-5 heading.
func (d *Document) H5(text string) *element.Element { return d.heading(5, text) }

// H6 adds a level-6 heading.
func (d *Document) H6(text string) *element.Element { return d.heading(6, text) }

func (d *Document) heading(level int, text string) *element.Element {
	h := element.NewTextElement("h"+strconv.Itoa(level), text)
	d.Add(h)
	return h
}

// Paragraph adds a <p> element around encoded text.
func (d *Document) Paragraph(text string) *element.Element {
	p := element.NewTextElement("p", text)
	d.Add(p)
	return p
}

// Span adds a <span> element around encoded text.
func (d *Document) Span(text string) *element.Element {
	s := element.NewTextElement("span", text)
	d.Add(s)
	return s
}

// Div adds an empty <div> element.
func (d *Document) Div() *element.Element {
	div := element.NewElement("div")
	d.Add(div)
	return div
}

// Spacer adds an empty <div> with a fixed pixel height, the table-free way
// to force vertical whitespace in email clients.
func (d *Document) Spacer(heightPx int) *element.Element {
	spacer := element.NewElement("div").
		AddStyle("height", strconv.Itoa(heightPx)+"px").
		AddStyle("line-height", strconv.Itoa(heightPx)+"px")
	d.Add(spacer)
	return spacer
}

// HorizontalRule adds an <hr> equivalent rendered as a bordered div, since
// <hr> styling is unreliable across email clients.
func (d *Document) HorizontalRule() *element.Element {
	rule := element.NewElement("div").
		AddStyle("border-top", "1px solid #cccccc")
	d.Add(rule)
	return rule
}

// Tag adds a generic element with the given tag name and applies the
// optional configurator to it before returning.
func (d *Document) Tag(tag string, configure func(*element.Element)) *element.Element {
	e := element.NewElement(tag)
	if configure != nil {
		configure(e)
	}
	d.Add(e)
	return e
}

// Link adds an <a> element around encoded text.
func (d *Document) Link(href, text string) *element.Link {
	link := element.NewLink(href).AddText(text)
	d.Add(link)
	return link
}

// Image adds a self-closing <img> element.
func (d *Document) Image(src string) *element.Image {
	img := element.NewImage(src)
	d.Add(img)
	return img
}

// RawHTML adds an unescaped markup passthrough. The caller vouches for the
// content; the engine neither validates nor encodes it.
func (d *Document) RawHTML(markup string) *Document {
	return d.Add(element.NewRawHTML(markup))
}
