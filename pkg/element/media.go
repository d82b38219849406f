package element

import "htmlgen/pkg/theme"

// Link is an <a> element. It fails validation when its href attribute is
// missing or blank.
type Link struct {
	Element
}

// NewLink creates a link pointing at href.
func NewLink(href string) *Link {
	l := &Link{Element: *NewElement("a")}
	l.Element.AddAttribute("href", href)
	return l
}

// AddChild appends a child node.
func (l *Link) AddChild(child Node) *Link {
	l.Element.AddChild(child)
	return l
}

// AddText appends an encoded text child.
func (l *Link) AddText(text string) *Link {
	l.Element.AddText(text)
	return l
}

// AddClass appends a class name.
func (l *Link) AddClass(name string) *Link {
	l.Element.AddClass(name)
	return l
}

// AddStyle sets a local CSS property override.
func (l *Link) AddStyle(property, value string) *Link {
	l.Element.AddStyle(property, value)
	return l
}

// AddAttribute sets a local HTML attribute override.
func (l *Link) AddAttribute(name, value string) *Link {
	l.Element.AddAttribute(name, value)
	return l
}

// Build validates the href requirement, then renders the element.
func (l *Link) Build(t *theme.Theme) (string, error) {
	if err := l.requireAttribute("href"); err != nil {
		return "", err
	}
	return l.Element.Build(t)
}

// Image is a self-closing <img> element. It fails validation when its src
// attribute is missing or blank, and never renders children.
type Image struct {
	Element
}

// NewImage creates an image sourced from src.
func NewImage(src string) *Image {
	i := &Image{Element: *NewElement("img")}
	i.Element.selfClosing = true
	i.Element.AddAttribute("src", src)
	return i
}

// AddClass appends a class name.
func (i *Image) AddClass(name string) *Image {
	i.Element.AddClass(name)
	return i
}

// AddStyle sets a local CSS property override.
func (i *Image) AddStyle(property, value string) *Image {
	i.Element.AddStyle(property, value)
	return i
}

// AddAttribute sets a local HTML attribute override.
func (i *Image) AddAttribute(name, value string) *Image {
	i.Element.AddAttribute(name, value)
	return i
}

// Build validates the src requirement, then renders the element.
func (i *Image) Build(t *theme.Theme) (string, error) {
	if err := i.requireAttribute("src"); err != nil {
		return "", err
	}
	return i.Element.Build(t)
}
