package compat

import "strings"

// IsSafeProperty checks if a CSS property is safe for email clients.
func IsSafeProperty(property string) bool {
	return safeProperties[strings.ToLower(property)]
}

// safeProperties lists the properties that render reliably across email
// clients when inlined.
var safeProperties = map[string]bool{
	// Text properties
	"color":           true,
	"font-family":     true,
	"font-size":       true,
	"font-weight":     true,
	"font-style":      true,
	"text-align":      true,
	"text-decoration": true,
	"line-height":     true,
	"letter-spacing":  true,

	// Box model
	"width":          true,
	"height":         true,
	"padding":        true,
	"padding-top":    true,
	"padding-right":  true,
	"padding-bottom": true,
	"padding-left":   true,
	"margin":         true,
	"margin-top":     true,
	"margin-right":   true,
	"margin-bottom":  true,
	"margin-left":    true,

	// Background
	"background":       true,
	"background-color": true,
	"background-image": true,

	// Border
	"border":        true,
	"border-top":    true,
	"border-right":  true,
	"border-bottom": true,
	"border-left":   true,
	"border-color":  true,
	"border-style":  true,
	"border-width":  true,

	// Table properties
	"border-collapse": true,
	"border-spacing":  true,
	"vertical-align":  true,
}
