// Package compat checks generated HTML against email-client CSS support.
// It never blocks rendering; it reads finished markup back and reports
// advisory issues so callers can adjust their trees before sending.
package compat

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Profile describes one email client's CSS support.
type Profile struct {
	Name                    string
	SupportsMediaQueries    bool
	SupportsPseudoSelectors map[string]bool // :hover, :focus, etc.
	RequiresInlineStyles    bool
	MaxMessageSize          int // in bytes, 0 = no limit
}

// ProfileFor returns the compatibility profile for a known email client.
// Unknown clients get conservative defaults.
func ProfileFor(client string) Profile {
	switch strings.ToLower(client) {
	case "outlook", "outlook_desktop":
		// Desktop Outlook renders with the Word engine.
		return Profile{
			Name:                    "outlook",
			SupportsMediaQueries:    false,
			SupportsPseudoSelectors: map[string]bool{":hover": false, ":focus": false},
			RequiresInlineStyles:    true,
			MaxMessageSize:          65536,
		}
	case "gmail", "gmail_web":
		return Profile{
			Name:                    "gmail",
			SupportsMediaQueries:    true,
			SupportsPseudoSelectors: map[string]bool{":hover": true, ":focus": true},
			RequiresInlineStyles:    false,
			MaxMessageSize:          0,
		}
	case "apple_mail", "mail_app":
		return Profile{
			Name:                    "apple_mail",
			SupportsMediaQueries:    true,
			SupportsPseudoSelectors: map[string]bool{":hover": true, ":focus": true},
			RequiresInlineStyles:    false,
			MaxMessageSize:          0,
		}
	case "outlook_online", "outlook_web":
		return Profile{
			Name:                    "outlook_online",
			SupportsMediaQueries:    true,
			SupportsPseudoSelectors: map[string]bool{":hover": true, ":focus": false},
			RequiresInlineStyles:    true,
			MaxMessageSize:          65536,
		}
	default:
		return Profile{
			Name:                    "generic",
			SupportsMediaQueries:    false,
			SupportsPseudoSelectors: map[string]bool{},
			RequiresInlineStyles:    true,
			MaxMessageSize:          32768,
		}
	}
}

// Issue represents one email compatibility finding.
type Issue struct {
	Type     string // "structure", "css"
	Severity string // "error", "warning", "info"
	Message  string
	Element  string
	Property string // for CSS issues
}

// Check parses generated markup and reports compatibility issues for the
// given client profile.
func Check(markup string, profile Profile) ([]Issue, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	var issues []Issue
	issues = append(issues, checkStructure(doc)...)
	issues = append(issues, checkInlineStyles(doc, profile)...)
	if profile.MaxMessageSize > 0 && len(markup) > profile.MaxMessageSize {
		issues = append(issues, Issue{
			Type:     "structure",
			Severity: "warning",
			Message:  fmt.Sprintf("markup is %d bytes, above the %s limit of %d", len(markup), profile.Name, profile.MaxMessageSize),
			Element:  "body",
		})
	}
	return issues, nil
}

// checkStructure flags layout patterns that major clients mishandle.
func checkStructure(doc *goquery.Document) []Issue {
	var issues []Issue

	if doc.Find("table").Length() == 0 && doc.Find("body *").Length() > 0 {
		issues = append(issues, Issue{
			Type:     "structure",
			Severity: "warning",
			Message:  "email should use table-based layout for better client compatibility",
			Element:  "body",
		})
	}

	return issues
}

// checkInlineStyles walks every styled element and flags properties the
// target client does not render.
func checkInlineStyles(doc *goquery.Document, profile Profile) []Issue {
	var issues []Issue

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		styleAttr, _ := s.Attr("style")
		tag := goquery.NodeName(s)

		for property, value := range parseStyleAttr(styleAttr) {
			switch {
			case property == "position" && value == "fixed":
				issues = append(issues, Issue{
					Type:     "css",
					Severity: "error",
					Message:  "position: fixed is not supported in email clients",
					Element:  tag,
					Property: property,
				})
			case !IsSafeProperty(property) && profile.RequiresInlineStyles:
				issues = append(issues, Issue{
					Type:     "css",
					Severity: "warning",
					Message:  fmt.Sprintf("property %q may not render in %s", property, profile.Name),
					Element:  tag,
					Property: property,
				})
			}
		}
	})

	return issues
}

// parseStyleAttr splits an inline style attribute into property/value pairs.
// The engine emits well-formed "property:value" pairs joined by semicolons,
// so a plain split is sufficient here.
func parseStyleAttr(styleAttr string) map[string]string {
	styles := make(map[string]string)
	for _, declaration := range strings.Split(styleAttr, ";") {
		property, value, ok := strings.Cut(declaration, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}
		styles[property] = value
	}
	return styles
}
