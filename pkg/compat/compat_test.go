package compat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htmlgen/pkg/document"
	"htmlgen/pkg/theme"
)

func TestProfileForKnownClients(t *testing.T) {
	outlook := ProfileFor("outlook")
	assert.False(t, outlook.SupportsMediaQueries, "desktop Outlook renders with the Word engine")
	assert.True(t, outlook.RequiresInlineStyles)

	gmail := ProfileFor("Gmail")
	assert.True(t, gmail.SupportsMediaQueries, "client names should match case-insensitively")

	unknown := ProfileFor("carrier-pigeon")
	assert.Equal(t, "generic", unknown.Name)
	assert.True(t, unknown.RequiresInlineStyles, "unknown clients get conservative defaults")
}

func TestCheckFlagsPositionFixed(t *testing.T) {
	issues, err := Check(`<table><tr><td style="position:fixed">x</td></tr></table>`, ProfileFor("gmail"))
	require.NoError(t, err)

	found := false
	for _, issue := range issues {
		if issue.Property == "position" && issue.Severity == "error" {
			found = true
		}
	}
	assert.True(t, found, "position:fixed should be reported as an error")
}

func TestCheckWarnsOnTableFreeLayout(t *testing.T) {
	issues, err := Check(`<div><p>hello</p></div>`, ProfileFor("outlook"))
	require.NoError(t, err)

	found := false
	for _, issue := range issues {
		if issue.Type == "structure" && strings.Contains(issue.Message, "table") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckAcceptsSafeInlineStyles(t *testing.T) {
	issues, err := Check(`<table><tr><td style="color:#333;font-size:14px;padding:4px">x</td></tr></table>`, ProfileFor("outlook"))
	require.NoError(t, err)
	for _, issue := range issues {
		assert.NotEqual(t, "css", issue.Type, "email-safe properties should not be flagged: %+v", issue)
	}
}

func TestCheckFlagsUnsafePropertyForStrictClients(t *testing.T) {
	markup := `<table><tr><td style="animation:spin 2s">x</td></tr></table>`

	issues, err := Check(markup, ProfileFor("outlook"))
	require.NoError(t, err)
	found := false
	for _, issue := range issues {
		if issue.Property == "animation" {
			found = true
		}
	}
	assert.True(t, found, "outlook requires inline-safe properties")

	issues, err = Check(markup, ProfileFor("gmail"))
	require.NoError(t, err)
	for _, issue := range issues {
		assert.NotEqual(t, "animation", issue.Property, "lenient clients should not flag unknown properties")
	}
}

func TestCheckGeneratedDocument(t *testing.T) {
	th := theme.New()
	th.AddStyle("td", theme.ElementStyle{Styles: map[string]string{"font-family": "Arial", "padding": "8px"}})

	doc := document.New(th)
	doc.Table(func(b *document.TableBuilder) {
		b.Header("Item", "Qty")
		b.Row("Widget", "2")
	})

	markup, err := doc.Build()
	require.NoError(t, err)

	issues, err := Check(markup, ProfileFor("outlook"))
	require.NoError(t, err)
	assert.Empty(t, issues, "a themed table document should pass a strict profile clean")
}

func TestIsSafeProperty(t *testing.T) {
	assert.True(t, IsSafeProperty("color"))
	assert.True(t, IsSafeProperty("BORDER-COLLAPSE"), "property matching should ignore case")
	assert.False(t, IsSafeProperty("position"))
	assert.False(t, IsSafeProperty("animation"))
}
