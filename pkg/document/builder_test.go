package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htmlgen/pkg/element"
)

func TestDeclarativeAndImperativeTreesMatch(t *testing.T) {
	declarative := New(nil)
	declarative.Table(func(b *TableBuilder) {
		b.Header("Name", "Age")
		b.Row("Alice", "30")
	})

	imperative := New(nil)
	header := element.NewTableRow().
		AddCell(element.NewHeaderCell().AddText("Name")).
		AddCell(element.NewHeaderCell().AddText("Age"))
	body := element.NewTableRow().
		AddCell(element.NewTableCell().AddText("Alice")).
		AddCell(element.NewTableCell().AddText("30"))
	imperative.Add(element.NewTable().AddRow(header).AddRow(body))

	fromBuilder, err := declarative.Build()
	require.NoError(t, err)
	fromConstructors, err := imperative.Build()
	require.NoError(t, err)
	assert.Equal(t, fromConstructors, fromBuilder, "both construction styles must produce identical output")
}

func TestSecondHeaderIsUsageError(t *testing.T) {
	doc := New(nil)
	doc.Table(func(b *TableBuilder) {
		b.Header("Name")
		b.Header("Name again")
	})

	markup, err := doc.Build()
	require.Error(t, err)
	assert.Empty(t, markup)

	var uerr *UsageError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Error(), "header")
}

func TestUsageErrorIsSticky(t *testing.T) {
	doc := New(nil)
	doc.Table(func(b *TableBuilder) {
		b.Header("a")
		b.Header("b")
		b.Header("c")
	})
	doc.Paragraph("later content")

	_, err := doc.Build()
	var uerr *UsageError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "TableBuilder.Header", uerr.Op, "the first violation should be the one reported")
}

func TestBuilderSpansBypassColumnValidation(t *testing.T) {
	doc := New(nil)
	doc.Table(func(b *TableBuilder) {
		b.Header("Name", "Age", "City")
		b.RowFunc(func(r *RowBuilder) {
			r.CellFunc(func(c *CellBuilder) {
				c.Text("everything").ColSpan(3)
			})
		})
		b.Row("Alice", "30") // short row, tolerated because of the span above
	})

	markup, err := doc.Build()
	require.NoError(t, err)
	assert.Contains(t, markup, `colspan="3"`)
}

func TestCellBuilderInlineContent(t *testing.T) {
	doc := New(nil)
	doc.Table(func(b *TableBuilder) {
		b.RowFunc(func(r *RowBuilder) {
			r.CellFunc(func(c *CellBuilder) {
				c.Strong("bold").
					Em("slanted").
					Link("https://example.com", "go").
					Style("text-align", "center").
					Class("key")
			})
		})
	})

	markup, err := doc.Build()
	require.NoError(t, err)
	assert.Contains(t, markup, "<strong>bold</strong>")
	assert.Contains(t, markup, "<em>slanted</em>")
	assert.Contains(t, markup, `<a href="https://example.com">go</a>`)
	assert.Contains(t, markup, `class="key"`)
	assert.Contains(t, markup, "text-align:center")
}

func TestTableBuilderNodeChaining(t *testing.T) {
	doc := New(nil)
	doc.Table(func(b *TableBuilder) {
		b.Row("only")
		b.Node().AddClass("grid").AddAttribute("cellpadding", "0")
	})

	markup, err := doc.Build()
	require.NoError(t, err)
	assert.Contains(t, markup, `class="grid"`)
	assert.Contains(t, markup, `cellpadding="0"`)
}

func TestUnorderedList(t *testing.T) {
	doc := New(nil)
	doc.UnorderedList(func(b *ListBuilder) {
		b.Item("one")
		b.Item("two")
	})

	markup, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", markup)
}

func TestOrderedListWithRichItems(t *testing.T) {
	doc := New(nil)
	doc.OrderedList(func(b *ListBuilder) {
		b.Item("plain")
		b.ItemFunc(func(i *ItemBuilder) {
			i.Strong("first").Text(" then ").Em("second").Class("steps")
		})
	})

	markup, err := doc.Build()
	require.NoError(t, err)
	assert.Contains(t, markup, "<ol><li>plain</li>")
	assert.Contains(t, markup, `<li class="steps"><strong>first</strong> then <em>second</em></li>`)
}
