package document

import (
	"htmlgen/pkg/element"
)

// Declarative builders. Each Document method below hands a builder to a
// nested configuration callback; the builder's calls append to the same node
// model the imperative element constructors produce, so both construction
// styles yield identical trees.

// Table adds a table and configures it through a TableBuilder.
func (d *Document) Table(configure func(*TableBuilder)) *element.Table {
	table := element.NewTable()
	if configure != nil {
		configure(&TableBuilder{doc: d, table: table})
	}
	d.Add(table)
	return table
}

// TableBuilder assembles a table's header and rows.
type TableBuilder struct {
	doc       *Document
	table     *element.Table
	hasHeader bool
}

// Node returns the table under construction, for chaining classes, styles
// and attributes.
func (b *TableBuilder) Node() *element.Table {
	return b.table
}

// Header defines the header row from plain cell texts. A table has at most
// one header row; a second call records a usage error.
func (b *TableBuilder) Header(cells ...string) *TableBuilder {
	if b.hasHeader {
		b.doc.fail(&UsageError{Op: "TableBuilder.Header", Reason: "table already has a header row"})
		return b
	}
	b.hasHeader = true
	row := element.NewTableRow()
	for _, text := range cells {
		row.AddCell(element.NewHeaderCell().AddText(text))
	}
	b.table.AddRow(row)
	return b
}

// Row appends a body row from plain cell texts.
func (b *TableBuilder) Row(cells ...string) *TableBuilder {
	row := element.NewTableRow()
	for _, text := range cells {
		row.AddCell(element.NewTableCell().AddText(text))
	}
	b.table.AddRow(row)
	return b
}

// RowFunc appends a body row configured cell by cell, for rows that need
// spans, styling or inline markup.
func (b *TableBuilder) RowFunc(configure func(*RowBuilder)) *TableBuilder {
	row := element.NewTableRow()
	if configure != nil {
		configure(&RowBuilder{row: row})
	}
	b.table.AddRow(row)
	return b
}

// RowBuilder assembles the cells of one table row.
type RowBuilder struct {
	row *element.TableRow
}

// Cell appends a plain text cell.
func (b *RowBuilder) Cell(text string) *RowBuilder {
	b.row.AddCell(element.NewTableCell().AddText(text))
	return b
}

// CellFunc appends a cell configured through a CellBuilder.
func (b *RowBuilder) CellFunc(configure func(*CellBuilder)) *RowBuilder {
	cell := element.NewTableCell()
	if configure != nil {
		configure(&CellBuilder{cell: cell})
	}
	b.row.AddCell(cell)
	return b
}

// CellBuilder assembles one table cell. It exposes inline content only:
// cells cannot contain tables or lists.
type CellBuilder struct {
	cell *element.TableCell
}

// Text appends encoded text.
func (b *CellBuilder) Text(text string) *CellBuilder {
	b.cell.AddText(text)
	return b
}

// Strong appends a <strong> element around encoded text.
func (b *CellBuilder) Strong(text string) *CellBuilder {
	b.cell.AddChild(element.NewStrong(text))
	return b
}

// Em appends an <em> element around encoded text.
func (b *CellBuilder) Em(text string) *CellBuilder {
	b.cell.AddChild(element.NewEm(text))
	return b
}

// Link appends an <a> element around encoded text.
func (b *CellBuilder) Link(href, text string) *CellBuilder {
	b.cell.AddChild(element.NewLink(href).AddText(text))
	return b
}

// Image appends a self-closing <img> element.
func (b *CellBuilder) Image(src string) *CellBuilder {
	b.cell.AddChild(element.NewImage(src))
	return b
}

// RowSpan declares the cell's rowspan.
func (b *CellBuilder) RowSpan(n int) *CellBuilder {
	b.cell.SetRowSpan(n)
	return b
}

// ColSpan declares the cell's colspan.
func (b *CellBuilder) ColSpan(n int) *CellBuilder {
	b.cell.SetColSpan(n)
	return b
}

// Class appends a class name to the cell.
func (b *CellBuilder) Class(name string) *CellBuilder {
	b.cell.AddClass(name)
	return b
}

// Style sets a local CSS property override on the cell.
func (b *CellBuilder) Style(property, value string) *CellBuilder {
	b.cell.AddStyle(property, value)
	return b
}

// Attribute sets a local HTML attribute override on the cell.
func (b *CellBuilder) Attribute(name, value string) *CellBuilder {
	b.cell.AddAttribute(name, value)
	return b
}

// UnorderedList adds a <ul> configured through a ListBuilder.
func (d *Document) UnorderedList(configure func(*ListBuilder)) *element.Element {
	return d.list(false, configure)
}

// OrderedList adds an <ol> configured through a ListBuilder.
func (d *Document) OrderedList(configure func(*ListBuilder)) *element.Element {
	return d.list(true, configure)
}

func (d *Document) list(ordered bool, configure func(*ListBuilder)) *element.Element {
	list := element.NewList(ordered)
	if configure != nil {
		configure(&ListBuilder{list: list})
	}
	d.Add(list)
	return list
}

// ListBuilder assembles the items of one list.
type ListBuilder struct {
	list *element.Element
}

// Item appends a plain text item.
func (b *ListBuilder) Item(text string) *ListBuilder {
	b.list.AddChild(element.NewListItem().AddText(text))
	return b
}

// ItemFunc appends an item configured through an ItemBuilder.
func (b *ListBuilder) ItemFunc(configure func(*ItemBuilder)) *ListBuilder {
	item := element.NewListItem()
	if configure != nil {
		configure(&ItemBuilder{item: item})
	}
	b.list.AddChild(item)
	return b
}

// ItemBuilder assembles one list item. Like cells, items expose inline
// content only: no nested tables or lists.
type ItemBuilder struct {
	item *element.Element
}

// Text appends encoded text.
func (b *ItemBuilder) Text(text string) *ItemBuilder {
	b.item.AddText(text)
	return b
}

// Strong appends a <strong> element around encoded text.
func (b *ItemBuilder) Strong(text string) *ItemBuilder {
	b.item.AddChild(element.NewStrong(text))
	return b
}

// Em appends an <em> element around encoded text.
func (b *ItemBuilder) Em(text string) *ItemBuilder {
	b.item.AddChild(element.NewEm(text))
	return b
}

// Link appends an <a> element around encoded text.
func (b *ItemBuilder) Link(href, text string) *ItemBuilder {
	b.item.AddChild(element.NewLink(href).AddText(text))
	return b
}

// Class appends a class name to the item.
func (b *ItemBuilder) Class(name string) *ItemBuilder {
	b.item.AddClass(name)
	return b
}

// Style sets a local CSS property override on the item.
func (b *ItemBuilder) Style(property, value string) *ItemBuilder {
	b.item.AddStyle(property, value)
	return b
}
