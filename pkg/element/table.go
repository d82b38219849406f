package element

import (
	"fmt"
	"strconv"

	"htmlgen/pkg/theme"
)

// Table is a <table> element with column-count bookkeeping. The first row
// attached fixes the expected column count; every later row must match it.
// Once any cell declares a row or column span greater than one, the check is
// disabled for the whole table, because spans make per-row cell counts
// meaningless.
type Table struct {
	Element
	columnCount    int
	columnCountSet bool
	hasSpans       bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{Element: *NewElement("table")}
}

// AddRow attaches a row. The first row fixes the expected column count.
func (t *Table) AddRow(row *TableRow) *Table {
	if !t.columnCountSet {
		t.columnCount = row.CellCount()
		t.columnCountSet = true
	}
	if row.spansCells() {
		t.hasSpans = true
	}
	t.Element.AddChild(row)
	return t
}

// AddClass appends a class name.
func (t *Table) AddClass(name string) *Table {
	t.Element.AddClass(name)
	return t
}

// AddStyle sets a local CSS property override.
func (t *Table) AddStyle(property, value string) *Table {
	t.Element.AddStyle(property, value)
	return t
}

// AddAttribute sets a local HTML attribute override.
func (t *Table) AddAttribute(name, value string) *Table {
	t.Element.AddAttribute(name, value)
	return t
}

// ColumnCount returns the expected column count and whether it has been set.
func (t *Table) ColumnCount() (int, bool) {
	return t.columnCount, t.columnCountSet
}

// HasSpans reports whether any attached cell declared a span greater than one.
func (t *Table) HasSpans() bool {
	return t.spansPresent()
}

// spansPresent rescans the rows as well as checking the flag captured by
// AddRow, since spans may be declared on a cell after its row was attached.
func (t *Table) spansPresent() bool {
	if t.hasSpans {
		return true
	}
	for _, child := range t.children {
		if row, ok := child.(*TableRow); ok && row.spansCells() {
			return true
		}
	}
	return false
}

// Build validates row cell counts, then renders the table.
func (t *Table) Build(th *theme.Theme) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	return t.Element.Build(th)
}

func (t *Table) validate() error {
	// An unset column count means there is nothing to validate against.
	if !t.columnCountSet || t.spansPresent() {
		return nil
	}
	for _, child := range t.children {
		row, ok := child.(*TableRow)
		if !ok {
			continue
		}
		if count := row.CellCount(); count != t.columnCount {
			return &ValidationError{
				Tag:    t.tag,
				Reason: fmt.Sprintf("row has %d cells, expected %d", count, t.columnCount),
			}
		}
	}
	return nil
}

// TableRow is a <tr> element.
type TableRow struct {
	Element
}

// NewTableRow creates an empty row.
func NewTableRow() *TableRow {
	return &TableRow{Element: *NewElement("tr")}
}

// AddCell attaches a cell.
func (r *TableRow) AddCell(cell *TableCell) *TableRow {
	r.Element.AddChild(cell)
	return r
}

// CellCount returns the number of cells attached to the row.
func (r *TableRow) CellCount() int {
	count := 0
	for _, child := range r.children {
		if _, ok := child.(*TableCell); ok {
			count++
		}
	}
	return count
}

func (r *TableRow) spansCells() bool {
	for _, child := range r.children {
		if cell, ok := child.(*TableCell); ok && (cell.rowSpan > 1 || cell.colSpan > 1) {
			return true
		}
	}
	return false
}

// TableCell is a <td> or <th> element with optional row/column spans.
type TableCell struct {
	Element
	rowSpan int
	colSpan int
}

// NewTableCell creates a <td> cell.
func NewTableCell() *TableCell {
	return &TableCell{Element: *NewElement("td"), rowSpan: 1, colSpan: 1}
}

// NewHeaderCell creates a <th> cell.
func NewHeaderCell() *TableCell {
	return &TableCell{Element: *NewElement("th"), rowSpan: 1, colSpan: 1}
}

// AddChild appends a child node.
func (c *TableCell) AddChild(child Node) *TableCell {
	c.Element.AddChild(child)
	return c
}

// AddText appends an encoded text child.
func (c *TableCell) AddText(text string) *TableCell {
	c.Element.AddText(text)
	return c
}

// AddClass appends a class name.
func (c *TableCell) AddClass(name string) *TableCell {
	c.Element.AddClass(name)
	return c
}

// AddStyle sets a local CSS property override.
func (c *TableCell) AddStyle(property, value string) *TableCell {
	c.Element.AddStyle(property, value)
	return c
}

// AddAttribute sets a local HTML attribute override.
func (c *TableCell) AddAttribute(name, value string) *TableCell {
	c.Element.AddAttribute(name, value)
	return c
}

// SetRowSpan declares the cell's rowspan. Values above one are significant
// and disable column-count validation on the owning table.
func (c *TableCell) SetRowSpan(n int) *TableCell {
	if n > 1 {
		c.rowSpan = n
		c.Element.AddAttribute("rowspan", strconv.Itoa(n))
	}
	return c
}

// SetColSpan declares the cell's colspan.
func (c *TableCell) SetColSpan(n int) *TableCell {
	if n > 1 {
		c.colSpan = n
		c.Element.AddAttribute("colspan", strconv.Itoa(n))
	}
	return c
}

// RowSpan returns the declared rowspan (1 when unset).
func (c *TableCell) RowSpan() int {
	return c.rowSpan
}

// ColSpan returns the declared colspan (1 when unset).
func (c *TableCell) ColSpan() int {
	return c.colSpan
}
