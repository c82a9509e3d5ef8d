package file2json

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// File format delimiters
const (
	// csvDelimiter is the delimiter for CSV files
	csvDelimiter = ','
	// tsvDelimiter is the delimiter for TSV files
	tsvDelimiter = '\t'
)

// textColumnName is the single column name used by the text reader. Each
// input line becomes one record {"line": "..."}.
const textColumnName = "line"

// header is the ordered list of column names for a table.
type header []string

// newHeader create new header.
func newHeader(h []string) header {
	return header(h)
}

// equal compare header.
func (h header) equal(h2 header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// cellKind discriminates the closed Cell variant.
type cellKind int

const (
	// cellNull represents a missing or empty cell
	cellNull cellKind = iota
	// cellText represents a text cell
	cellText
	// cellNumber represents a numeric cell
	cellNumber
	// cellBool represents a boolean cell
	cellBool
)

// Cell is one field value: text, number, boolean, or null. The numeric arm
// keeps the JSON lexeme so serialization is byte-stable.
type Cell struct {
	kind cellKind
	text string
	num  json.Number
	b    bool
}

// nullCell create a null cell.
func nullCell() Cell {
	return Cell{kind: cellNull}
}

// textCell create a text cell.
func textCell(s string) Cell {
	return Cell{kind: cellText, text: s}
}

// numberCell create a numeric cell from a JSON number lexeme.
func numberCell(n json.Number) Cell {
	return Cell{kind: cellNumber, num: n}
}

// boolCell create a boolean cell.
func boolCell(b bool) Cell {
	return Cell{kind: cellBool, b: b}
}

// IsNull reports whether the cell is null.
func (c Cell) IsNull() bool {
	return c.kind == cellNull
}

// String returns the cell value as text. Numbers return their lexeme,
// booleans "true"/"false", null the empty string.
func (c Cell) String() string {
	switch c.kind {
	case cellText:
		return c.text
	case cellNumber:
		return c.num.String()
	case cellBool:
		return strconv.FormatBool(c.b)
	default:
		return ""
	}
}

// appendJSON appends the cell's JSON encoding to buf.
func (c Cell) appendJSON(buf *bytes.Buffer) {
	switch c.kind {
	case cellText:
		buf.Write(encodeJSONString(c.text))
	case cellNumber:
		buf.WriteString(c.num.String())
	case cellBool:
		buf.WriteString(strconv.FormatBool(c.b))
	default:
		buf.WriteString("null")
	}
}

// equal compare cell.
func (c Cell) equal(c2 Cell) bool {
	return c.kind == c2.kind && c.text == c2.text && c.num == c2.num && c.b == c2.b
}

// Record is one row's worth of cells, aligned positionally with the table
// header.
type Record []Cell

// equal compare record.
func (r Record) equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if !v.equal(r2[i]) {
			return false
		}
	}
	return true
}

// columnType represents the inferred type of a column.
type columnType int

const (
	// columnTypeText represents a text column
	columnTypeText columnType = iota
	// columnTypeInteger represents an integer column
	columnTypeInteger
	// columnTypeReal represents a floating point column
	columnTypeReal
	// columnTypeBoolean represents a boolean column
	columnTypeBoolean
	// columnTypeDatetime represents a datetime column, kept as ISO-8601 text
	columnTypeDatetime
)

// String returns the column type name.
func (ct columnType) String() string {
	switch ct {
	case columnTypeInteger:
		return "integer"
	case columnTypeReal:
		return "real"
	case columnTypeBoolean:
		return "boolean"
	case columnTypeDatetime:
		return "datetime"
	default:
		return "text"
	}
}
