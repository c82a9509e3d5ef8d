package file2json

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Table represents one sheet or one delimited file as an ordered sequence of
// records sharing a header.
type Table struct {
	// name is the table name, derived from the file path or sheet name.
	name string
	// header is the ordered column names.
	header header
	// records is the table records.
	records []Record
}

// newTable create new table.
func newTable(name string, hdr header, records []Record) *Table {
	return &Table{
		name:    name,
		header:  hdr,
		records: records,
	}
}

// newTableFromRows builds a table from raw string rows, running column type
// inference and coercing each cell. Rows shorter than the header are padded
// with null; longer rows are truncated to the header width.
func newTableFromRows(name string, hdr header, rows [][]string) *Table {
	types := inferColumnTypes(hdr, rows)

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record, len(hdr))
		for i := range hdr {
			if i < len(row) {
				record[i] = coerceCell(row[i], types[i])
			} else {
				record[i] = nullCell()
			}
		}
		records = append(records, record)
	}
	return newTable(name, hdr, records)
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Header return the ordered column names.
func (t *Table) Header() []string {
	return t.header
}

// Records return table records.
func (t *Table) Records() []Record {
	return t.records
}

// equal compare table.
func (t *Table) equal(t2 *Table) bool {
	if t.name != t2.name {
		return false
	}
	if !t.header.equal(t2.header) {
		return false
	}
	if len(t.records) != len(t2.records) {
		return false
	}
	for i, record := range t.records {
		if !record.equal(t2.records[i]) {
			return false
		}
	}
	return true
}

// Workbook is an ordered mapping from sheet name to Table. Insertion order
// follows source sheet order.
type Workbook struct {
	sheets []*Table
}

// newWorkbook create new workbook.
func newWorkbook() *Workbook {
	return &Workbook{}
}

// addSheet appends a sheet table. The table name is the sheet name.
func (w *Workbook) addSheet(t *Table) {
	w.sheets = append(w.sheets, t)
}

// Sheets returns the sheet tables in source order.
func (w *Workbook) Sheets() []*Table {
	return w.sheets
}

// Result is the outcome of reading one file: a Table, a Workbook, or a raw
// JSON document carried through from a validating passthrough.
type Result struct {
	table    *Table
	workbook *Workbook
	raw      json.RawMessage
}

// newTableResult wraps a Table.
func newTableResult(t *Table) *Result {
	return &Result{table: t}
}

// newWorkbookResult wraps a Workbook.
func newWorkbookResult(w *Workbook) *Result {
	return &Result{workbook: w}
}

// newRawResult wraps an already-validated JSON document.
func newRawResult(doc []byte) *Result {
	return &Result{raw: json.RawMessage(doc)}
}

// Table returns the table arm of the result, if any.
func (r *Result) Table() (*Table, bool) {
	return r.table, r.table != nil
}

// Workbook returns the workbook arm of the result, if any.
func (r *Result) Workbook() (*Workbook, bool) {
	return r.workbook, r.workbook != nil
}

// RawDocument returns the raw JSON passthrough arm of the result, if any.
func (r *Result) RawDocument() (json.RawMessage, bool) {
	return r.raw, r.raw != nil
}

// tableFromFilePath creates a table name from a file path.
func tableFromFilePath(filePath string) string {
	fileName := removeCompressionExtension(filepath.Base(filePath))
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
