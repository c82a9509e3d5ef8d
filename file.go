package file2json

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"
)

// file represents one input file with its resolved type.
type file struct {
	path     string
	fileType FileType
}

// newFile creates a new file with an already-resolved type.
func newFile(path string, fileType FileType) *file {
	return &file{
		path:     path,
		fileType: fileType,
	}
}

// compression returns the compression wrapping detected from the path.
func (f *file) compression() CompressionType {
	return detectCompressionType(f.path)
}

// openReader opens the file and returns a reader that handles decompression.
// The returned closer must be called on every exit path.
func (f *file) openReader() (io.Reader, func() error, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	reader, cleanup, err := f.compression().newReader(fh)
	if err != nil {
		_ = fh.Close() // Ignore close error during error handling
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}

	closer := func() error {
		cleanupErr := cleanup()
		if closeErr := fh.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return reader, closer, nil
}

// read parses the file according to its resolved type.
func (f *file) read() (*Result, error) {
	switch f.fileType {
	case FileTypeExcel:
		return f.parseExcel()
	case FileTypeCSV:
		return f.parseDelimitedFile(csvDelimiter)
	case FileTypeTSV:
		return f.parseDelimitedFile(tsvDelimiter)
	case FileTypeParquet:
		return f.parseParquet()
	case FileTypeJSON:
		return f.parseJSON()
	case FileTypeText:
		return f.parseText()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, f.path)
	}
}

// readAll drains the (possibly decompressing) reader and closes it.
func (f *file) readAll() ([]byte, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = closer()
	}()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}
	return content, nil
}

// parseDelimitedFile parses CSV or TSV files with the given delimiter.
// CSV follows RFC 4180 quoting. TSV parsing is lenient: stray quotes inside
// an unquoted field are preserved, but a field that begins with a quote is
// still parsed as a quoted field.
func (f *file) parseDelimitedFile(delimiter rune) (*Result, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = closer()
	}()

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	if delimiter == tsvDelimiter {
		csvReader.LazyQuotes = true
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file: %s", ErrUnreadableFile, f.path)
	}

	hdr := newHeader(rows[0])
	return newTableResult(newTableFromRows(tableFromFilePath(f.path), hdr, rows[1:])), nil
}

// parseExcel parses an Excel workbook. Every sheet becomes a table; the
// result is always a Workbook keyed by sheet name, even for a single sheet.
func (f *file) parseExcel() (*Result, error) {
	// excelize needs random access, so the whole file is buffered. This also
	// covers compressed input uniformly.
	data, err := f.readAll()
	if err != nil {
		return nil, err
	}

	xlsxFile, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("%w: no sheets found in Excel file: %s", ErrUnreadableFile, f.path)
	}

	workbook := newWorkbook()
	for _, sheetName := range sheetNames {
		rows, err := xlsxFile.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read sheet %s: %w", ErrUnreadableFile, sheetName, err)
		}
		fillMergedCells(xlsxFile, sheetName, rows)

		if len(rows) == 0 {
			workbook.addSheet(newTable(sheetName, newHeader(nil), nil))
			continue
		}
		workbook.addSheet(newTableFromRows(sheetName, newHeader(rows[0]), rows[1:]))
	}

	return newWorkbookResult(workbook), nil
}

// fillMergedCells propagates the anchor value of vertically merged ranges
// down through the covered rows, in place. Horizontal merges are left alone;
// out-of-bounds coordinates are skipped.
func fillMergedCells(xlsxFile *excelize.File, sheetName string, rows [][]string) {
	merges, err := xlsxFile.GetMergeCells(sheetName)
	if err != nil {
		return
	}

	for _, merge := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			continue
		}
		if startCol != endCol {
			continue
		}

		value := merge.GetCellValue()
		if value == "" {
			continue
		}
		for r := startRow; r <= endRow && r <= len(rows); r++ {
			row := rows[r-1]
			if startCol <= len(row) {
				row[startCol-1] = value
			}
		}
	}
}

// parseParquet parses a Parquet file into a single table. The schema
// supplies the header; values are stringified and run through the same
// column inference as delimited input.
func (f *file) parseParquet() (*Result, error) {
	// Parquet requires random access, so buffer the whole file
	data, err := f.readAll()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file: %s", ErrUnreadableFile, f.path)
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}
	defer func() {
		_ = pqReader.Close()
	}()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}

	arrowTable, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}
	defer arrowTable.Release()

	schema := arrowTable.Schema()
	hdr := make(header, schema.NumFields())
	for i, field := range schema.Fields() {
		hdr[i] = field.Name
	}

	tableReader := array.NewTableReader(arrowTable, 0)
	defer tableReader.Release()

	var rows [][]string
	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := int(batch.NumRows())
		for i := range numRows {
			row := make([]string, batch.NumCols())
			for j, col := range batch.Columns() {
				if col.IsNull(i) {
					row[j] = ""
				} else {
					row[j] = col.ValueStr(i)
				}
			}
			rows = append(rows, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, f.path, err)
	}

	return newTableResult(newTableFromRows(tableFromFilePath(f.path), hdr, rows)), nil
}

// parseJSON validates the document and passes it through. A top-level array
// of flat objects is normalized into the table model; anything else is
// carried as-is, preserving key order and number lexemes.
func (f *file) parseJSON() (*Result, error) {
	content, err := f.readAll()
	if err != nil {
		return nil, err
	}

	if !json.Valid(content) {
		return nil, fmt.Errorf("%w: invalid JSON: %s", ErrUnreadableFile, f.path)
	}

	if tbl, ok := tableFromJSONArray(tableFromFilePath(f.path), content); ok {
		return newTableResult(tbl), nil
	}
	return newRawResult(content), nil
}

// tableFromJSONArray normalizes a JSON array of objects into a Table. It
// reports false when the document has any other shape, including objects
// with nested values; the caller then keeps the raw document. Key order of
// first appearance defines the header; duplicate keys within one object are
// last-write-wins.
func tableFromJSONArray(name string, doc []byte) (*Table, bool) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, false
	}

	type pair struct {
		key  string
		cell Cell
	}

	var hdr header
	index := make(map[string]int)
	var objects [][]pair

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, false
		}

		var pairs []pair
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, false
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, false
			}

			valTok, err := dec.Token()
			if err != nil {
				return nil, false
			}

			var cell Cell
			switch v := valTok.(type) {
			case string:
				cell = textCell(v)
			case json.Number:
				cell = numberCell(v)
			case bool:
				cell = boolCell(v)
			case nil:
				cell = nullCell()
			default:
				// Nested array or object: keep the document as-is.
				return nil, false
			}

			if _, seen := index[key]; !seen {
				index[key] = len(hdr)
				hdr = append(hdr, key)
			}
			pairs = append(pairs, pair{key: key, cell: cell})
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, false
		}
		objects = append(objects, pairs)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, false
	}

	// An empty array carries no header information; pass it through.
	if len(objects) == 0 {
		return nil, false
	}

	records := make([]Record, 0, len(objects))
	for _, pairs := range objects {
		record := make(Record, len(hdr))
		for i := range record {
			record[i] = nullCell()
		}
		for _, p := range pairs {
			record[index[p.key]] = p.cell
		}
		records = append(records, record)
	}
	return newTable(name, hdr, records), true
}

// parseText reads the file as raw lines. Each line becomes one record in a
// single-column table; line endings are stripped, content is otherwise kept
// verbatim.
func (f *file) parseText() (*Result, error) {
	content, err := f.readAll()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1] // trailing newline
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		records = append(records, Record{textCell(strings.TrimSuffix(line, "\r"))})
	}

	tbl := newTable(tableFromFilePath(f.path), newHeader([]string{textColumnName}), records)
	return newTableResult(tbl), nil
}
