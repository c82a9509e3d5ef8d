package file2json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// jsonIndent is the indent unit for pretty output.
const jsonIndent = "  "

// Serialize converts a conversion result to pretty-printed JSON text. The
// output is deterministic: column order, record order, and sheet order are
// preserved exactly, so identical input yields byte-identical output.
func Serialize(result *Result) (string, error) {
	return marshalResult(result, false)
}

// SerializeToFile serializes the result and writes it to path. The output is
// written to a temporary file and renamed into place, so a failure never
// leaves a partial file. I/O failures are ErrWrite.
func SerializeToFile(result *Result, path string) error {
	text, err := Serialize(result)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, []byte(text))
}

// marshalResult renders the result compactly, then re-indents unless compact
// output was requested. Going through a single compact form keeps the table
// writer simple and ordering explicit.
func marshalResult(result *Result, compact bool) (string, error) {
	var body []byte
	switch {
	case result.table != nil:
		var buf bytes.Buffer
		writeTable(&buf, result.table)
		body = buf.Bytes()
	case result.workbook != nil:
		var buf bytes.Buffer
		writeWorkbook(&buf, result.workbook)
		body = buf.Bytes()
	case result.raw != nil:
		var buf bytes.Buffer
		if err := json.Compact(&buf, result.raw); err != nil {
			return "", fmt.Errorf("file2json: serialize: %w", err)
		}
		body = buf.Bytes()
	default:
		return "null", nil
	}

	if compact {
		return string(body), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", jsonIndent); err != nil {
		return "", fmt.Errorf("file2json: serialize: %w", err)
	}
	return out.String(), nil
}

// writeTable emits a table as a compact JSON array of objects.
func writeTable(buf *bytes.Buffer, t *Table) {
	buf.WriteByte('[')
	for i, record := range t.records {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeRecord(buf, t.header, record)
	}
	buf.WriteByte(']')
}

// writeRecord emits one record as a compact JSON object. Duplicate header
// names are emitted positionally, so the key repeats in the object.
func writeRecord(buf *bytes.Buffer, hdr header, record Record) {
	buf.WriteByte('{')
	for i, name := range hdr {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeJSONString(name))
		buf.WriteByte(':')
		if i < len(record) {
			record[i].appendJSON(buf)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
}

// writeWorkbook emits a workbook as a compact JSON object keyed by sheet
// name, in source sheet order.
func writeWorkbook(buf *bytes.Buffer, w *Workbook) {
	buf.WriteByte('{')
	for i, sheet := range w.sheets {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeJSONString(sheet.name))
		buf.WriteByte(':')
		writeTable(buf, sheet)
	}
	buf.WriteByte('}')
}

// encodeJSONString encodes s as a JSON string without HTML escaping, so
// UTF-8 and characters like '<' pass through raw.
func encodeJSONString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	b := buf.Bytes()
	return b[:len(b)-1] // drop the trailing newline Encode adds
}

// jsonNumberFromInt normalizes an integer to its JSON lexeme.
func jsonNumberFromInt(n int64) json.Number {
	return json.Number(strconv.FormatInt(n, 10))
}

// jsonNumberFromFloat normalizes a finite float to its shortest JSON lexeme.
func jsonNumberFromFloat(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// writeFileAtomic writes data to path via a temp file in the same directory
// plus rename, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".file2json-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWrite, cause)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
