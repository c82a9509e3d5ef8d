// Package file2json converts tabular and semi-structured files into a
// normalized JSON representation.
//
// file2json reads Excel (XLSX) workbooks, CSV, TSV, Parquet, JSON, and plain
// text files and produces a deterministic JSON document, either returned as a
// string or written to a file. Parsing is delegated to format libraries
// (excelize for Excel, Apache Arrow for Parquet, encoding/csv for delimited
// text); file2json normalizes the results into a common table model.
//
// # Features
//
//   - File type detection by extension with content-sniffing fallback
//   - Multi-sheet Excel workbooks mapped to a JSON object keyed by sheet name
//   - Automatic handling of compressed input (gzip, bzip2, xz, zstandard)
//   - Per-column type inference so numeric, boolean, and datetime columns
//     survive the trip through stringly-typed source formats
//   - Deterministic output: identical input produces byte-identical JSON
//
// # Basic Usage
//
// Convert a file and get the JSON text back:
//
//	out, err := file2json.Convert("data.csv", file2json.NewConvertOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Or write it next to the input (data.csv becomes data.json):
//
//	path, err := file2json.ConvertToFile("data.csv", file2json.NewConvertOptions())
//
// # Output Shape
//
// A delimited file or a Parquet file becomes a JSON array of objects, one per
// row, with the first row (or the schema) supplying the keys:
//
//	[{"name": "Alice", "age": 25}, {"name": "Bob", "age": 30}]
//
// An Excel workbook becomes an object keyed by sheet name, each value being
// the array-of-objects form of that sheet. A single-sheet workbook is still
// wrapped this way, matching the sheet-keyed shape regardless of sheet count.
//
// A JSON input passes through validated and re-indented; if its top level is
// an array of flat objects it is normalized into the table model first. A
// text file becomes an array of single-column records, one per line:
//
//	[{"line": "first line"}, {"line": "second line"}]
//
// # Type Coercion
//
// Source cells arrive as strings from Excel, CSV, and TSV. Column types are
// inferred from the data: a column whose non-empty values all parse as
// integers serializes as JSON numbers, likewise for floating point and
// boolean columns. Recognized datetime columns stay ISO-8601 text since JSON
// has no date type. Empty cells serialize as null. A mixed column falls back
// to text. NaN and infinity lexemes are never classified numeric, so they
// cannot appear in the output as JSON numbers.
//
// # Errors
//
// Failures are distinguishable with errors.Is: ErrUnsupportedType,
// ErrFileAccess, ErrUnreadableFile, and ErrWrite. A failed conversion never
// leaves a partial output file; output is written to a temporary file and
// renamed into place.
package file2json
