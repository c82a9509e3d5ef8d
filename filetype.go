package file2json

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType represents a supported input file type. It is resolved once per
// conversion, either from an explicit override or by detection.
type FileType int

const (
	// FileTypeUnsupported is the zero value and means "not resolved yet".
	FileTypeUnsupported FileType = iota
	// FileTypeExcel represents spreadsheet workbooks (XLSX family).
	FileTypeExcel
	// FileTypeCSV represents comma-separated values.
	FileTypeCSV
	// FileTypeTSV represents tab-separated values.
	FileTypeTSV
	// FileTypeParquet represents Apache Parquet files.
	FileTypeParquet
	// FileTypeJSON represents JSON documents.
	FileTypeJSON
	// FileTypeText represents plain text files.
	FileTypeText
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extJSON is the JSON file extension
	extJSON = ".json"
	// extTXT is the plain text file extension
	extTXT = ".txt"
	// extText is the alternate plain text file extension
	extText = ".text"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// excelExtensions lists the spreadsheet extensions mapped to FileTypeExcel.
// Formats outside the XLSX family are detected here but may still fail to
// parse; the reader reports that as ErrUnreadableFile.
var excelExtensions = []string{".xlsx", ".xls", ".xlsm", ".xlsb", ".odf", ".ods", ".odt"}

// compressionExtensions lists the compression suffixes stripped before
// extension-based detection.
var compressionExtensions = []string{extGZ, extBZ2, extXZ, extZSTD}

// String returns the canonical type name, as accepted by ParseFileType.
func (ft FileType) String() string {
	switch ft {
	case FileTypeExcel:
		return "excel"
	case FileTypeCSV:
		return "csv"
	case FileTypeTSV:
		return "tsv"
	case FileTypeParquet:
		return "parquet"
	case FileTypeJSON:
		return "json"
	case FileTypeText:
		return "text"
	default:
		return "unsupported"
	}
}

// ParseFileType parses a type name as given to the CLI -t flag. Matching is
// case-insensitive; "xlsx" and "spreadsheet" are aliases for "excel", and
// "txt" for "text". An unrecognized name is ErrUnsupportedType.
func ParseFileType(name string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "excel", "xlsx", "spreadsheet":
		return FileTypeExcel, nil
	case "csv":
		return FileTypeCSV, nil
	case "tsv":
		return FileTypeTSV, nil
	case "parquet":
		return FileTypeParquet, nil
	case "json":
		return FileTypeJSON, nil
	case "text", "txt":
		return FileTypeText, nil
	default:
		return FileTypeUnsupported, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
	}
}

// removeCompressionExtension strips one trailing compression suffix from a
// file name if present.
func removeCompressionExtension(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// detectFileTypeByExtension maps a file path to its FileType using the static
// extension table, considering compressed files. It returns
// FileTypeUnsupported when the extension is missing or unrecognized.
func detectFileTypeByExtension(path string) FileType {
	basePath := removeCompressionExtension(path)
	ext := strings.ToLower(filepath.Ext(basePath))

	for _, excelExt := range excelExtensions {
		if ext == excelExt {
			return FileTypeExcel
		}
	}

	switch ext {
	case extCSV:
		return FileTypeCSV
	case extTSV:
		return FileTypeTSV
	case extParquet:
		return FileTypeParquet
	case extJSON:
		return FileTypeJSON
	case extTXT, extText:
		return FileTypeText
	default:
		return FileTypeUnsupported
	}
}
