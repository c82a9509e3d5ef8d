package file2json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// sniffLimit bounds how much of a file content sniffing reads.
const sniffLimit = 4096

// DetectFileType determines the FileType for path. Extension mapping is
// tried first; when the extension is missing or unrecognized, a bounded
// prefix of the content is sniffed. Sniffing classifies a complete JSON
// value as FileTypeJSON, then counts delimiters on the first line
// (comma-majority means CSV, tab-majority means TSV), and otherwise falls
// back to FileTypeText. Opening the file for sniffing can fail with
// ErrFileAccess.
func DetectFileType(path string) (FileType, error) {
	if ft := detectFileTypeByExtension(path); ft != FileTypeUnsupported {
		return ft, nil
	}
	return sniffFileType(path)
}

// sniffFileType infers the file type from a content sample. A bare
// compression extension (e.g. "data.gz") is honored: the prefix is sniffed
// after decompression, not on the compressed bytes.
func sniffFileType(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileTypeUnsupported, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer func() {
		_ = f.Close() // read-only handle
	}()

	var reader io.Reader = f
	if compression := detectCompressionType(path); compression != CompressionNone {
		decompressed, cleanup, err := compression.newReader(f)
		if err != nil {
			return FileTypeUnsupported, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
		}
		defer func() {
			_ = cleanup()
		}()
		reader = decompressed
	}

	prefix, err := io.ReadAll(io.LimitReader(reader, sniffLimit))
	if err != nil {
		return FileTypeUnsupported, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
	}

	return sniffContent(prefix), nil
}

// sniffContent classifies a content prefix. Exposed separately from
// sniffFileType so the heuristic is testable without touching the
// filesystem.
func sniffContent(prefix []byte) FileType {
	trimmed := bytes.TrimSpace(prefix)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return FileTypeJSON
	}

	firstLine := prefix
	if idx := bytes.IndexByte(prefix, '\n'); idx >= 0 {
		firstLine = prefix[:idx]
	}

	commas := bytes.Count(firstLine, []byte{','})
	tabs := bytes.Count(firstLine, []byte{'\t'})
	switch {
	case commas > tabs:
		return FileTypeCSV
	case tabs > commas:
		return FileTypeTSV
	default:
		return FileTypeText
	}
}
