package file2json

import "path/filepath"

// ConvertOptions configures a single conversion.
//
// Example:
//
//	opts := file2json.NewConvertOptions().
//		WithFileType(file2json.FileTypeCSV).
//		WithOutputPath("out.json")
//
//	path, err := file2json.ConvertToFile("data.txt", opts)
type ConvertOptions struct {
	// FileType forces the input type instead of auto-detection. The zero
	// value FileTypeUnsupported means "detect".
	FileType FileType
	// OutputPath overrides the default output path for ConvertToFile.
	OutputPath string
	// Compact disables pretty-printing.
	Compact bool
}

// NewConvertOptions creates default conversion options: auto-detected type,
// default output path, pretty output.
func NewConvertOptions() ConvertOptions {
	return ConvertOptions{}
}

// WithFileType forces the input file type, bypassing detection. The type is
// not validated against the actual bytes; a mismatch surfaces from the
// reader as ErrUnreadableFile.
func (o ConvertOptions) WithFileType(fileType FileType) ConvertOptions {
	o.FileType = fileType
	return o
}

// WithOutputPath sets the output path used by ConvertToFile.
func (o ConvertOptions) WithOutputPath(path string) ConvertOptions {
	o.OutputPath = path
	return o
}

// WithCompact switches off pretty-printing.
func (o ConvertOptions) WithCompact() ConvertOptions {
	o.Compact = true
	return o
}

// Read detects (or accepts) the file type and parses path into a Result.
func Read(path string, opts ConvertOptions) (*Result, error) {
	fileType := opts.FileType
	if fileType == FileTypeUnsupported {
		var err error
		fileType, err = DetectFileType(path)
		if err != nil {
			return nil, err
		}
	}
	return newFile(path, fileType).read()
}

// Convert reads path and returns the serialized JSON text.
func Convert(path string, opts ConvertOptions) (string, error) {
	result, err := Read(path, opts)
	if err != nil {
		return "", err
	}
	return marshalResult(result, opts.Compact)
}

// ConvertToFile reads path, serializes it, and writes the JSON to the output
// path (opts.OutputPath, or DefaultOutputPath(path) when unset). It returns
// the output path used. A failed conversion leaves no output file.
func ConvertToFile(path string, opts ConvertOptions) (string, error) {
	text, err := Convert(path, opts)
	if err != nil {
		return "", err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(path)
	}
	if err := writeFileAtomic(outputPath, []byte(text)); err != nil {
		return "", err
	}
	return outputPath, nil
}

// DefaultOutputPath returns the input path with its compression and format
// extensions replaced by ".json": "dir/data.csv.gz" becomes "dir/data.json".
func DefaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	name := removeCompressionExtension(filepath.Base(inputPath))
	name = name[:len(name)-len(filepath.Ext(name))]
	return filepath.Join(dir, name+extJSON)
}
