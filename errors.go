package file2json

import "errors"

// Error kinds returned by the package. All errors returned from the public
// API wrap exactly one of these sentinels so callers can match with errors.Is.
var (
	// ErrUnsupportedType indicates the file type could not be determined or
	// an explicit type name was not recognized.
	ErrUnsupportedType = errors.New("file2json: unsupported file type")

	// ErrFileAccess indicates the input path is missing or unreadable.
	ErrFileAccess = errors.New("file2json: file access failed")

	// ErrUnreadableFile indicates the file was opened but its content did not
	// parse as the detected or forced type.
	ErrUnreadableFile = errors.New("file2json: unreadable file")

	// ErrWrite indicates serialization succeeded but writing the output
	// file failed.
	ErrWrite = errors.New("file2json: write failed")
)
