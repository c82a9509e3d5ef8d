package file2json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompressionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected CompressionType
	}{
		{name: "no compression", path: "test.csv", expected: CompressionNone},
		{name: "gzip", path: "test.csv.gz", expected: CompressionGZ},
		{name: "bzip2", path: "test.csv.bz2", expected: CompressionBZ2},
		{name: "xz", path: "test.csv.xz", expected: CompressionXZ},
		{name: "zstd", path: "test.csv.zst", expected: CompressionZSTD},
		{name: "uppercase suffix", path: "test.CSV.GZ", expected: CompressionGZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := detectCompressionType(tt.path); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCompressionTypeExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compression CompressionType
		expected    string
	}{
		{CompressionNone, ""},
		{CompressionGZ, ".gz"},
		{CompressionBZ2, ".bz2"},
		{CompressionXZ, ".xz"},
		{CompressionZSTD, ".zst"},
	}

	for _, tt := range tests {
		if got := tt.compression.Extension(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestReadZstdCompressedInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.csv.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte("a,b\n1,2\n"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	out, err := Convert(path, NewConvertOptions().WithCompact())
	require.NoError(t, err)
	assert.Equal(t, `[{"a":1,"b":2}]`, out)
}

func TestConvertBareCompressionExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte("a,b\n1,2\n"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	out, err := Convert(path, NewConvertOptions().WithCompact())
	require.NoError(t, err)
	assert.Equal(t, `[{"a":1,"b":2}]`, out)
}

func TestReadCorruptCompressedInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.csv.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip data"), 0o600))

	_, err := Convert(path, NewConvertOptions())
	assert.ErrorIs(t, err, ErrUnreadableFile)
}
