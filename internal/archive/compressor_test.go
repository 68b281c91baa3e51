package archive

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestZstdCompression_Roundtrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := []byte(`[{"id":"a","message":{"create_time":1700000000}}]`)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.NotEqual(t, original, compressed)
	assert.Equal(t, CompressionZstd, DetectCompression(compressed))

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_LargeData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := bytes.Repeat([]byte(`{"message":{"create_time":1700000000}},`), 20_000)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original)/2)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_DecompressInvalidData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("not valid zstd data"))
	assert.Error(t, err)
}

func TestGzipCompression_Roundtrip(t *testing.T) {
	c := NewGzipCompressor()
	original := []byte(`[{"id":"b"}]`)

	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Equal(t, CompressionGzip, DetectCompression(compressed))

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestGzipCompression_DecompressInvalidData(t *testing.T) {
	_, err := NewGzipCompressor().Decompress([]byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestNewCompressor(t *testing.T) {
	cases := map[string]string{
		"":              "",
		CompressionNone: "",
		CompressionZstd: ".zst",
		CompressionGzip: ".gz",
	}
	for name, ext := range cases {
		c, err := NewCompressor(name)
		require.NoError(t, err, name)
		assert.Equal(t, ext, c.Extension(), name)
		c.Close()
	}

	_, err := NewCompressor("lz4")
	assert.Error(t, err)
}

func TestNoCompression_PassThrough(t *testing.T) {
	c, err := NewCompressor(CompressionNone)
	require.NoError(t, err)
	data := []byte(`[]`)
	out, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, CompressionNone, DetectCompression(out))
}
