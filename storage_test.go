package toybox

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	data, mimeType, err := DecodeDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeDataURLErrors(t *testing.T) {
	_, _, err := DecodeDataURL("https://example.com/image.png")
	assert.Error(t, err, "plain URLs are not data URLs")

	_, _, err = DecodeDataURL("data:image/png;base64")
	assert.Error(t, err, "missing payload separator")

	_, _, err = DecodeDataURL("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	url := EncodeDataURL(payload, "image/png")

	data, mimeType, err := DecodeDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/png", mimeType)
}

func TestFileExporterSave(t *testing.T) {
	dir := t.TempDir()
	exporter := NewFileExporter(filepath.Join(dir, "nested"))

	path, err := exporter.Save(context.Background(), "data:image/png;base64,aGVsbG8=", "toybox-123")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "toybox-123.png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), written)
}

func TestFileExporterRejectsBadDataURL(t *testing.T) {
	exporter := NewFileExporter(t.TempDir())
	_, err := exporter.Save(context.Background(), "not a data url", "toybox-123")
	assert.Error(t, err)
}

func TestMIMETypeForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.png", "image/png"},
		{"photo.PNG", "image/png"},
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.webp", "image/webp"},
		{"photo.gif", "image/gif"},
		{"photo.bin", "image/png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MIMETypeForPath(tt.path), tt.path)
	}
}

func TestExtensionFromMIME(t *testing.T) {
	assert.Equal(t, "png", extensionFromMIME("image/png"))
	assert.Equal(t, "jpg", extensionFromMIME("image/jpeg"))
	assert.Equal(t, "webp", extensionFromMIME("image/webp"))
	assert.Equal(t, "gif", extensionFromMIME("image/gif"))
	assert.Equal(t, "png", extensionFromMIME("application/octet-stream"))
}
