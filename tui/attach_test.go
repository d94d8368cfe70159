package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header, enough for content sniffing.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestLoadImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0644))

	img, err := LoadImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestLoadImageFileExtensionFallback(t *testing.T) {
	// Content that sniffs as text falls back to the extension.
	path := filepath.Join(t.TempDir(), "sketch.webp")
	require.NoError(t, os.WriteFile(path, []byte("not really an image"), 0644))

	img, err := LoadImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.MIMEType)
}

func TestLoadImageFileMissing(t *testing.T) {
	_, err := LoadImageFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read image file")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "a long...", truncate("a long prompt", 9))
}
