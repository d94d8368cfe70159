package toybox

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exporter is an interface for persisting a generated image outside the
// session. Implementations can wrap local disk, cloud storage, or anything
// else that can hold a file; the session only hands over the data URL and a
// suggested base name.
type Exporter interface {
	// Save persists the image carried by dataURL and returns the location
	// it was written to. basename carries no extension; the implementation
	// derives one from the image's MIME type.
	Save(ctx context.Context, dataURL string, basename string) (string, error)
}

// FileExporter writes generated images into a directory on local disk.
type FileExporter struct {
	root string
}

var _ Exporter = (*FileExporter)(nil)

// NewFileExporter creates an exporter rooted at dir.
func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{root: dir}
}

// Save decodes the data URL and writes it as basename.<ext> under the root
// directory, creating the directory if needed.
func (e *FileExporter) Save(_ context.Context, dataURL string, basename string) (string, error) {
	data, mimeType, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.root, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.root, basename+"."+extensionFromMIME(mimeType))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// DecodeDataURL splits a "data:<mime>;base64,<payload>" string into the
// decoded bytes and the MIME type.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", errors.New("not a data URL")
	}

	meta, payload, ok := strings.Cut(dataURL[len("data:"):], ",")
	if !ok {
		return nil, "", errors.New("malformed data URL")
	}

	mimeType := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, mimeType, nil
}

// EncodeDataURL builds a renderable data URL from raw image bytes.
func EncodeDataURL(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// MIMETypeForPath guesses an image MIME type from a file extension.
func MIMETypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// extensionFromMIME returns a file extension for common image MIME types.
func extensionFromMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
