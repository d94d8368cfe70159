package tui

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/mhpenta/toybox"
)

// LoadImageFile reads a user-selected file into an image payload. This is
// the file-to-payload boundary: the session itself never touches the
// filesystem. The MIME type is sniffed from the content, falling back to
// the file extension when sniffing is inconclusive.
func LoadImageFile(path string) (toybox.InputImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return toybox.InputImage{}, fmt.Errorf("failed to read image file: %w", err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = toybox.MIMETypeForPath(path)
	}

	return toybox.InputImage{Data: data, MIMEType: mimeType}, nil
}
