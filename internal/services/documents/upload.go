package documents

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMediaType resolves the media type of an uploaded file. The declared
// Content-Type wins unless it is missing or the generic octet-stream type, in
// which case the content is sniffed.
func DetectMediaType(declared string, content []byte) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return strings.ToLower(mt)
		}
	}

	detected := mimetype.Detect(content)
	if detected.Is("text/plain") {
		return "text/plain"
	}
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return detected.String()
	}
	return mt
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
