package domain

import (
	"path/filepath"
	"strings"
)

// UploadedFile is a user-supplied file for lab analysis or diagnosis.
type UploadedFile struct {
	// Name is the original file name, extension included.
	Name string

	// Content is the raw file bytes.
	Content []byte
}

// Extension returns the lower-cased file extension without the dot.
func (f *UploadedFile) Extension() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Name)), ".")
}

// MIMEType returns the MIME type inferred from the extension.
// Only the handful of types the extractors support are mapped.
func (f *UploadedFile) MIMEType() string {
	switch f.Extension() {
	case "pdf":
		return "application/pdf"
	case "csv":
		return "text/csv"
	case "txt":
		return "text/plain"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// IsImage reports whether the upload is an image format.
func (f *UploadedFile) IsImage() bool {
	switch f.Extension() {
	case "jpg", "jpeg", "png":
		return true
	default:
		return false
	}
}
