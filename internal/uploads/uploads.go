// Package uploads defines the policy for product image uploads: which files
// are accepted and how stored files are named. Saving the bytes is left to
// the HTTP layer.
package uploads

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"katalog/internal/apperrors"
)

// MaxFileSize is the per-file upload limit in bytes.
const MaxFileSize = 5 * 1024 * 1024

// FieldName is the multipart field carrying image files.
const FieldName = "images"

// URLPrefix is the public path under which stored files are served.
const URLPrefix = "/uploads"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateFile checks the extension allow-list and the size limit.
func ValidateFile(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return apperrors.NewValidation("images", "Only JPEG, JPG and PNG images are allowed")
	}
	if file.Size > MaxFileSize {
		return apperrors.NewValidation("images", "Image files must be at most 5MB")
	}
	return nil
}

// GenerateFilename builds a collision-resistant stored name from the field
// name, the current time and the original extension.
func GenerateFilename(fieldName, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%d%s", fieldName, time.Now().UnixNano(), ext)
}

// PublicURL returns the path under which a stored file is served.
func PublicURL(storedName string) string {
	return URLPrefix + "/" + storedName
}
