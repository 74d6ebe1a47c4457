package uploads_test

import (
	"mime/multipart"
	"strings"
	"testing"

	"katalog/internal/uploads"

	"github.com/stretchr/testify/assert"
)

func TestValidateFile(t *testing.T) {
	ok := []string{"photo.jpg", "photo.JPG", "photo.jpeg", "photo.png"}
	for _, name := range ok {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		assert.NoError(t, uploads.ValidateFile(file), name)
	}

	rejected := []string{"script.exe", "vector.svg", "archive.zip", "noext"}
	for _, name := range rejected {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		assert.Error(t, uploads.ValidateFile(file), name)
	}

	tooBig := &multipart.FileHeader{Filename: "photo.png", Size: uploads.MaxFileSize + 1}
	assert.Error(t, uploads.ValidateFile(tooBig))

	atLimit := &multipart.FileHeader{Filename: "photo.png", Size: uploads.MaxFileSize}
	assert.NoError(t, uploads.ValidateFile(atLimit))
}

func TestGenerateFilename(t *testing.T) {
	name := uploads.GenerateFilename("images", "My Photo.JPG")
	assert.True(t, strings.HasPrefix(name, "images-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, " ")

	// Names must be collision resistant across calls.
	other := uploads.GenerateFilename("images", "My Photo.JPG")
	assert.NotEqual(t, name, other)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "/uploads/images-1.jpg", uploads.PublicURL("images-1.jpg"))
}
