package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobtrack-backend/pkg/security"
)

var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
)

func TestValidateImage(t *testing.T) {
	t.Run("Should accept a valid png", func(t *testing.T) {
		result := security.ValidateImage("avatar.png", pngHeader, "image/png")
		assert.True(t, result.Valid)
		assert.Equal(t, ".png", result.Extension)
	})

	t.Run("Should accept uppercase extensions", func(t *testing.T) {
		result := security.ValidateImage("avatar.JPG", jpegHeader, "image/jpeg")
		assert.True(t, result.Valid)
		assert.Equal(t, ".jpg", result.Extension)
	})

	t.Run("Should reject a disallowed extension", func(t *testing.T) {
		result := security.ValidateImage("report.pdf", []byte("%PDF-1.7"), "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "extension not allowed")
	})

	t.Run("Should reject mismatched content", func(t *testing.T) {
		// PNG bytes under a jpg name.
		result := security.ValidateImage("avatar.jpg", pngHeader, "image/jpeg")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match extension")
	})

	t.Run("Should reject a file with no extension", func(t *testing.T) {
		result := security.ValidateImage("avatar", pngHeader, "image/png")
		assert.False(t, result.Valid)
	})

	t.Run("Should reject an oversized file", func(t *testing.T) {
		big := make([]byte, security.MaxUploadBytes+1)
		copy(big, pngHeader)
		result := security.ValidateImage("avatar.png", big, "image/png")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "size limit")
	})

	t.Run("Should reject a disallowed MIME type", func(t *testing.T) {
		result := security.ValidateImage("avatar.png", pngHeader, "application/octet-stream")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "MIME type not allowed")
	})
}
