package v1

import (
	"bytes"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"go-jobtrack-backend/pkg/apperror"
	"go-jobtrack-backend/pkg/logger"
	"go-jobtrack-backend/pkg/security"
)

// maxImageDimension bounds stored logos/photos; larger images are downscaled.
const maxImageDimension = 1024

// saveUploadedImage validates, optionally downscales, and stores an uploaded
// image under uploadDir/subdir. Returns the public URL path of the new file.
func saveUploadedImage(file *multipart.FileHeader, uploadDir, subdir, publicBaseURL string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperror.BadRequest("Could not read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, security.MaxUploadBytes+1))
	if err != nil {
		return "", apperror.Internal(err)
	}

	result := security.ValidateImage(file.Filename, data, file.Header.Get("Content-Type"))
	if !result.Valid {
		return "", apperror.BadRequest(result.Error)
	}

	// GIF and WebP are stored as-is; JPEG/PNG get downscaled when oversized.
	if result.Extension == ".jpg" || result.Extension == ".jpeg" || result.Extension == ".png" {
		if resized, err := downscaleImage(data, result.Extension); err == nil {
			data = resized
		}
	}

	dir := filepath.Join(uploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperror.Internal(err)
	}

	filename := uuid.NewString() + result.Extension
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", apperror.Internal(err)
	}

	return publicBaseURL + "/static/" + subdir + "/" + filename, nil
}

// downscaleImage resizes images above maxImageDimension, preserving aspect
// ratio. Returns the original bytes untouched for small images.
func downscaleImage(data []byte, ext string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageDimension && h <= maxImageDimension {
		return data, nil
	}

	scale := float64(maxImageDimension) / float64(w)
	if h > w {
		scale = float64(maxImageDimension) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch ext {
	case ".png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// removeStoredFile deletes a previously stored upload given its public URL.
// Best-effort: a missing file is not an error worth surfacing.
func removeStoredFile(publicURL *string, uploadDir, publicBaseURL string) {
	if publicURL == nil || *publicURL == "" {
		return
	}
	rel := strings.TrimPrefix(*publicURL, publicBaseURL+"/static/")
	if rel == *publicURL || strings.Contains(rel, "..") {
		return
	}
	if err := os.Remove(filepath.Join(uploadDir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn("failed to remove replaced upload", "path", rel, "error", err)
	}
}
