package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxProfilePictureSize is the largest accepted profile picture (5MB)
const MaxProfilePictureSize = 5 * 1024 * 1024

var (
	ErrPictureTooLarge = errors.New("File size must be less than 5MB")
	ErrPictureType     = errors.New("Only JPEG, PNG, and WebP images are allowed")
)

var allowedPictureTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
}

// ValidateProfilePicture checks size, extension and sniffed content of an upload.
// It returns the detected MIME type.
func ValidateProfilePicture(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxProfilePictureSize {
		return "", ErrPictureTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Read first 512 bytes to detect content type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file content: %w", err)
	}

	mimeType := http.DetectContentType(buffer[:n])
	exts, ok := allowedPictureTypes[mimeType]
	if !ok {
		return "", ErrPictureType
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range exts {
		if ext == allowed {
			return mimeType, nil
		}
	}
	return "", ErrPictureType
}
