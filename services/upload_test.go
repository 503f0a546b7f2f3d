package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(10 * 1024 * 1024)
	require.NoError(t, err)
	return form.File["file"][0]
}

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	webpHeader = []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
)

func TestValidateProfilePicture(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		mime     string
		err      error
	}{
		{"png", "me.png", append(pngHeader, make([]byte, 100)...), "image/png", nil},
		{"jpeg upper-case ext", "me.JPEG", append(jpegHeader, make([]byte, 100)...), "image/jpeg", nil},
		{"webp", "me.webp", append(webpHeader, make([]byte, 100)...), "image/webp", nil},
		{"pdf content", "me.png", []byte("%PDF-1.4\n"), "", ErrPictureType},
		{"extension mismatch", "me.gif", append(pngHeader, make([]byte, 100)...), "", ErrPictureType},
		{"too large", "big.png", append(pngHeader, make([]byte, MaxProfilePictureSize)...), "", ErrPictureTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := ValidateProfilePicture(createMockFileHeader(t, tt.filename, tt.content))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mime, mime)
		})
	}
}
