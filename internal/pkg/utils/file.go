package utils

import (
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ReadUploadedFile reads a multipart part into memory and sniffs its
// content type. Parts larger than maxBytes are reported with their
// declared size and no content.
func ReadUploadedFile(fileHeader *multipart.FileHeader, maxBytes int64) (*requests.UploadedFile, error) {
	uploaded := &requests.UploadedFile{
		FileName: filepath.Base(fileHeader.Filename),
		Size:     fileHeader.Size,
	}
	if fileHeader.Size > maxBytes {
		return uploaded, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, err
	}

	uploaded.Content = content
	uploaded.Size = int64(len(content))
	uploaded.ContentType = DetectContentType(content)
	return uploaded, nil
}

// DetectContentType sniffs the bytes and returns the bare media type.
func DetectContentType(content []byte) string {
	detected := mimetype.Detect(content).String()
	mediaType, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return detected
	}
	return mediaType
}

func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

func IsPDF(contentType string) bool {
	return contentType == constvars.MIMEApplicationPDF
}

func IsWordDocument(contentType string) bool {
	return contentType == constvars.MIMEApplicationMSWord || contentType == constvars.MIMEApplicationDOCX
}

// IsGovernmentIDType accepts PDF, JPEG and PNG.
func IsGovernmentIDType(contentType string) bool {
	return IsPDF(contentType) || contentType == constvars.MIMEImageJPEG || contentType == constvars.MIMEImagePNG
}

// MatchesFileTypeToggles reports whether contentType falls under one of
// the enabled toggles (pdf, image, doc).
func MatchesFileTypeToggles(contentType string, toggles []string) bool {
	for _, toggle := range toggles {
		switch toggle {
		case constvars.FileTypeTogglePDF:
			if IsPDF(contentType) {
				return true
			}
		case constvars.FileTypeToggleImage:
			if IsImage(contentType) {
				return true
			}
		case constvars.FileTypeToggleDoc:
			if IsWordDocument(contentType) {
				return true
			}
		}
	}
	return false
}
