package utils

import (
	"archive/zip"
	"arogyanetra-service/internal/pkg/constvars"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func wordDocument(t *testing.T) []byte {
	buf := &bytes.Buffer{}
	archive := zip.NewWriter(buf)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		entry, err := archive.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte("<xml/>"))
		require.NoError(t, err)
	}
	require.NoError(t, archive.Close())
	return buf.Bytes()
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, constvars.MIMEImagePNG, DetectContentType(pngHeader))
	assert.Equal(t, constvars.MIMEApplicationPDF, DetectContentType([]byte("%PDF-1.7\n")))
	assert.Equal(t, constvars.MIMEApplicationDOCX, DetectContentType(wordDocument(t)))
	assert.Equal(t, "text/plain", DetectContentType([]byte("hello")))
}

func TestDetectContentType_PlainZipIsNotWord(t *testing.T) {
	plainZip := &bytes.Buffer{}
	archive := zip.NewWriter(plainZip)
	entry, err := archive.Create("notes.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	contentType := DetectContentType(plainZip.Bytes())
	assert.Equal(t, "application/zip", contentType)
	assert.False(t, IsWordDocument(contentType))
}

func TestMatchesFileTypeToggles(t *testing.T) {
	all := []string{constvars.FileTypeTogglePDF, constvars.FileTypeToggleImage, constvars.FileTypeToggleDoc}

	assert.True(t, MatchesFileTypeToggles(constvars.MIMEImagePNG, all))
	assert.True(t, MatchesFileTypeToggles(constvars.MIMEApplicationDOCX, all))
	assert.False(t, MatchesFileTypeToggles("text/plain", all))
	assert.False(t, MatchesFileTypeToggles(constvars.MIMEImagePNG, []string{constvars.FileTypeTogglePDF}))
	assert.False(t, MatchesFileTypeToggles(constvars.MIMEApplicationPDF, nil))
}

func TestIsGovernmentIDType(t *testing.T) {
	assert.True(t, IsGovernmentIDType(constvars.MIMEApplicationPDF))
	assert.True(t, IsGovernmentIDType(constvars.MIMEImageJPEG))
	assert.True(t, IsGovernmentIDType(constvars.MIMEImagePNG))
	assert.False(t, IsGovernmentIDType("image/gif"))
}
