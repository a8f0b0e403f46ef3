package cardrender

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFront_HasCardDimensions(t *testing.T) {
	img := RenderFront(Front{
		Title: "ArogyaNetra Health Card",
		Lines: []Line{{Label: "Name", Value: "Asha Rao"}, {Label: "Card ID", Value: "AN-123456-7890"}},
		QR:    image.NewGray(image.Rect(0, 0, 50, 50)),
	})
	assert.Equal(t, image.Rect(0, 0, FaceWidth, FaceHeight), img.Bounds())
}

func TestExport_StacksScaledFaces(t *testing.T) {
	front := RenderFront(Front{Title: "front"})
	back := RenderBack(Back{Title: "back", Lines: []Line{{Label: "Emergency", Value: "Ravi 9876543210"}}})

	data, err := Export(front, back)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, FaceWidth*ExportScale, img.Bounds().Dx())
	assert.Equal(t, (2*FaceHeight+FaceGap)*ExportScale, img.Bounds().Dy())
}

func TestExport_FrontAboveBack(t *testing.T) {
	front := RenderFront(Front{Title: "front"})
	back := RenderBack(Back{Title: "back"})

	data, err := Export(front, back)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// header band of both faces
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.InDelta(t, int(colorHeader.G), int(g>>8), 2)
	assert.Less(t, uint8(r>>8), uint8(0x20))
	assert.Less(t, uint8(b>>8), uint8(0x60))

	backTop := (FaceHeight + FaceGap) * ExportScale
	_, g, _, _ = img.At(2, backTop+2).RGBA()
	assert.InDelta(t, int(colorHeader.G), int(g>>8), 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
