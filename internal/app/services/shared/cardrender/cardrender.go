package cardrender

import (
	"arogyanetra-service/internal/pkg/exceptions"
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	FaceWidth  = 340
	FaceHeight = 214

	ExportScale = 2
	// FaceGap separates front and back in the exported image, before scaling.
	FaceGap = 8

	margin       = 12
	headerHeight = 28
	lineHeight   = 16
	qrEdge       = 104
	glyphWidth   = 7
)

var (
	colorBackground = color.RGBA{R: 0xf7, G: 0xfa, B: 0xfc, A: 0xff}
	colorHeader     = color.RGBA{R: 0x0b, G: 0x6e, B: 0x4f, A: 0xff}
	colorHeaderText = color.White
	colorLabel      = color.RGBA{R: 0x55, G: 0x62, B: 0x70, A: 0xff}
	colorText       = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	colorSeparator  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type Line struct {
	Label string
	Value string
}

type Front struct {
	Title string
	Lines []Line
	QR    image.Image
}

type Back struct {
	Title string
	Lines []Line
}

func RenderFront(front Front) image.Image {
	canvas := newFace(front.Title)
	textWidth := FaceWidth - 2*margin
	if front.QR != nil {
		textWidth -= qrEdge + margin
		qrRect := image.Rect(FaceWidth-margin-qrEdge, headerHeight+margin, FaceWidth-margin, headerHeight+margin+qrEdge)
		xdraw.NearestNeighbor.Scale(canvas, qrRect, front.QR, front.QR.Bounds(), xdraw.Over, nil)
	}
	drawLines(canvas, front.Lines, textWidth)
	return canvas
}

func RenderBack(back Back) image.Image {
	canvas := newFace(back.Title)
	drawLines(canvas, back.Lines, FaceWidth-2*margin)
	return canvas
}

// Export scales each face and stacks front over back in a single PNG.
func Export(front, back image.Image) ([]byte, error) {
	frontScaled := scale(front, ExportScale)
	backScaled := scale(back, ExportScale)

	width := frontScaled.Bounds().Dx()
	if backScaled.Bounds().Dx() > width {
		width = backScaled.Bounds().Dx()
	}
	gap := FaceGap * ExportScale
	height := frontScaled.Bounds().Dy() + gap + backScaled.Bounds().Dy()

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(colorSeparator), image.Point{}, draw.Src)
	draw.Draw(sheet, frontScaled.Bounds(), frontScaled, image.Point{}, draw.Over)
	backOrigin := image.Pt(0, frontScaled.Bounds().Dy()+gap)
	draw.Draw(sheet, backScaled.Bounds().Add(backOrigin), backScaled, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, sheet); err != nil {
		return nil, exceptions.ErrImageEncode(err, "card")
	}
	return buf.Bytes(), nil
}

func scale(src image.Image, factor int) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

func newFace(title string) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, FaceWidth, FaceHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, FaceWidth, headerHeight), image.NewUniform(colorHeader), image.Point{}, draw.Src)
	drawText(canvas, title, margin, 19, colorHeaderText, FaceWidth-2*margin)
	return canvas
}

func drawLines(canvas *image.RGBA, lines []Line, width int) {
	y := headerHeight + margin + 10
	for _, line := range lines {
		if y > FaceHeight-margin {
			return
		}
		if line.Label != "" {
			drawText(canvas, line.Label, margin, y, colorLabel, width)
			y += lineHeight - 3
		}
		drawText(canvas, line.Value, margin, y, colorText, width)
		y += lineHeight + 2
	}
}

func drawText(canvas *image.RGBA, text string, x, y int, c color.Color, width int) {
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(truncate(text, width/glyphWidth))
}

func truncate(text string, maxRunes int) string {
	runes := []rune(text)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return text
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}
