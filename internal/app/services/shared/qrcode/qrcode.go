package qrcode

import (
	"arogyanetra-service/internal/pkg/exceptions"
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 128
	MaxSize     = 1024
)

const imageKind = "qr"

// ClampSize keeps a requested edge length within the renderable range.
// Zero or negative means the default.
func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}

// Encode renders payload as a PNG QR code with medium error correction.
func Encode(payload string, size int) ([]byte, error) {
	png, err := goqrcode.Encode(payload, goqrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, exceptions.ErrImageEncode(err, imageKind)
	}
	return png, nil
}

func Image(payload string, size int) (image.Image, error) {
	code, err := goqrcode.New(payload, goqrcode.Medium)
	if err != nil {
		return nil, exceptions.ErrImageEncode(err, imageKind)
	}
	return code.Image(ClampSize(size)), nil
}

// Decode reads the first QR code found in a PNG or JPEG camera frame.
func Decode(frame []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return "", exceptions.ErrImageDecode(err)
	}

	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", exceptions.ErrImageDecode(err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := zxingqr.NewQRCodeReader().Decode(bitmap, hints)
	if err != nil {
		return "", exceptions.ErrImageDecode(err)
	}
	return result.GetText(), nil
}
