package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"
)

const (
	MaxUploadSize = 5 << 20
	MaxWidth      = 1600

	// decoded size limits; a small compressed file can still expand to gigabytes
	MaxDimension = 10000
	MaxPixels    = 40_000_000

	ContentTypeWebP = "image/webp"
)

var AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image too large")
)

type Image struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Detect sniffs the content type and rejects anything outside AllowedTypes.
func Detect(data []byte) (string, error) {
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}

	mt := mimetype.Detect(data)
	for _, allowed := range AllowedTypes {
		if mt.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
}

// ToWebP re-encodes an uploaded photo as WebP, shrinking it to MaxWidth.
func ToWebP(data []byte) (Image, error) {
	ct, err := Detect(data)
	if err != nil {
		return Image{}, err
	}

	cfg, err := decodeConfig(ct, data)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension ||
		cfg.Width*cfg.Height > MaxPixels {
		return Image{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	src, err := decode(ct, data)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	img := downscale(src, MaxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return Image{}, fmt.Errorf("encode webp: %w", err)
	}

	b := img.Bounds()
	return Image{
		Data:        buf.Bytes(),
		ContentType: ContentTypeWebP,
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

// decodeConfig reads only the header.
func decodeConfig(contentType string, data []byte) (image.Config, error) {
	r := bytes.NewReader(data)
	switch contentType {
	case "image/jpeg":
		return jpeg.DecodeConfig(r)
	case "image/png":
		return png.DecodeConfig(r)
	case "image/webp":
		return xwebp.DecodeConfig(r)
	}
	return image.Config{}, ErrUnsupportedType
}

func decode(contentType string, data []byte) (image.Image, error) {
	r := bytes.NewReader(data)
	switch contentType {
	case "image/jpeg":
		return jpeg.Decode(r)
	case "image/png":
		return png.Decode(r)
	case "image/webp":
		return xwebp.Decode(r)
	}
	return nil, ErrUnsupportedType
}

func downscale(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
