package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Thumbnail placeholder
const (
	PlaceholderWidth  = 320
	PlaceholderHeight = 180
)

// PlaceholderGray fills the thumbnail area when no image is available
var PlaceholderGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// PlaceholderImage returns a plain gray 16:9 image
func PlaceholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: PlaceholderGray}, image.Point{}, draw.Src)
	return img
}

// DecodeThumbnail decodes a JPEG, PNG or WebP thumbnail
func DecodeThumbnail(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty %s thumbnail", format)
	}
	return img, nil
}
