// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxThumbSize bounds the side of loaded thumb images, in pixels.
const MaxThumbSize = 256

// Thumbs loads the configured thumb images. A missing path yields a nil
// image, which the renderer replaces by a round thumb.
func (c ValueBar) Thumbs() (released, pressed image.Image, err error) {
	if c.ThumbReleased != "" {
		if released, err = LoadImage(c.ThumbReleased); err != nil {
			return nil, nil, err
		}
	}
	if c.ThumbPressed != "" {
		if pressed, err = LoadImage(c.ThumbPressed); err != nil {
			return nil, nil, err
		}
	}
	return released, pressed, nil
}

// LoadImage decodes the PNG, JPEG, BMP or WebP image at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes an image and scales it down to fit MaxThumbSize.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return fit(img, MaxThumbSize), nil
}

// fit scales img down, keeping its aspect ratio, until both sides are at
// most max.
func fit(img image.Image, max int) image.Image {
	sz := img.Bounds().Size()
	if sz.X <= max && sz.Y <= max {
		return img
	}
	w, h := max, max
	if sz.X > sz.Y {
		h = sz.Y * max / sz.X
	} else {
		w = sz.X * max / sz.Y
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
