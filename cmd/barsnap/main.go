// SPDX-License-Identifier: Unlicense OR MIT

// Command barsnap renders a value bar to a PNG file without opening a
// window.
//
// Usage:
//
//	barsnap [-config bar.yaml] [-o bar.png] [-size 240x480] [-scale 2] [-value 40] [-pressed]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gioseek/seekbar/config"
	"github.com/gioseek/seekbar/geom"
	"github.com/gioseek/seekbar/internal/f32color"
	"github.com/gioseek/seekbar/render"
	"github.com/gioseek/seekbar/render/raster"
)

var (
	configFile = flag.String("config", "", "read widget options from the YAML `file`")
	output     = flag.String("o", "bar.png", "output `file`")
	sizeFlag   = flag.String("size", "240x480", "image size in pixels, `WxH`")
	scale      = flag.Float64("scale", 2, "pixels per dp")
	value      = flag.Int("value", -1, "value to show; the configured value if negative")
	pressed    = flag.Bool("pressed", false, "draw the bar while pressed")
	background = flag.String("bg", "#202124", "background color")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	size, err := parseSize(*sizeFlag)
	if err != nil {
		return err
	}
	bg, err := f32color.ParseHex(*background)
	if err != nil {
		return err
	}
	cfg := new(config.File)
	if *configFile != "" {
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	released, pressedImg, err := cfg.ValueBar.Thumbs()
	if err != nil {
		return err
	}
	style := cfg.ValueBar.Style(float32(*scale), released, pressedImg)

	inset := int(8 * *scale)
	edge := int(style.ThumbRadius)
	if released != nil || pressedImg != nil {
		edge = int(style.ThumbSize / 2)
	}
	pad := inset + edge
	g := geom.Compute(size, geom.Padding{Top: pad, Right: pad, Bottom: pad, Left: pad}, int(style.Thickness), cfg.ValueBar.Orientation.Value())

	r := cfg.ValueBar.Range()
	v := cfg.ValueBar.Value
	if *value >= 0 {
		v = *value
	}
	v = r.Clamp(v)

	c, err := raster.New(size, bg)
	if err != nil {
		return err
	}
	render.Draw(c, style, render.Frame{
		Geometry: g,
		Range:    r,
		Pos:      g.Position(r, v),
		Value:    v,
		Pressed:  *pressed,
	})

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("barsnap: %w", err)
	}
	return f.Close()
}

func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, errors.New("barsnap: size must be WxH")
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return image.Point{}, fmt.Errorf("barsnap: size: %w", err)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return image.Point{}, fmt.Errorf("barsnap: size: %w", err)
	}
	if x <= 0 || y <= 0 {
		return image.Point{}, fmt.Errorf("barsnap: invalid size %dx%d", x, y)
	}
	return image.Pt(x, y), nil
}
