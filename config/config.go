// SPDX-License-Identifier: Unlicense OR MIT

/*
Package config loads the construction-time options of the value bar and
the seek bar from YAML.

Values that cannot be interpreted fall back to their defaults: an unknown
orientation or direction, a malformed color, or a non-positive size is
ignored. Only I/O and YAML syntax errors are reported.

A complete file:

	value_bar:
	  min: 0
	  max: 100
	  value: 20
	  thickness: 2       # dp
	  label_size: 14     # sp
	  label_margin: 30   # dp
	  bar_color: "#ffffff"
	  value_color: "#ffffff"
	  balloon_color: "#00ff00"
	  thumb_color: "#00ff00"
	  orientation: vertical   # or horizontal, 0, 1
	  thumb_released: thumb.png
	  thumb_pressed: thumb_pressed.png
	  balloon: true
	seek_bar:
	  direction: top     # top, right, bottom, left or 0..3
	  max: 100
*/
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gioseek/seekbar/geom"
	"github.com/gioseek/seekbar/internal/f32color"
	"github.com/gioseek/seekbar/widget"
)

// File is the root of a configuration file.
type File struct {
	ValueBar ValueBar `yaml:"value_bar"`
	SeekBar  SeekBar  `yaml:"seek_bar"`
}

// ValueBar configures a widget.ValueBar and its style.
type ValueBar struct {
	Min   int  `yaml:"min"`
	Max   *int `yaml:"max"`
	Value int  `yaml:"value"`

	Thickness   float32 `yaml:"thickness"`
	LabelSize   float32 `yaml:"label_size"`
	LabelMargin float32 `yaml:"label_margin"`

	BarColor     Color `yaml:"bar_color"`
	ValueColor   Color `yaml:"value_color"`
	BalloonColor Color `yaml:"balloon_color"`
	ThumbColor   Color `yaml:"thumb_color"`

	Orientation Orientation `yaml:"orientation"`

	ThumbReleased string `yaml:"thumb_released"`
	ThumbPressed  string `yaml:"thumb_pressed"`

	Balloon *bool `yaml:"balloon"`
}

// SeekBar configures a widget.SeekBar.
type SeekBar struct {
	Direction Direction `yaml:"direction"`
	Max       int       `yaml:"max"`
}

// Defaults of the options.
const (
	DefaultMax         = 100
	DefaultThickness   = 2
	DefaultLabelSize   = 14
	DefaultLabelMargin = 30
)

var (
	DefaultBarColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultValueColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultBalloonColor = color.NRGBA{G: 0xff, A: 0xff}
)

// Load reads and parses the file at path. Relative thumb image paths are
// resolved against the directory of path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for _, p := range []*string{&f.ValueBar.ThumbReleased, &f.ValueBar.ThumbPressed} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return f, nil
}

// Parse decodes a configuration. An empty document yields the defaults.
func Parse(r io.Reader) (*File, error) {
	f := new(File)
	if err := yaml.NewDecoder(r).Decode(f); err != nil && err != io.EOF {
		return nil, err
	}
	return f, nil
}

// Range returns the configured range, with reversed bounds swapped.
func (c ValueBar) Range() geom.Range {
	max := DefaultMax
	if c.Max != nil {
		max = *c.Max
	}
	return geom.NewRange(c.Min, max)
}

// NewBar returns the configured bar.
func (c ValueBar) NewBar() *widget.ValueBar {
	r := c.Range()
	return widget.NewValueBar(r.Min, r.Max, c.Value, c.Orientation.Value())
}

// Sizes returns the thickness, label size and label margin, with
// defaults for non-positive values.
func (c ValueBar) Sizes() (thickness, labelSize, labelMargin float32) {
	return positive(c.Thickness, DefaultThickness),
		positive(c.LabelSize, DefaultLabelSize),
		positive(c.LabelMargin, DefaultLabelMargin)
}

// BalloonEnabled reports whether the value balloon is shown. It is shown
// unless disabled explicitly.
func (c ValueBar) BalloonEnabled() bool {
	return c.Balloon == nil || *c.Balloon
}

// NewSeekBar returns the configured seek bar.
func (c SeekBar) NewSeekBar() *widget.SeekBar {
	s := widget.NewSeekBar(c.Direction.Value())
	if c.Max > 0 {
		s.Max = c.Max
	}
	return s
}

func positive(v, def float32) float32 {
	if v <= 0 {
		return def
	}
	return v
}

// Color is a color in hex notation. Malformed colors are left unset.
type Color struct {
	c     color.NRGBA
	valid bool
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return nil
	}
	col, err := f32color.ParseHex(s)
	if err != nil {
		return nil
	}
	*c = Color{c: col, valid: true}
	return nil
}

// Or returns the color, or def if it is unset.
func (c Color) Or(def color.NRGBA) color.NRGBA {
	if !c.valid {
		return def
	}
	return c.c
}

// Orientation accepts "vertical", "horizontal" or their indices.
type Orientation struct {
	o geom.Orientation
}

func (o *Orientation) UnmarshalYAML(n *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(n.Value)) {
	case "horizontal", "1":
		o.o = geom.Horizontal
	default:
		o.o = geom.Vertical
	}
	return nil
}

// Value returns the orientation, Vertical by default.
func (o Orientation) Value() geom.Orientation {
	return o.o
}

// Direction accepts "top", "right", "bottom", "left" or their indices.
type Direction struct {
	d   widget.Direction
	set bool
}

func (d *Direction) UnmarshalYAML(n *yaml.Node) error {
	v := strings.ToLower(strings.TrimSpace(n.Value))
	names := map[string]widget.Direction{
		"top":    widget.ToTop,
		"right":  widget.ToRight,
		"bottom": widget.ToBottom,
		"left":   widget.ToLeft,
	}
	if dir, ok := names[v]; ok {
		*d = Direction{d: dir, set: true}
		return nil
	}
	if i, err := strconv.Atoi(v); err == nil {
		if dir, ok := widget.DirectionOf(i); ok {
			*d = Direction{d: dir, set: true}
		}
	}
	return nil
}

// Value returns the direction, ToLeft by default.
func (d Direction) Value() widget.Direction {
	if !d.set {
		return widget.ToLeft
	}
	return d.d
}
