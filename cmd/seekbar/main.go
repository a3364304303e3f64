// SPDX-License-Identifier: Unlicense OR MIT

// Command seekbar shows a value bar next to seek bars in all four
// directions.
package main

import (
	"flag"
	"image"
	"log"
	"os"
	"strconv"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/gioseek/seekbar/config"
	"github.com/gioseek/seekbar/internal/f32color"
	"github.com/gioseek/seekbar/widget"
	sbmaterial "github.com/gioseek/seekbar/widget/material"
)

var configFile = flag.String("config", "", "read widget options from the YAML `file`")

type (
	C = layout.Context
	D = layout.Dimensions
)

type UI struct {
	theme *material.Theme
	cfg   *config.File

	bar      *widget.ValueBar
	released image.Image
	pressed  image.Image

	seekBars [4]*widget.SeekBar

	reset     giowidget.Clickable
	resetIcon *giowidget.Icon
}

func main() {
	flag.Parse()
	ui, err := newUI(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("seekbar"), app.Size(unit.Dp(480), unit.Dp(640)))
		if err := ui.run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func newUI(path string) (*UI, error) {
	cfg := new(config.File)
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	released, pressed, err := cfg.ValueBar.Thumbs()
	if err != nil {
		return nil, err
	}
	icon, err := giowidget.NewIcon(icons.NavigationRefresh)
	if err != nil {
		return nil, err
	}

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette = material.Palette{
		Bg:         f32color.RGB(0x202124),
		Fg:         f32color.RGB(0xffffff),
		ContrastBg: f32color.RGB(0x00c853),
		ContrastFg: f32color.RGB(0xffffff),
	}

	ui := &UI{
		theme:     th,
		cfg:       cfg,
		bar:       cfg.ValueBar.NewBar(),
		released:  released,
		pressed:   pressed,
		resetIcon: icon,
	}
	ui.bar.OnDragStart = func() { log.Print("value bar: drag started") }
	ui.bar.OnDragEnd = func() { log.Printf("value bar: drag ended at %d", ui.bar.Value()) }
	ui.bar.OnValueChanged = func(v int) { log.Printf("value bar: %d", v) }

	for i := range ui.seekBars {
		d, _ := widget.DirectionOf(i)
		s := cfg.SeekBar.NewSeekBar()
		s.Direction = d
		log.Printf("seek bar %v: slider rotated %d degrees", d, d.Degrees())
		s.OnStartTracking = func() { log.Printf("seek bar %v: start tracking", d) }
		s.OnStopTracking = func() { log.Printf("seek bar %v: stop tracking", d) }
		s.OnProgressChanged = func(p int, fromUser bool) {
			log.Printf("seek bar %v: progress %d (user %v)", d, p, fromUser)
		}
		ui.seekBars[i] = s
	}
	return ui, nil
}

func (u *UI) run(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (u *UI) layout(gtx C) D {
	paint.Fill(gtx.Ops, u.theme.Bg)
	if u.reset.Clicked(gtx) {
		u.bar.Reset()
		for _, s := range u.seekBars {
			s.SetProgress(0)
		}
	}
	return layout.Flex{}.Layout(gtx,
		layout.Flexed(1, u.layoutControls),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Max.X = gtx.Dp(180)
			gtx.Constraints.Min = gtx.Constraints.Max
			s := sbmaterial.ValueBar(u.theme, u.bar)
			u.cfg.ValueBar.Apply(&s, u.released, u.pressed)
			return s.Layout(gtx)
		}),
	)
}

func (u *UI) layoutControls(gtx C) D {
	inset := layout.UniformInset(8)
	horizontal := func(s *widget.SeekBar) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Max.Y = gtx.Dp(32)
				gtx.Constraints.Min = gtx.Constraints.Max
				return sbmaterial.SeekBar(u.theme, s).Layout(gtx)
			})
		})
	}
	vertical := func(s *widget.SeekBar) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Max.X = gtx.Dp(32)
				gtx.Constraints.Min = gtx.Constraints.Max
				return sbmaterial.SeekBar(u.theme, s).Layout(gtx)
			})
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.IconButton(u.theme, &u.reset, u.resetIcon, "Reset").Layout),
					layout.Rigid(layout.Spacer{Width: 12}.Layout),
					layout.Rigid(func(gtx C) D {
						l := material.H4(u.theme, strconv.Itoa(u.bar.Value()))
						l.Color = u.theme.Fg
						return l.Layout(gtx)
					}),
				)
			})
		}),
		horizontal(u.seekBars[widget.ToRight]),
		horizontal(u.seekBars[widget.ToLeft]),
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				vertical(u.seekBars[widget.ToTop]),
				vertical(u.seekBars[widget.ToBottom]),
			)
		}),
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				l := material.Caption(u.theme, progressLine(u.seekBars))
				l.Color = f32color.MulAlpha(u.theme.Fg, 0xaa)
				return l.Layout(gtx)
			})
		}),
	)
}

func progressLine(bars [4]*widget.SeekBar) string {
	var s string
	for i, b := range bars {
		if i > 0 {
			s += "  "
		}
		s += b.Direction.String() + "=" + strconv.Itoa(b.Progress())
	}
	return s
}
