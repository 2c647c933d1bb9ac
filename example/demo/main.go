// SPDX-License-Identifier: Unlicense OR MIT

// Demo exercises every control against the raylib driver. All widget
// values live in plain variables mutated once per frame; the engine
// retains nothing.
package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"github.com/luapower/testui/app"
	"github.com/luapower/testui/app/raylib"
	"github.com/luapower/testui/layout"
	"github.com/luapower/testui/widget"
)

func main() {
	drv := raylib.NewWindow(800, 600, "testui demo")
	defer drv.Close()

	home, err := widget.NewIcon(icons.ActionHome)
	if err != nil {
		log.Fatal(err)
	}
	home.Color = colornames.Steelblue

	var (
		paused  bool
		tool    = "move"
		layers  = map[string]bool{"grid": true}
		speed   = 5.0
		clicked int
	)

	w := app.NewWindow(drv, drv,
		app.Title("testui demo"),
		app.RepaintMode(app.OnDemand),
	)
	w.Run(func(gtx *layout.Context) error {
		widget.Checkerboard(gtx, 24)
		widget.Heading(gtx, "testui demo")
		widget.Image(gtx, home.Image(24), 1)

		gtx.Flow.Enter(layout.Right)
		on, sel := widget.Button(gtx, "pause", "Pause", paused)
		paused = sel
		if on {
			clicked++
		}
		widget.Label(gtx, fmt.Sprintf("clicks: %d", clicked))
		gtx.Flow.Leave()

		widget.Label(gtx, "Tool")
		_, tool = widget.Enum(gtx, "tool", []string{"move", "scale", "rotate"}, tool, func(s string) string {
			return strings.ToUpper(s[:1]) + s[1:]
		})

		widget.Label(gtx, "Layers")
		_, layers = widget.Checklist(gtx, "layers", []string{"grid", "wires", "labels"}, layers, nil)

		speed, _ = widget.Slider(gtx, "speed", "Speed", speed, 0, 10, 1, 5)

		if paused {
			prev := widget.Colors.Heading
			widget.Colors.Heading = color.NRGBA{R: 0xff, G: 0x80, B: 0x40, A: 0xff}
			widget.Heading(gtx, "paused")
			widget.Colors.Heading = prev
		}
		return nil
	})
}
