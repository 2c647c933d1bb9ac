// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"math"

	"github.com/luapower/testui/io/pointer"
	"github.com/luapower/testui/io/router"
	"github.com/luapower/testui/layout"
	"github.com/luapower/testui/paint"
)

// DefaultSliderWidth is the width a slider requests before clamping.
const DefaultSliderWidth = 200

// Slider selects a value in [min, max], snapped to multiples of step.
//
// While the slider owns the pointer through the primary button, the
// value follows the pointer's x position mapped linearly over the
// slider rectangle. Through the secondary button, the value resets to
// the default, when one is given. It returns the resolved value and
// whether it changed this frame; a held pointer that lands on the
// current value reports no change.
func Slider(gtx *layout.Context, id, label string, value, min, max, step float64, def ...float64) (float64, bool) {
	r := gtx.Flow.Allocate(DefaultSliderWidth, 0)
	active, _, _ := gtx.Input.Activate(router.ID{Base: id}, r)
	changed := false
	if active {
		switch gtx.Input.ActiveButton() {
		case pointer.Primary:
			if pos, ok := gtx.Input.Position(); ok {
				v := min + (max-min)*float64((pos.X-r.X)/r.W)
				if step > 0 {
					v = math.Round(v/step) * step
				}
				if v < min {
					v = min
				} else if v > max {
					v = max
				}
				if v != value {
					value = v
					changed = true
				}
			}
		case pointer.Secondary:
			if len(def) > 0 && def[0] != value {
				value = def[0]
				changed = true
			}
		}
	}
	if changed {
		gtx.Invalidate()
	}
	var frac float32
	if max > min {
		frac = float32((value - min) / (max - min))
	}
	fill := r
	fill.W = r.W * frac
	gtx.Backend.DrawBox(fill, &Colors.Selected, nil)
	stroke := &Colors.Frame
	if active {
		stroke = &Colors.Hot
	}
	gtx.Backend.DrawBox(r, nil, stroke)
	text := r
	text.X += TextPad
	text.W -= 2 * TextPad
	gtx.Backend.DrawText(fmt.Sprintf("%s: %v", label, value), paint.Start, paint.Middle, text, false, Colors.Text)
	return value, changed
}
