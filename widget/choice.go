// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/io/router"
	"github.com/luapower/testui/layout"
)

// Enum lays out one button per option inside a zero-margin group
// sharing the enclosing flow direction, with mutually exclusive
// selection: activating any option replaces value with that option's
// key. It returns the option activated this frame, or "", and the
// resolved value. At most one option can activate per frame, because
// at most one identity can claim the pointer.
func Enum(gtx *layout.Context, id string, options []string, value string, label func(string) string) (activated, newValue string) {
	gtx.Flow.Enter(gtx.Flow.Dir)
	gtx.Flow.Margin = f32.Point{}
	for _, opt := range options {
		clicked, _ := button(gtx, router.ID{Base: id, Option: opt}, caption(opt, label), value == opt)
		if clicked {
			activated = opt
			value = opt
		}
	}
	gtx.Flow.Leave()
	return activated, value
}

// Checklist is the multi-select form of Enum: activating an option
// toggles its membership in the key set. The caller's set is never
// mutated; a toggle builds a fresh set.
func Checklist(gtx *layout.Context, id string, options []string, value map[string]bool, label func(string) string) (activated string, newValue map[string]bool) {
	gtx.Flow.Enter(gtx.Flow.Dir)
	gtx.Flow.Margin = f32.Point{}
	for _, opt := range options {
		clicked, _ := button(gtx, router.ID{Base: id, Option: opt}, caption(opt, label), value[opt])
		if clicked {
			activated = opt
			value = toggle(value, opt)
		}
	}
	gtx.Flow.Leave()
	return activated, value
}

func caption(opt string, label func(string) string) string {
	if label != nil {
		return label(opt)
	}
	return opt
}

func toggle(set map[string]bool, key string) map[string]bool {
	next := make(map[string]bool, len(set)+1)
	for k, v := range set {
		if v {
			next[k] = true
		}
	}
	if next[key] {
		delete(next, key)
	} else {
		next[key] = true
	}
	return next
}
