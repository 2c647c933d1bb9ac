// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// Icon rasterizes IconVG data into an image suitable for the Image
// operation.
type Icon struct {
	Color color.RGBA
	src   []byte
	// Cached values.
	img      image.Image
	imgSize  int
	imgColor color.RGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data, Color: color.RGBA{A: 0xff}}, nil
}

// Image returns the icon rasterized at the given width in pixels,
// with height following the icon's aspect ratio.
func (ic *Icon) Image(sz int) image.Image {
	if sz == ic.imgSize && ic.Color == ic.imgColor {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = ic.Color
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = sz
	ic.imgColor = ic.Color
	return img
}
