// Package fimg provides image types laid out the way a compositor
// expects shared-memory buffers to be.
package fimg

import (
	"image"
	"image/color"

	"deedles.dev/wlframe/internal/shm"
)

// BGRA is an in-memory image in wl_shm's ARGB8888 format on a
// little-endian host: each pixel is stored as the bytes B, G, R, A
// with premultiplied alpha.
type BGRA struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func NewBGRA(r image.Rectangle) *BGRA {
	return &BGRA{
		Pix:    make([]byte, shm.FormatARGB8888.Stride(r.Dx())*r.Dy()),
		Stride: shm.FormatARGB8888.Stride(r.Dx()),
		Rect:   r,
	}
}

// Format returns the wl_shm format that the pixel data can be shared
// as. A fully opaque image is reported as XRGB8888 so that the
// compositor can skip blending it.
func (p *BGRA) Format() shm.Format {
	if p.Opaque() {
		return shm.FormatXRGB8888
	}
	return shm.FormatARGB8888
}

func (p *BGRA) PixOffset(x, y int) int {
	return ((y - p.Rect.Min.Y) * p.Stride) + (x-p.Rect.Min.X)*4
}

func (p *BGRA) Bounds() image.Rectangle {
	return p.Rect
}

func (p *BGRA) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *BGRA) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *BGRA) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}

	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i], A: p.Pix[i+3]}
}

func (p *BGRA) Set(x, y int, c color.Color) {
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (p *BGRA) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}

	i := p.PixOffset(x, y)
	p.Pix[i] = c.B
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.R
	p.Pix[i+3] = c.A
}

// Fill sets every pixel of r that lies within p to c.
func (p *BGRA) Fill(r image.Rectangle, c color.Color) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}

	px := color.RGBAModel.Convert(c).(color.RGBA)
	row := make([]byte, 4*r.Dx())
	for i := 0; i < len(row); i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = px.B, px.G, px.R, px.A
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := p.PixOffset(r.Min.X, y)
		copy(p.Pix[i:i+len(row)], row)
	}
}

// Opaque reports whether every pixel is fully opaque.
func (p *BGRA) Opaque() bool {
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		i := p.PixOffset(p.Rect.Min.X, y)
		for x := 0; x < p.Rect.Dx(); x++ {
			if p.Pix[i+4*x+3] != 0xFF {
				return false
			}
		}
	}
	return true
}
