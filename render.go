package wlframe

import (
	"image"
	"image/color"

	"deedles.dev/wlframe/geom"
	"golang.org/x/image/draw"
)

// Renderer paints chrome into a pixel buffer and keeps track of what
// it painted last so that it can report the minimal damage of each
// call.
type Renderer struct {
	fullRepaint bool

	drawn  bool
	layout Layout
	states ButtonStates
}

// NewRenderer returns a renderer. If fullRepaint is true, every
// change repaints all of the chrome and is reported as a single
// rectangle covering the whole surface, as needed by surfaces that
// can not be damaged partially.
func NewRenderer(fullRepaint bool) *Renderer {
	return &Renderer{fullRepaint: fullRepaint}
}

// Invalidate forgets the previously painted state, forcing the next
// call to Render to repaint everything. It must be called whenever
// the buffer no longer holds what was last rendered into it.
func (r *Renderer) Invalidate() {
	r.drawn = false
}

// Render brings the chrome in dst up to date with l and states and
// returns the rectangles that it changed. dst must cover l.Outer.
// Nothing is painted while chrome is hidden.
func (r *Renderer) Render(dst draw.Image, l Layout, states ButtonStates) []geom.Rect[int] {
	if !l.Geometry.Decorated() {
		r.drawn = false
		return nil
	}

	var damage []geom.Rect[int]
	switch {
	case !r.drawn || r.layout != l || r.fullRepaint && r.states != states:
		paintChrome(dst, l, states)
		damage = l.Chrome()

	default:
		for b, state := range states {
			if state == r.states[b] {
				continue
			}
			paintButton(dst, l.Buttons[b], Button(b), state)
			damage = append(damage, l.Buttons[b])
		}
	}

	r.drawn = true
	r.layout = l
	r.states = states

	if r.fullRepaint && len(damage) > 0 {
		return []geom.Rect[int]{l.Outer}
	}
	return damage
}

type filler interface {
	Fill(image.Rectangle, color.Color)
}

func fill(dst draw.Image, r geom.Rect[int], c color.Color) {
	if r.Empty() {
		return
	}
	if dst, ok := dst.(filler); ok {
		dst.Fill(r.ImageRect(), c)
		return
	}
	draw.Draw(dst, r.ImageRect(), image.NewUniform(c), image.Point{}, draw.Src)
}

func paintChrome(dst draw.Image, l Layout, states ButtonStates) {
	for _, r := range [...]geom.Rect[int]{l.Top, l.Bottom, l.Left, l.Right} {
		fill(dst, r, ColorBorder)
	}
	fill(dst, l.Title, ColorTitleBar)

	for b, r := range l.Buttons {
		paintButton(dst, r, Button(b), states[b])
	}
}

func paintButton(dst draw.Image, r geom.Rect[int], b Button, state ButtonState) {
	if r.Empty() {
		return
	}

	fill(dst, r, buttonColor(state))

	glyph := r.Inset(r.Dx() / 4)
	t := max(1, glyph.Dx()/6)
	switch b {
	case ButtonMinimize:
		_, bar := geom.VSplit(glyph, glyph.Dy()-t)
		fill(dst, bar, ColorGlyph)

	case ButtonMaximize:
		top, rest := geom.VSplit(glyph, t)
		rest, bottom := geom.VSplit(rest, rest.Dy()-t)
		left, rest := geom.HSplit(rest, t)
		_, right := geom.HSplit(rest, rest.Dx()-t)
		for _, side := range [...]geom.Rect[int]{top, bottom, left, right} {
			fill(dst, side, ColorGlyph)
		}

	case ButtonClose:
		for i := 0; i < glyph.Dx(); i++ {
			x0 := glyph.Min.X + i
			x1 := glyph.Max.X - 1 - i
			y := glyph.Min.Y + i*glyph.Dy()/glyph.Dx()
			fill(dst, geom.Rt(x0, y, x0+t, y+t).Intersect(glyph), ColorGlyph)
			fill(dst, geom.Rt(x1-t+1, y, x1+1, y+t).Intersect(glyph), ColorGlyph)
		}
	}
}
