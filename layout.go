package wlframe

import "deedles.dev/wlframe/geom"

// Layout holds every chrome rectangle of a geometry, in surface
// coordinates. It is derived once per geometry and shared by
// rendering and hit-testing so that the two can never disagree
// about where a button is.
type Layout struct {
	Geometry Geometry

	Outer   geom.Rect[int]
	Content geom.Rect[int]
	Title   geom.Rect[int]

	Top, Bottom, Left, Right geom.Rect[int]

	// Buttons is indexed by Button. A button that does not fit in the
	// title bar has an empty rectangle.
	Buttons [numButtons]geom.Rect[int]
}

// NewLayout lays out the chrome for g.
func NewLayout(g Geometry) Layout {
	outer := geom.Sized(g.Outer())
	l := Layout{
		Geometry: g,
		Outer:    outer,
		Content:  geom.Sized(g.Content).Add(g.Offset()),
	}
	if !g.Decorated() {
		return l
	}

	b := g.Border
	l.Top, _ = geom.VSplit(outer, b)
	_, l.Bottom = geom.VSplit(outer, outer.Dy()-b)

	sides := outer.Pad(b, b, 0, 0)
	l.Left, _ = geom.HSplit(sides, b)
	_, l.Right = geom.HSplit(sides, sides.Dx()-b)

	l.Title, _ = geom.VSplit(outer.Inset(b), g.TitleBar)

	size := g.TitleBar - 2*ButtonPadding
	if size <= 0 {
		return l
	}
	// Packed right to left: close, maximize, minimize.
	packed := geom.PackRight(l.Title, geom.Pt(size, size), ButtonSpacing, numButtons)
	for i, r := range packed {
		if !r.In(l.Title) {
			// Buttons that do not fit whole are left out.
			continue
		}
		l.Buttons[numButtons-1-i] = r
	}

	return l
}

// Chrome returns the non-overlapping rectangles that together cover
// all of the chrome: the band above the content holding the top
// border and the title bar, the two sides, and the bottom border.
func (l Layout) Chrome() []geom.Rect[int] {
	if !l.Geometry.Decorated() {
		return nil
	}

	top := geom.Rt(l.Outer.Min.X, l.Outer.Min.Y, l.Outer.Max.X, l.Content.Min.Y)
	left := geom.Rt(l.Outer.Min.X, l.Content.Min.Y, l.Content.Min.X, l.Content.Max.Y)
	right := geom.Rt(l.Content.Max.X, l.Content.Min.Y, l.Outer.Max.X, l.Content.Max.Y)
	bottom := geom.Rt(l.Outer.Min.X, l.Content.Max.Y, l.Outer.Max.X, l.Outer.Max.Y)

	chrome := make([]geom.Rect[int], 0, 4)
	for _, r := range [...]geom.Rect[int]{top, left, right, bottom} {
		if !r.Empty() {
			chrome = append(chrome, r)
		}
	}
	return chrome
}
