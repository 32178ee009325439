package geom

// HSplit splits a rectangle into two rectangles arranged
// horizontally, the left one being w wide.
func HSplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	w = clamp(w, 0, r.Dx())
	left = r.Resize(Pt(w, r.Dy()))
	right = r.Resize(Pt(r.Dx()-w, r.Dy())).Add(Pt(w, 0))
	return left, right
}

// VSplit splits a rectangle into two rectangles arranged vertically,
// the top one being h tall.
func VSplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	h = clamp(h, 0, r.Dy())
	top = r.Resize(Pt(r.Dx(), h))
	bottom = r.Resize(Pt(r.Dx(), r.Dy()-h)).Add(Pt(0, h))
	return top, bottom
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Axes without a
// specified edge are centered.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Min.Y, inner.Max.Y = outer.Min.Y, outer.Min.Y+inner.Dy()
		if edges&EdgeBottom != 0 {
			inner.Max.Y = outer.Max.Y
		}
	case edges&EdgeBottom != 0:
		inner.Min.Y, inner.Max.Y = outer.Max.Y-inner.Dy(), outer.Max.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min.X, inner.Max.X = outer.Min.X, outer.Min.X+inner.Dx()
		if edges&EdgeRight != 0 {
			inner.Max.X = outer.Max.X
		}
	case edges&EdgeRight != 0:
		inner.Min.X, inner.Max.X = outer.Max.X-inner.Dx(), outer.Max.X
	}

	return inner
}

// PackRight lays out n rectangles of the given size inside of r from
// right to left, each separated from its neighbours and from the
// right edge of r by gap, and centered vertically. The first
// rectangle returned is the right-most.
func PackRight[T Scalar](r Rect[T], size Point[T], gap T, n int) []Rect[T] {
	rects := make([]Rect[T], 0, n)
	strip := r.Pad(0, 0, 0, gap)
	for i := 0; i < n; i++ {
		cell := Align(strip, Sized(size), EdgeRight)
		rects = append(rects, cell)
		strip.Max.X = cell.Min.X - gap
	}
	return rects
}
