package geom

import "image"

// Rect is a half-open rectangle: it holds the points with
// Min.X <= X < Max.X and Min.Y <= Y < Max.Y. Methods return
// well-formed rectangles, Min <= Max on both axes, when given
// well-formed ones.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt returns the rectangle with the corners (x0, y0) and (x1, y1),
// swapping coordinates as needed to make it well-formed.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{
		Min: Pt(min(x0, x1), min(y0, y1)),
		Max: Pt(max(x0, x1), max(y0, y1)),
	}
}

// Sized returns a rectangle of the given size with its minimum at
// the origin.
func Sized[T Scalar](size Point[T]) Rect[T] {
	return Rect[T]{Max: size}
}

// RConv converts a Rect[In] to a Rect[Out] with possible loss of precision.
func RConv[Out Scalar, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{
		Min: PConv[Out](r.Min),
		Max: PConv[Out](r.Max),
	}
}

func (r Rect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

func (r Rect[T]) Size() Point[T] {
	return r.Max.Sub(r.Min)
}

// Add translates r by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Inset returns r shrunk by n on every side. An axis too short to
// shrink by that much collapses to its midpoint.
func (r Rect[T]) Inset(n T) Rect[T] {
	shrink := func(lo, hi T) (T, T) {
		if hi-lo < 2*n {
			mid := (lo + hi) / 2
			return mid, mid
		}
		return lo + n, hi - n
	}

	r.Min.X, r.Max.X = shrink(r.Min.X, r.Max.X)
	r.Min.Y, r.Max.Y = shrink(r.Min.Y, r.Max.Y)
	return r
}

// Pad shrinks each side of r by the given amounts. A side pushed
// past its opposite stops there.
func (r Rect[T]) Pad(top, bottom, left, right T) Rect[T] {
	r = r.Canon()
	r.Min = r.Min.Add(Pt(left, top))
	r.Max = Max(r.Max.Sub(Pt(right, bottom)), r.Min)
	return r
}

// Intersect returns the largest rectangle contained by both r and
// s, or the zero rectangle if they do not overlap.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	i := Rect[T]{Min: Max(r.Min, s.Min), Max: Min(r.Max, s.Max)}
	if i.Empty() {
		return Rect[T]{}
	}
	return i
}

func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Overlaps reports whether r and s have a non-empty intersection.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return !r.Intersect(s).Empty()
}

// In reports whether every point in r is in s.
func (r Rect[T]) In(s Rect[T]) bool {
	if r.Empty() {
		return true
	}
	return (s.Min.X <= r.Min.X) && (r.Max.X <= s.Max.X) &&
		(s.Min.Y <= r.Min.Y) && (r.Max.Y <= s.Max.Y)
}

// Canon returns the well-formed version of r.
func (r Rect[T]) Canon() Rect[T] {
	return Rt(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return r.Min.Add(r.Max).Div(2)
}

// CenterAt returns a rectangle the size of r centered on p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	return Sized(size).Add(p.Sub(size.Div(2)))
}

// Resize returns a rectangle of the given size with the same minimum
// as r.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return Sized(size).Add(r.Min)
}

func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rectangle{
		Min: r.Min.ImagePoint(),
		Max: r.Max.ImagePoint(),
	}
}
