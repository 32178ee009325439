package geom

import (
	"fmt"
	"image"
	"math"
)

// A Point is an X, Y coordinate pair. Depending on context it is
// either a position or a size.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X, Y}.
func Pt[T Scalar](X, Y T) Point[T] {
	return Point[T]{X, Y}
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out Scalar, In Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{p.X / k, p.Y / k}
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// IsFinite reports whether neither coordinate is NaN or infinite.
// Integer points are always finite.
func (p Point[T]) IsFinite() bool {
	x, y := float64(p.X), float64(p.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0)
}

// Clamp returns p with each coordinate limited to the range given by
// the corresponding coordinates of lo and hi.
func (p Point[T]) Clamp(lo, hi Point[T]) Point[T] {
	return Point[T]{clamp(p.X, lo.X, hi.X), clamp(p.Y, lo.Y, hi.Y)}
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Min returns the componentwise minimum of points.
func Min[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		if p.X < r.X {
			r.X = p.X
		}
		if p.Y < r.Y {
			r.Y = p.Y
		}
	}
	return r
}

// Max returns the componentwise maximum of points.
func Max[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		if p.X > r.X {
			r.X = p.X
		}
		if p.Y > r.Y {
			r.Y = p.Y
		}
	}
	return r
}
