package wlframe

import (
	"fmt"

	"deedles.dev/wlframe/geom"
)

// Button is one of the title bar buttons.
type Button int

const (
	ButtonMinimize Button = iota
	ButtonMaximize
	ButtonClose

	numButtons = 3
)

func (b Button) String() string {
	switch b {
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	case ButtonClose:
		return "close"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// ButtonState is the visual state of a single button.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonIdle:
		return "idle"
	case ButtonHovered:
		return "hovered"
	case ButtonPressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// ButtonStates holds the state of every button, indexed by Button.
type ButtonStates [numButtons]ButtonState

// Pressed returns the button that is currently pressed, if any.
func (s ButtonStates) Pressed() (Button, bool) {
	for b, state := range s {
		if state == ButtonPressed {
			return Button(b), true
		}
	}
	return 0, false
}

// ZoneKind tags a Zone.
type ZoneKind int

const (
	ZoneContent ZoneKind = iota
	ZoneTitleBar
	ZoneButton
	ZoneResize
)

// Zone is the semantic region of the decorated surface under a
// point. Button is only meaningful for ZoneButton and Edges only for
// ZoneResize, in which case it is never empty.
type Zone struct {
	Kind   ZoneKind
	Button Button
	Edges  geom.Edges
}

func (z Zone) String() string {
	switch z.Kind {
	case ZoneContent:
		return "content"
	case ZoneTitleBar:
		return "title bar"
	case ZoneButton:
		return "button " + z.Button.String()
	case ZoneResize:
		return "resize " + z.Edges.String()
	default:
		return "unknown"
	}
}

// Cursor returns the name of the cursor image that should be shown
// while the pointer is in z.
func (z Zone) Cursor() string {
	if z.Kind != ZoneResize {
		return "left_ptr"
	}

	switch z.Edges {
	case geom.EdgeTop:
		return "top_side"
	case geom.EdgeBottom:
		return "bottom_side"
	case geom.EdgeLeft:
		return "left_side"
	case geom.EdgeRight:
		return "right_side"
	case geom.EdgeTopLeft:
		return "top_left_corner"
	case geom.EdgeTopRight:
		return "top_right_corner"
	case geom.EdgeBottomLeft:
		return "bottom_left_corner"
	case geom.EdgeBottomRight:
		return "bottom_right_corner"
	default:
		return "left_ptr"
	}
}

// Classify returns the zone of l that contains p. It never fails:
// when chrome is hidden, or p is not a finite point inside of the
// surface, the result is ZoneContent.
//
// A band is inclusive of its inner boundary, so a point exactly
// Border pixels from the left is still on the left edge, while one
// exactly Border pixels from the right is not yet on the right
// edge. Bands are combined, which makes corners win over single
// edges, and buttons are checked before the rest of the title bar.
func Classify(p geom.Point[float64], l Layout) Zone {
	g := l.Geometry
	if !g.Decorated() || !p.IsFinite() {
		return Zone{Kind: ZoneContent}
	}

	size := geom.PConv[float64](l.Outer.Size())
	if p.X < 0 || p.Y < 0 || p.X > size.X || p.Y > size.Y {
		return Zone{Kind: ZoneContent}
	}

	if g.Border > 0 {
		b := float64(g.Border)

		var edges geom.Edges
		if p.Y <= b {
			edges |= geom.EdgeTop
		}
		if p.Y > size.Y-b {
			edges |= geom.EdgeBottom
		}
		if p.X <= b {
			edges |= geom.EdgeLeft
		}
		if p.X > size.X-b {
			edges |= geom.EdgeRight
		}
		if edges != geom.EdgeNone {
			return Zone{Kind: ZoneResize, Edges: edges}
		}
	}

	for b, r := range l.Buttons {
		if p.In(geom.RConv[float64](r)) {
			return Zone{Kind: ZoneButton, Button: Button(b)}
		}
	}

	if (g.TitleBar > 0) && (p.Y <= float64(g.Border+g.TitleBar)) {
		return Zone{Kind: ZoneTitleBar}
	}
	return Zone{Kind: ZoneContent}
}
