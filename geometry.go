package wlframe

import "deedles.dev/wlframe/geom"

// Mode determines whether chrome is shown at all.
type Mode int

const (
	// ModeNormal shows the border and title bar.
	ModeNormal Mode = iota

	// ModeFullscreen hides all chrome while the compositor shows the
	// window fullscreen.
	ModeFullscreen

	// ModeDisabled hides all chrome because the application turned
	// decorations off.
	ModeDisabled
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFullscreen:
		return "fullscreen"
	case ModeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Geometry is the size of a decorated surface. Border and TitleBar
// are zero whenever chrome is hidden.
type Geometry struct {
	Content  geom.Point[int]
	Border   int
	TitleBar int
	Mode     Mode
}

// Recompute derives the geometry for a content size. In ModeNormal
// the size is clamped to the config's limits. Otherwise it is passed
// through untouched, as the decoration never resizes a fullscreen or
// undecorated surface itself.
func Recompute(content geom.Point[int], config Config, mode Mode) Geometry {
	if mode == ModeNormal && !config.Enabled {
		mode = ModeDisabled
	}

	g := Geometry{
		Content: content,
		Mode:    mode,
	}
	if mode == ModeNormal {
		g.Content = config.Clamp(content)
		g.Border = config.Border
		g.TitleBar = config.TitleBar
	}
	return g
}

// Decorated reports whether chrome is shown.
func (g Geometry) Decorated() bool {
	return g.Mode == ModeNormal
}

// Offset is the position of the content relative to the top-left
// corner of the decorated surface.
func (g Geometry) Offset() geom.Point[int] {
	return geom.Pt(g.Border, g.Border+g.TitleBar)
}

// Outer is the size of the whole decorated surface.
func (g Geometry) Outer() geom.Point[int] {
	return g.Content.Add(geom.Pt(2*g.Border, 2*g.Border+g.TitleBar))
}
