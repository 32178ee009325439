package wlframe

import (
	"fmt"
	"strings"

	"deedles.dev/wlframe/geom"
)

// Shell is the compositor's toplevel shell object for the decorated
// surface. Every method is a request that is sent without waiting
// for a reply.
type Shell interface {
	AckConfigure(serial uint32)

	// Move and Resize start an interactive move or resize driven by
	// the compositor. serial is that of the button press that
	// triggered it.
	Move(seat Seat, serial uint32)
	Resize(seat Seat, serial uint32, edges geom.Edges)

	SetMaximized()
	UnsetMaximized()
	SetMinimized()
	SetFullscreen()
	UnsetFullscreen()

	// SetMinSize and SetMaxSize take the size of the whole window. A
	// zero size removes the limit.
	SetMinSize(w, h int)
	SetMaxSize(w, h int)

	SetTitle(title string)
	SetAppID(id string)

	// Destroy destroys the shell object, unmapping the window.
	Destroy()
}

// Seat is the opaque seat handle that interactive move and resize
// requests are sent with.
type Seat any

// States is the set of window states sent with a configure.
type States uint32

const (
	StateMaximized States = 1 << iota
	StateFullscreen
	StateResizing
	StateActivated
)

var stateNames = [...]struct {
	s    States
	name string
}{
	{StateMaximized, "maximized"},
	{StateFullscreen, "fullscreen"},
	{StateResizing, "resizing"},
	{StateActivated, "activated"},
}

func (s States) Has(o States) bool {
	return s&o == o
}

func (s States) String() string {
	names := make([]string, 0, len(stateNames))
	for _, n := range stateNames {
		if s&n.s != 0 {
			names = append(names, n.name)
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// WindowState is a state that an application can ask the compositor
// to put its window into.
type WindowState int

const (
	WindowRegular WindowState = iota
	WindowMinimized
	WindowMaximized
	WindowFullscreen
)

func (s WindowState) String() string {
	switch s {
	case WindowRegular:
		return "regular"
	case WindowMinimized:
		return "minimized"
	case WindowMaximized:
		return "maximized"
	case WindowFullscreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("WindowState(%d)", int(s))
	}
}

// GrabKind identifies what a compositor-driven pointer grab is
// doing.
type GrabKind int

const (
	GrabNone GrabKind = iota
	GrabMove
	GrabResize
)

// Grab is an interactive move or resize that has been requested of
// the compositor and has not yet ended.
type Grab struct {
	Kind  GrabKind
	Edges geom.Edges
}

// Active reports whether g is an actual grab.
func (g Grab) Active() bool {
	return g.Kind != GrabNone
}

func (g Grab) String() string {
	switch g.Kind {
	case GrabNone:
		return "none"
	case GrabMove:
		return "move"
	case GrabResize:
		return "resize " + g.Edges.String()
	default:
		return "unknown"
	}
}
