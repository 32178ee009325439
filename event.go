package wlframe

import "deedles.dev/wlframe/geom"

// An Event is something that a Frame needs its application to act
// on. Events are collected with Frame.Events.
type Event interface {
	event()
}

// ConfigureEvent is emitted after a configure from the compositor
// has been processed. Size is the content size that the application
// should now draw at.
type ConfigureEvent struct {
	Size   geom.Point[int]
	States States
}

// CloseEvent is emitted when the user or the compositor asks for
// the window to be closed.
type CloseEvent struct{}

// RefreshEvent is emitted when the chrome needs to be redrawn with
// Frame.Refresh.
type RefreshEvent struct{}

// CursorEvent is emitted when the pointer moves into a zone that
// calls for a different cursor image.
type CursorEvent struct {
	Name string
}

// GrabEndEvent is emitted when a user-driven move or resize has
// finished.
type GrabEndEvent struct {
	Grab Grab
}

func (ConfigureEvent) event() {}
func (CloseEvent) event()     {}
func (RefreshEvent) event()   {}
func (CursorEvent) event()    {}
func (GrabEndEvent) event()   {}
