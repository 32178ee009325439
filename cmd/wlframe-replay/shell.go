package main

import (
	"log/slog"

	"deedles.dev/wlframe"
	"deedles.dev/wlframe/geom"
)

// logShell is a wlframe.Shell that logs every request instead of
// sending it anywhere.
type logShell struct {
	log *slog.Logger
}

func (s logShell) request(name string, args ...any) {
	s.log.Debug("request", append([]any{"name", name}, args...)...)
}

func (s logShell) AckConfigure(serial uint32) {
	s.request("ack_configure", "serial", serial)
}

func (s logShell) Move(seat wlframe.Seat, serial uint32) {
	s.request("move", "seat", seat, "serial", serial)
}

func (s logShell) Resize(seat wlframe.Seat, serial uint32, edges geom.Edges) {
	s.request("resize", "seat", seat, "serial", serial, "edges", edges)
}

func (s logShell) SetMaximized()   { s.request("set_maximized") }
func (s logShell) UnsetMaximized() { s.request("unset_maximized") }
func (s logShell) SetMinimized()   { s.request("set_minimized") }
func (s logShell) SetFullscreen()  { s.request("set_fullscreen") }
func (s logShell) UnsetFullscreen() {
	s.request("unset_fullscreen")
}

func (s logShell) SetMinSize(w, h int) {
	s.request("set_min_size", "w", w, "h", h)
}

func (s logShell) SetMaxSize(w, h int) {
	s.request("set_max_size", "w", w, "h", h)
}

func (s logShell) SetTitle(title string) {
	s.request("set_title", "title", title)
}

func (s logShell) SetAppID(id string) {
	s.request("set_app_id", "id", id)
}

func (s logShell) Destroy() {
	s.request("destroy")
}
