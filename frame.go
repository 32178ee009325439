package wlframe

import (
	"log/slog"

	"deedles.dev/wlframe/geom"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Frame decorates a single content surface. It tracks the geometry
// and visual state of the chrome, turns pointer input on the chrome
// into shell requests, and reports what the application needs to do
// as Events.
//
// A Frame is not safe for concurrent use. All of its methods are
// expected to be called from the goroutine dispatching the display
// connection's events.
type Frame struct {
	shell Shell
	seat  Seat
	log   *slog.Logger

	config   Config
	content  geom.Point[int]
	layout   Layout
	renderer *Renderer

	title, appID string
	bounds       geom.Point[int]
	states       States

	configured bool
	needRedraw bool
	mapped     bool
	destroyed  bool

	inside  bool
	pointer geom.Point[float64]
	zone    Zone
	cursor  string
	buttons ButtonStates
	grab    Grab
	mode    pointerMode

	events []Event
}

// Option configures a Frame created by New.
type Option func(*Frame)

// WithConfig sets the decoration config. It is validated by New.
func WithConfig(config Config) Option {
	return func(f *Frame) {
		f.config = config
	}
}

// WithLogger sets the logger that the Frame reports to.
func WithLogger(log *slog.Logger) Option {
	return func(f *Frame) {
		f.log = log
	}
}

// New wraps a content surface of the given size for decoration.
// Requests are sent to shell, with interactive moves and resizes
// being sent for seat. The initial size limits are sent immediately.
func New(shell Shell, seat Seat, content geom.Point[int], opts ...Option) (*Frame, error) {
	f := Frame{
		shell:   shell,
		seat:    seat,
		log:     slog.Default(),
		config:  DefaultConfig(),
		content: content,
		mode:    modeIdle{},
	}
	for _, opt := range opts {
		opt(&f)
	}

	err := f.config.Validate()
	if err != nil {
		return nil, err
	}

	f.renderer = NewRenderer(f.config.LegacyDamage)
	f.relayout()
	f.sendSizeLimits()

	return &f, nil
}

func (f *Frame) checkAlive(op string) error {
	if f.destroyed {
		f.log.Error("request on destroyed frame", "op", op)
		return errors.Wrap(ErrDestroyed, op)
	}
	return nil
}

func (f *Frame) emit(ev Event) {
	f.events = append(f.events, ev)
}

// Events returns and clears the events that have been emitted since
// the previous call.
func (f *Frame) Events() []Event {
	events := f.events
	f.events = nil
	return events
}

// markDirty schedules a redraw. The application is only told about
// it once the frame has been configured.
func (f *Frame) markDirty() {
	if f.needRedraw {
		return
	}

	f.needRedraw = true
	if f.configured {
		f.emit(RefreshEvent{})
	}
}

// currentMode derives the chrome mode from the compositor's window
// states and the application's config.
func (f *Frame) currentMode() Mode {
	switch {
	case f.states.Has(StateFullscreen):
		return ModeFullscreen
	case !f.config.Enabled:
		return ModeDisabled
	default:
		return ModeNormal
	}
}

// relayout recomputes the geometry and layout after anything that
// could affect them changed. Leaving ModeNormal drops all pointer
// interaction with the chrome.
func (f *Frame) relayout() {
	prev := f.layout
	mode := f.currentMode()
	f.layout = NewLayout(Recompute(f.content, f.config, mode))

	if prev.Geometry.Decorated() && !f.layout.Geometry.Decorated() {
		f.log.Debug("chrome hidden", "mode", mode)
		f.buttons = ButtonStates{}
		f.grab = Grab{}
		f.zone = Zone{}
		f.mode = modeIdle{}
	}

	if f.layout != prev {
		f.markDirty()
	}
}

// sendSizeLimits tells the shell about the configured size limits.
// The chrome is counted whenever decorations are enabled, even while
// it is hidden by fullscreen, so the limits stay right once the
// window leaves fullscreen.
func (f *Frame) sendSizeLimits() {
	limit := func(size geom.Point[int]) geom.Point[int] {
		if f.config.Enabled {
			return f.config.AddBorders(size)
		}
		return size
	}

	min := limit(f.config.MinSize)
	f.shell.SetMinSize(min.X, min.Y)

	var max geom.Point[int]
	if f.config.MaxSize != nil {
		max = limit(*f.config.MaxSize)
	}
	f.shell.SetMaxSize(max.X, max.Y)

	f.log.Debug("size limits", "min", min, "max", max)
}

// HandleConfigure processes a configure from the compositor. size
// is the size of the whole window, or zero if the compositor leaves
// the size up to the application. The configure is acknowledged
// before HandleConfigure returns, whether or not anything changed.
func (f *Frame) HandleConfigure(serial uint32, size geom.Point[int], states States) error {
	err := f.checkAlive("configure")
	if err != nil {
		return err
	}

	f.log.Debug("configure", "serial", serial, "size", size, "states", states)

	f.states = states
	if (size.X > 0) && (size.Y > 0) {
		if f.currentMode() == ModeNormal {
			size = f.config.SubtractBorders(size)
		}
		f.content = size
	}

	first := !f.configured
	f.configured = true
	if first {
		f.needRedraw = false
	}

	decorated := f.layout.Geometry.Decorated()
	f.relayout()
	f.content = f.layout.Geometry.Content
	if first {
		f.markDirty()
	}
	if f.layout.Geometry.Decorated() != decorated {
		f.sendSizeLimits()
	}

	f.shell.AckConfigure(serial)

	f.emit(ConfigureEvent{
		Size:   f.layout.Geometry.Content,
		States: states,
	})
	return nil
}

// HandleConfigureBounds records the largest size that the compositor
// suggests the window should have.
func (f *Frame) HandleConfigureBounds(size geom.Point[int]) {
	f.bounds = size
}

// HandleClose processes the compositor asking for the window to be
// closed.
func (f *Frame) HandleClose() {
	f.emit(CloseEvent{})
}

// HandleGrabEnd processes the end of an interactive move or resize.
func (f *Frame) HandleGrabEnd() {
	f.endGrab()
}

// Resize updates the content size after the application resized its
// content surface. The size is clamped to the configured limits.
func (f *Frame) Resize(content geom.Point[int]) error {
	err := f.checkAlive("resize")
	if err != nil {
		return err
	}

	f.content = content
	f.relayout()
	f.content = f.layout.Geometry.Content
	return nil
}

// SetDecorated turns the chrome on or off.
func (f *Frame) SetDecorated(enabled bool) error {
	err := f.checkAlive("set decorated")
	if err != nil {
		return err
	}

	f.config.Enabled = enabled
	f.relayout()
	f.sendSizeLimits()
	return nil
}

// SetMinSize sets the minimum content size. A nil size removes the
// limit. A size that conflicts with the maximum size is rejected.
func (f *Frame) SetMinSize(size *geom.Point[int]) error {
	err := f.checkAlive("set min size")
	if err != nil {
		return err
	}

	config := f.config
	config.MinSize = geom.Pt(1, 1)
	if size != nil {
		config.MinSize = *size
	}
	return f.setConfig(config)
}

// SetMaxSize sets the maximum content size. A nil size removes the
// limit. A size that conflicts with the minimum size is rejected.
func (f *Frame) SetMaxSize(size *geom.Point[int]) error {
	err := f.checkAlive("set max size")
	if err != nil {
		return err
	}

	config := f.config
	config.MaxSize = nil
	if size != nil {
		max := *size
		config.MaxSize = &max
	}
	return f.setConfig(config)
}

func (f *Frame) setConfig(config Config) error {
	err := config.Validate()
	if err != nil {
		return err
	}

	f.config = config
	f.relayout()
	f.content = f.layout.Geometry.Content
	f.sendSizeLimits()
	return nil
}

// SetTitle sets the window title shown by the compositor.
func (f *Frame) SetTitle(title string) error {
	err := f.checkAlive("set title")
	if err != nil {
		return err
	}

	f.log.Debug("set title", "title", title)
	f.title = title
	f.shell.SetTitle(title)
	return nil
}

// SetAppID sets the application ID that the compositor uses to
// identify the application, usually the name of its desktop file.
func (f *Frame) SetAppID(id string) error {
	err := f.checkAlive("set app id")
	if err != nil {
		return err
	}

	f.log.Debug("set app id", "id", id)
	f.appID = id
	f.shell.SetAppID(id)
	return nil
}

// SetState asks the compositor to put the window into state. The
// change only takes effect once the compositor sends a matching
// configure.
func (f *Frame) SetState(state WindowState) error {
	err := f.checkAlive("set state")
	if err != nil {
		return err
	}

	f.log.Debug("set state", "state", state)
	switch state {
	case WindowRegular:
		f.shell.UnsetFullscreen()
		f.shell.UnsetMaximized()
	case WindowMinimized:
		f.shell.UnsetFullscreen()
		f.shell.SetMinimized()
	case WindowMaximized:
		f.shell.UnsetFullscreen()
		f.shell.SetMaximized()
	case WindowFullscreen:
		f.shell.SetFullscreen()
	default:
		return errors.Errorf("unknown window state %v", state)
	}
	return nil
}

// ToggleFullscreen asks the compositor to enter fullscreen if the
// window is not fullscreen and to leave it otherwise.
func (f *Frame) ToggleFullscreen() error {
	if f.states.Has(StateFullscreen) {
		return f.SetState(WindowRegular)
	}
	return f.SetState(WindowFullscreen)
}

// Refresh redraws the chrome onto s if anything changed since it was
// last drawn.
func (f *Frame) Refresh(s Surface) error {
	err := f.checkAlive("refresh")
	if err != nil {
		return err
	}
	if !f.needRedraw {
		return nil
	}
	return f.Draw(s)
}

// Draw brings the chrome on s up to date, committing only what
// changed. While chrome is hidden, s is unmapped instead. Drawing is
// not allowed until the first configure has been handled.
func (f *Frame) Draw(s Surface) error {
	err := f.checkAlive("draw")
	if err != nil {
		return err
	}
	if !f.configured {
		f.log.Error("draw before first configure")
		return errors.Wrap(ErrNotConfigured, "draw")
	}

	if !f.layout.Geometry.Decorated() {
		f.needRedraw = false
		if !f.mapped {
			return nil
		}
		f.mapped = false
		f.renderer.Invalidate()
		return errors.Wrap(s.Unmap(), "unmap")
	}

	buf, reused, err := s.Buffer(f.layout.Outer.Size())
	if err != nil {
		return errors.Wrap(err, "acquire buffer")
	}
	if !reused {
		f.renderer.Invalidate()
	}

	damage := f.render(buf)
	if (len(damage) == 0) && f.mapped {
		f.needRedraw = false
		return nil
	}

	switch {
	case f.config.LegacyDamage:
		s.DamageAll()
	default:
		for _, r := range damage {
			s.Damage(r)
		}
	}

	err = s.Commit()
	if err != nil {
		return errors.Wrap(err, "commit")
	}

	f.mapped = true
	f.needRedraw = false
	return nil
}

func (f *Frame) render(buf draw.Image) []geom.Rect[int] {
	damage := f.renderer.Render(buf, f.layout, f.buttons)
	f.log.Debug("render", "damage", len(damage))
	return damage
}

// Close ends the decoration, destroying the shell object. The Frame
// can not be used afterwards.
func (f *Frame) Close() error {
	err := f.checkAlive("close")
	if err != nil {
		return err
	}

	f.log.Debug("destroy")
	f.shell.Destroy()
	f.destroyed = true
	f.buttons = ButtonStates{}
	f.grab = Grab{}
	f.mode = modeIdle{}
	f.events = nil
	return nil
}

func (f *Frame) Config() Config {
	return f.config
}

func (f *Frame) Mode() Mode {
	return f.layout.Geometry.Mode
}

func (f *Frame) Geometry() Geometry {
	return f.layout.Geometry
}

func (f *Frame) Layout() Layout {
	return f.layout
}

func (f *Frame) ButtonStates() ButtonStates {
	return f.buttons
}

func (f *Frame) Grab() Grab {
	return f.grab
}

// Zone returns the zone that the pointer was last seen in.
func (f *Frame) Zone() Zone {
	return f.zone
}

func (f *Frame) States() States {
	return f.states
}

func (f *Frame) Maximized() bool {
	return f.states.Has(StateMaximized)
}

func (f *Frame) Activated() bool {
	return f.states.Has(StateActivated)
}

// Bounds returns the bounds last suggested by the compositor, or
// zero if it has not suggested any.
func (f *Frame) Bounds() geom.Point[int] {
	return f.bounds
}

func (f *Frame) Title() string {
	return f.title
}

func (f *Frame) AppID() string {
	return f.appID
}

// NeedsRedraw reports whether the chrome has changed since it was
// last drawn.
func (f *Frame) NeedsRedraw() bool {
	return f.needRedraw
}
