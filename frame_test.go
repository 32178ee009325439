package wlframe

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"testing"

	"deedles.dev/wlframe/geom"
	"deedles.dev/wlframe/internal/shm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

type request struct {
	name string
	args []any
}

type recordingShell struct {
	requests []request
}

func (s *recordingShell) record(name string, args ...any) {
	s.requests = append(s.requests, request{name: name, args: args})
}

func (s *recordingShell) AckConfigure(serial uint32) { s.record("ack_configure", serial) }
func (s *recordingShell) Move(seat Seat, serial uint32) {
	s.record("move", seat, serial)
}
func (s *recordingShell) Resize(seat Seat, serial uint32, edges geom.Edges) {
	s.record("resize", seat, serial, edges)
}
func (s *recordingShell) SetMaximized()         { s.record("set_maximized") }
func (s *recordingShell) UnsetMaximized()       { s.record("unset_maximized") }
func (s *recordingShell) SetMinimized()         { s.record("set_minimized") }
func (s *recordingShell) SetFullscreen()        { s.record("set_fullscreen") }
func (s *recordingShell) UnsetFullscreen()      { s.record("unset_fullscreen") }
func (s *recordingShell) SetMinSize(w, h int)   { s.record("set_min_size", w, h) }
func (s *recordingShell) SetMaxSize(w, h int)   { s.record("set_max_size", w, h) }
func (s *recordingShell) SetTitle(title string) { s.record("set_title", title) }
func (s *recordingShell) SetAppID(id string)    { s.record("set_app_id", id) }
func (s *recordingShell) Destroy()              { s.record("destroy") }

func (s *recordingShell) named(name string) []request {
	var found []request
	for _, r := range s.requests {
		if r.name == name {
			found = append(found, r)
		}
	}
	return found
}

func (s *recordingShell) reset() {
	s.requests = nil
}

func eventsOf[T Event](events []Event) []T {
	var found []T
	for _, ev := range events {
		if ev, ok := ev.(T); ok {
			found = append(found, ev)
		}
	}
	return found
}

func newTestFrame(t *testing.T, content geom.Point[int], config Config) (*Frame, *recordingShell) {
	t.Helper()

	shell := &recordingShell{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f, err := New(shell, "seat0", content, WithConfig(config), WithLogger(log))
	require.NoError(t, err)
	return f, shell
}

// configured returns a frame that has handled its first configure
// with no suggested size.
func configured(t *testing.T, content geom.Point[int], config Config) (*Frame, *recordingShell) {
	t.Helper()

	f, shell := newTestFrame(t, content, config)
	require.NoError(t, f.HandleConfigure(1, geom.Point[int]{}, StateActivated))
	f.Events()
	shell.reset()
	return f, shell
}

func click(t *testing.T, f *Frame, serial uint32, p geom.Point[float64]) {
	t.Helper()

	require.NoError(t, f.PointerMotion(p))
	require.NoError(t, f.PointerButton(serial, BtnLeft, true))
	require.NoError(t, f.PointerButton(serial+1, BtnLeft, false))
}

func TestNewInvalidConfig(t *testing.T) {
	config := testConfig()
	config.Border = -1

	_, err := New(&recordingShell{}, nil, geom.Pt(10, 10), WithConfig(config))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewSendsLimits(t *testing.T) {
	_, shell := newTestFrame(t, geom.Pt(300, 200), testConfig())
	assert.Equal(t, []request{
		{"set_min_size", []any{208, 132}},
		{"set_max_size", []any{0, 0}},
	}, shell.requests)
}

func TestTitleBarMove(t *testing.T) {
	f, shell := newTestFrame(t, geom.Pt(300, 200), testConfig())
	shell.reset()

	require.NoError(t, f.HandleConfigure(7, geom.Pt(50, 50), 0))
	assert.Equal(t, geom.Pt(200, 100), f.Geometry().Content)
	assert.Equal(t, geom.Pt(208, 132), f.Geometry().Outer())
	assert.Equal(t, []request{{"ack_configure", []any{uint32(7)}}}, shell.requests)

	require.NoError(t, f.PointerEnter(10, geom.Pt(204.0, 10.0)))
	assert.Equal(t, Zone{Kind: ZoneTitleBar}, f.Zone())

	require.NoError(t, f.PointerButton(11, BtnLeft, true))
	assert.Equal(t, []request{{"move", []any{"seat0", uint32(11)}}}, shell.named("move"))
	assert.Equal(t, Grab{Kind: GrabMove}, f.Grab())

	require.NoError(t, f.PointerMotion(geom.Pt(150.0, 12.0)))
	require.NoError(t, f.PointerButton(12, BtnLeft, true))
	assert.Len(t, shell.named("move"), 1)
}

func TestEdgeResize(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(3, geom.Pt(2.0, 2.0)))
	assert.Equal(t, Zone{Kind: ZoneResize, Edges: geom.EdgeTopLeft}, f.Zone())
	assert.Equal(t, "top_left_corner", f.Cursor())

	require.NoError(t, f.PointerButton(4, BtnLeft, true))
	assert.Equal(t, []request{{"resize", []any{"seat0", uint32(4), geom.EdgeTopLeft}}}, shell.requests)
	assert.Equal(t, Grab{Kind: GrabResize, Edges: geom.EdgeTopLeft}, f.Grab())

	f.Events()
	require.NoError(t, f.PointerButton(5, BtnLeft, false))
	assert.False(t, f.Grab().Active())
	assert.Equal(t, []GrabEndEvent{{Grab: Grab{Kind: GrabResize, Edges: geom.EdgeTopLeft}}}, eventsOf[GrabEndEvent](f.Events()))
}

func TestCloseButton(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())
	closeBtn := geom.Pt(190.0, 16.0)

	require.NoError(t, f.PointerEnter(1, closeBtn))
	assert.Equal(t, ButtonHovered, f.ButtonStates()[ButtonClose])

	require.NoError(t, f.PointerButton(2, BtnLeft, true))
	assert.Equal(t, ButtonPressed, f.ButtonStates()[ButtonClose])
	assert.Empty(t, eventsOf[CloseEvent](f.Events()))

	require.NoError(t, f.PointerMotion(geom.Pt(100.0, 60.0)))
	assert.Equal(t, ButtonPressed, f.ButtonStates()[ButtonClose])
	require.NoError(t, f.PointerButton(3, BtnLeft, false))
	assert.Equal(t, ButtonStates{}, f.ButtonStates())
	assert.Empty(t, eventsOf[CloseEvent](f.Events()))

	click(t, f, 4, closeBtn)
	assert.Len(t, eventsOf[CloseEvent](f.Events()), 1)
	assert.Equal(t, ButtonHovered, f.ButtonStates()[ButtonClose])
	assert.Empty(t, shell.named("destroy"))
}

func TestMaximizeButton(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())
	maximize := geom.Pt(170.0, 16.0)

	require.NoError(t, f.PointerEnter(1, maximize))
	click(t, f, 2, maximize)
	assert.Len(t, shell.named("set_maximized"), 1)
	assert.False(t, f.Maximized())

	require.NoError(t, f.HandleConfigure(2, geom.Point[int]{}, StateMaximized|StateActivated))
	assert.True(t, f.Maximized())
	assert.True(t, f.Activated())

	click(t, f, 4, maximize)
	assert.Len(t, shell.named("unset_maximized"), 1)
	assert.Len(t, shell.named("set_maximized"), 1)
}

func TestMinimizeButton(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(1, geom.Pt(150.0, 16.0)))
	click(t, f, 2, geom.Pt(150.0, 16.0))
	assert.Equal(t, []request{{"set_minimized", nil}}, shell.requests)
}

func TestIgnoredInput(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(1, geom.Pt(100.0, 10.0)))
	require.NoError(t, f.PointerButton(2, BtnLeft+1, true))
	require.NoError(t, f.PointerButton(3, BtnLeft, false))
	assert.Empty(t, shell.requests)

	require.NoError(t, f.PointerMotion(geom.Pt(math.NaN(), 2.0)))
	assert.Equal(t, Zone{Kind: ZoneTitleBar}, f.Zone())

	require.NoError(t, f.PointerMotion(geom.Pt(-50.0, 2.0)))
	assert.Equal(t, Zone{Kind: ZoneContent}, f.Zone())
	require.NoError(t, f.PointerButton(4, BtnLeft, true))
	assert.Empty(t, shell.requests)
	assert.False(t, f.Grab().Active())
}

func TestPointerLeaveCancelsButton(t *testing.T) {
	f, _ := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(1, geom.Pt(190.0, 16.0)))
	require.NoError(t, f.PointerButton(2, BtnLeft, true))
	require.NoError(t, f.PointerLeave(3))
	assert.Equal(t, ButtonPressed, f.ButtonStates()[ButtonClose])

	require.NoError(t, f.PointerButton(4, BtnLeft, false))
	assert.Equal(t, ButtonStates{}, f.ButtonStates())
	assert.Empty(t, eventsOf[CloseEvent](f.Events()))
}

func TestConfigureKeepsInteraction(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(1, geom.Pt(190.0, 16.0)))
	require.NoError(t, f.PointerButton(2, BtnLeft, true))
	require.NoError(t, f.HandleConfigure(3, geom.Pt(408, 332), StateResizing))
	assert.Equal(t, geom.Pt(400, 300), f.Geometry().Content)
	assert.Equal(t, ButtonPressed, f.ButtonStates()[ButtonClose])

	require.NoError(t, f.PointerButton(4, BtnLeft, false))
	require.NoError(t, f.PointerMotion(geom.Pt(100.0, 10.0)))
	require.NoError(t, f.PointerButton(5, BtnLeft, true))
	require.True(t, f.Grab().Active())

	require.NoError(t, f.HandleConfigure(6, geom.Pt(508, 432), StateResizing))
	assert.Equal(t, Grab{Kind: GrabMove}, f.Grab())
	assert.Len(t, shell.named("ack_configure"), 2)

	f.Events()
	f.HandleGrabEnd()
	assert.False(t, f.Grab().Active())
	assert.Equal(t, []GrabEndEvent{{Grab: Grab{Kind: GrabMove}}}, eventsOf[GrabEndEvent](f.Events()))

	f.HandleGrabEnd()
	assert.Empty(t, f.Events())
}

func TestConfigureAlwaysAcked(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	for serial := uint32(10); serial < 13; serial++ {
		require.NoError(t, f.HandleConfigure(serial, geom.Pt(208, 132), StateActivated))
	}
	assert.Equal(t, []request{
		{"ack_configure", []any{uint32(10)}},
		{"ack_configure", []any{uint32(11)}},
		{"ack_configure", []any{uint32(12)}},
	}, shell.requests)

	events := f.Events()
	assert.Len(t, eventsOf[ConfigureEvent](events), 3)
	assert.Empty(t, eventsOf[RefreshEvent](events))
}

func TestConfigureSizes(t *testing.T) {
	max := geom.Pt(400, 300)
	config := testConfig()
	config.MaxSize = &max

	f, _ := newTestFrame(t, geom.Pt(300, 200), config)

	require.NoError(t, f.HandleConfigure(1, geom.Point[int]{}, 0))
	assert.Equal(t, geom.Pt(300, 200), f.Geometry().Content)

	require.NoError(t, f.HandleConfigure(2, geom.Pt(2000, 2000), 0))
	assert.Equal(t, geom.Pt(400, 300), f.Geometry().Content)
	assert.Equal(t, []ConfigureEvent{
		{Size: geom.Pt(300, 200)},
		{Size: geom.Pt(400, 300)},
	}, eventsOf[ConfigureEvent](f.Events()))

	require.NoError(t, f.Resize(geom.Pt(10, 10)))
	assert.Equal(t, geom.Pt(200, 100), f.Geometry().Content)
}

func TestFullscreenHidesChrome(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(1, geom.Pt(100.0, 10.0)))
	require.NoError(t, f.PointerButton(2, BtnLeft, true))
	require.True(t, f.Grab().Active())

	require.NoError(t, f.HandleConfigure(3, geom.Pt(1920, 1080), StateFullscreen))
	assert.Equal(t, ModeFullscreen, f.Mode())
	assert.Equal(t, geom.Pt(1920, 1080), f.Geometry().Content)
	assert.False(t, f.Grab().Active())
	assert.Equal(t, ButtonStates{}, f.ButtonStates())

	shell.reset()
	for _, p := range []geom.Point[float64]{geom.Pt(2.0, 2.0), geom.Pt(100.0, 10.0), geom.Pt(1900.0, 10.0)} {
		require.NoError(t, f.PointerMotion(p))
		assert.Equal(t, Zone{Kind: ZoneContent}, f.Zone())
		require.NoError(t, f.PointerButton(4, BtnLeft, true))
		require.NoError(t, f.PointerButton(5, BtnLeft, false))
	}
	assert.Empty(t, shell.requests)

	require.NoError(t, f.HandleConfigure(6, geom.Pt(208, 132), 0))
	assert.Equal(t, ModeNormal, f.Mode())
	require.NoError(t, f.PointerMotion(geom.Pt(2.0, 2.0)))
	assert.Equal(t, ZoneResize, f.Zone().Kind)
}

func TestSetDecorated(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())
	var s MemSurface

	require.NoError(t, f.Refresh(&s))
	assert.True(t, s.Mapped())

	require.NoError(t, f.SetDecorated(false))
	assert.Equal(t, ModeDisabled, f.Mode())
	assert.Equal(t, []request{
		{"set_min_size", []any{200, 100}},
		{"set_max_size", []any{0, 0}},
	}, shell.requests)

	require.NoError(t, f.PointerMotion(geom.Pt(2.0, 2.0)))
	assert.Equal(t, Zone{Kind: ZoneContent}, f.Zone())

	require.NoError(t, f.Refresh(&s))
	assert.False(t, s.Mapped())

	require.NoError(t, f.SetDecorated(true))
	require.NoError(t, f.Refresh(&s))
	assert.True(t, s.Mapped())
	rects, _ := s.LastDamage()
	assert.Equal(t, f.Layout().Chrome(), rects)
}

func TestSizeLimits(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	err := f.SetMaxSize(&geom.Point[int]{X: 100, Y: 500})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Nil(t, f.Config().MaxSize)
	assert.Empty(t, shell.requests)

	require.NoError(t, f.SetMaxSize(&geom.Point[int]{X: 300, Y: 200}))
	assert.Equal(t, []request{{"set_max_size", []any{308, 232}}}, shell.named("set_max_size"))

	require.NoError(t, f.SetMinSize(&geom.Point[int]{X: 250, Y: 150}))
	assert.Equal(t, geom.Pt(250, 150), f.Geometry().Content)
	mins := shell.named("set_min_size")
	assert.Equal(t, []any{258, 182}, mins[len(mins)-1].args)

	err = f.SetMinSize(&geom.Point[int]{X: 400, Y: 150})
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	require.NoError(t, f.SetMaxSize(nil))
	require.NoError(t, f.SetMinSize(nil))
	assert.Equal(t, geom.Pt(1, 1), f.Config().MinSize)
	assert.Equal(t, geom.Pt(250, 150), f.Geometry().Content)
}

func TestRefresh(t *testing.T) {
	f, _ := newTestFrame(t, geom.Pt(200, 100), testConfig())
	var s MemSurface

	assert.Empty(t, eventsOf[RefreshEvent](f.Events()))
	err := f.Refresh(&s)
	assert.True(t, errors.Is(err, ErrNotConfigured))

	require.NoError(t, f.HandleConfigure(1, geom.Point[int]{}, 0))
	assert.Len(t, eventsOf[RefreshEvent](f.Events()), 1)
	assert.True(t, f.NeedsRedraw())

	require.NoError(t, f.Refresh(&s))
	assert.False(t, f.NeedsRedraw())
	assert.Equal(t, 1, s.Commits())
	rects, all := s.LastDamage()
	assert.Equal(t, f.Layout().Chrome(), rects)
	assert.False(t, all)

	require.NoError(t, f.Refresh(&s))
	assert.Equal(t, 1, s.Commits())

	require.NoError(t, f.PointerEnter(2, geom.Pt(190.0, 16.0)))
	assert.Len(t, eventsOf[RefreshEvent](f.Events()), 1)
	require.NoError(t, f.Refresh(&s))
	assert.Equal(t, 2, s.Commits())
	rects, _ = s.LastDamage()
	assert.Equal(t, []geom.Rect[int]{f.Layout().Buttons[ButtonClose]}, rects)
}

func TestRefreshLegacyDamage(t *testing.T) {
	config := testConfig()
	config.LegacyDamage = true
	f, _ := configured(t, geom.Pt(200, 100), config)
	var s MemSurface

	require.NoError(t, f.Refresh(&s))
	rects, all := s.LastDamage()
	assert.Empty(t, rects)
	assert.True(t, all)
}

func TestRefreshResizedBuffer(t *testing.T) {
	f, _ := configured(t, geom.Pt(200, 100), testConfig())
	var s MemSurface

	require.NoError(t, f.Refresh(&s))
	require.NoError(t, f.HandleConfigure(2, geom.Pt(308, 232), 0))
	require.NoError(t, f.Refresh(&s))
	assert.Equal(t, f.Layout().Outer.ImageRect(), s.Image().Bounds())
	rects, _ := s.LastDamage()
	assert.Equal(t, f.Layout().Chrome(), rects)
}

func TestSetState(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.SetState(WindowMaximized))
	require.NoError(t, f.ToggleFullscreen())
	require.NoError(t, f.HandleConfigure(2, geom.Pt(800, 600), StateFullscreen))
	shell.reset()

	require.NoError(t, f.ToggleFullscreen())
	assert.Equal(t, []request{{"unset_fullscreen", nil}, {"unset_maximized", nil}}, shell.requests)

	assert.Error(t, f.SetState(WindowState(42)))
}

func TestTitleAndAppID(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.SetTitle("Terminal"))
	require.NoError(t, f.SetAppID("org.example.term"))
	assert.Equal(t, "Terminal", f.Title())
	assert.Equal(t, "org.example.term", f.AppID())
	assert.Equal(t, []request{
		{"set_title", []any{"Terminal"}},
		{"set_app_id", []any{"org.example.term"}},
	}, shell.requests)

	f.HandleConfigureBounds(geom.Pt(1920, 1050))
	assert.Equal(t, geom.Pt(1920, 1050), f.Bounds())

	f.HandleClose()
	assert.Len(t, eventsOf[CloseEvent](f.Events()), 1)
}

func TestClose(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.Close())
	assert.Equal(t, []request{{"destroy", nil}}, shell.requests)

	assert.True(t, errors.Is(f.Close(), ErrDestroyed))
	assert.True(t, errors.Is(f.HandleConfigure(2, geom.Point[int]{}, 0), ErrDestroyed))
	assert.True(t, errors.Is(f.PointerMotion(geom.Pt(1.0, 1.0)), ErrDestroyed))
	assert.True(t, errors.Is(f.SetTitle("x"), ErrDestroyed))
	assert.True(t, errors.Is(f.Refresh(&MemSurface{}), ErrDestroyed))
	assert.Len(t, shell.requests, 1)
}

func TestSizeLimitsAcrossFullscreen(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.HandleConfigure(2, geom.Pt(1920, 1080), StateFullscreen))
	require.NoError(t, f.SetMaxSize(&geom.Point[int]{X: 300, Y: 200}))
	maxes := shell.named("set_max_size")
	assert.Equal(t, []any{308, 232}, maxes[len(maxes)-1].args)

	shell.reset()
	require.NoError(t, f.HandleConfigure(3, geom.Point[int]{}, 0))
	assert.Equal(t, ModeNormal, f.Mode())
	assert.Equal(t, []request{
		{"set_min_size", []any{208, 132}},
		{"set_max_size", []any{308, 232}},
		{"ack_configure", []any{uint32(3)}},
	}, shell.requests)
}

func TestCursorOnReenter(t *testing.T) {
	f, _ := configured(t, geom.Pt(200, 100), testConfig())

	require.NoError(t, f.PointerEnter(1, geom.Pt(2.0, 2.0)))
	assert.Equal(t, []CursorEvent{{Name: "top_left_corner"}}, eventsOf[CursorEvent](f.Events()))

	require.NoError(t, f.PointerLeave(2))
	assert.Equal(t, "left_ptr", f.Cursor())
	assert.Empty(t, eventsOf[CursorEvent](f.Events()))

	require.NoError(t, f.PointerEnter(3, geom.Pt(2.0, 2.0)))
	assert.Equal(t, []CursorEvent{{Name: "top_left_corner"}}, eventsOf[CursorEvent](f.Events()))

	require.NoError(t, f.PointerEnter(4, geom.Pt(100.0, 10.0)))
	assert.Equal(t, []CursorEvent{{Name: "left_ptr"}}, eventsOf[CursorEvent](f.Events()))
}

func TestMaximizeDisabledByMaxSize(t *testing.T) {
	f, shell := configured(t, geom.Pt(200, 100), testConfig())
	require.NoError(t, f.SetMaxSize(&geom.Point[int]{X: 300, Y: 200}))
	shell.reset()

	maximize := geom.Pt(170.0, 16.0)
	require.NoError(t, f.PointerEnter(1, maximize))
	click(t, f, 2, maximize)
	assert.Empty(t, shell.requests)
	assert.Equal(t, ButtonHovered, f.ButtonStates()[ButtonMaximize])

	require.NoError(t, f.SetMaxSize(nil))
	shell.reset()
	click(t, f, 4, maximize)
	assert.Equal(t, []request{{"set_maximized", nil}}, shell.requests)
}

func TestMemSurfaceFormat(t *testing.T) {
	f, _ := configured(t, geom.Pt(200, 100), testConfig())
	var s MemSurface
	assert.Equal(t, shm.FormatARGB8888, s.Format())

	require.NoError(t, f.Refresh(&s))
	assert.Equal(t, shm.FormatARGB8888, s.Format())

	buf, reused, err := s.Buffer(f.Layout().Outer.Size())
	require.NoError(t, err)
	assert.True(t, reused)
	draw.Draw(buf, buf.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	assert.Equal(t, shm.FormatXRGB8888, s.Format())
}
