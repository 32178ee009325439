package wlframe

import (
	"testing"

	"deedles.dev/wlframe/geom"
	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		Border:   4,
		TitleBar: 24,
		MinSize:  geom.Pt(200, 100),
		Enabled:  true,
	}
}

func TestRecompute(t *testing.T) {
	max := geom.Pt(400, 300)
	config := testConfig()
	config.MaxSize = &max

	tests := []struct {
		name    string
		content geom.Point[int]
		mode    Mode
		want    geom.Point[int]
		outer   geom.Point[int]
	}{
		{"InRange", geom.Pt(300, 200), ModeNormal, geom.Pt(300, 200), geom.Pt(308, 232)},
		{"BelowMin", geom.Pt(50, 50), ModeNormal, geom.Pt(200, 100), geom.Pt(208, 132)},
		{"AboveMax", geom.Pt(1000, 1000), ModeNormal, geom.Pt(400, 300), geom.Pt(408, 332)},
		{"Fullscreen", geom.Pt(1920, 1080), ModeFullscreen, geom.Pt(1920, 1080), geom.Pt(1920, 1080)},
		{"Disabled", geom.Pt(50, 50), ModeDisabled, geom.Pt(50, 50), geom.Pt(50, 50)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := Recompute(test.content, config, test.mode)
			assert.Equal(t, test.want, g.Content)
			assert.Equal(t, test.outer, g.Outer())
			assert.Equal(t, test.mode, g.Mode)
		})
	}

	config.Enabled = false
	g := Recompute(geom.Pt(300, 200), config, ModeNormal)
	assert.Equal(t, ModeDisabled, g.Mode)
	assert.False(t, g.Decorated())
	assert.Equal(t, geom.Pt(0, 0), g.Offset())
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(Recompute(geom.Pt(50, 50), testConfig(), ModeNormal))

	assert.Equal(t, geom.Rt(0, 0, 208, 132), l.Outer)
	assert.Equal(t, geom.Rt(4, 28, 204, 128), l.Content)
	assert.Equal(t, geom.Rt(4, 4, 204, 28), l.Title)
	assert.Equal(t, geom.Rt(0, 0, 208, 4), l.Top)
	assert.Equal(t, geom.Rt(0, 128, 208, 132), l.Bottom)
	assert.Equal(t, geom.Rt(0, 4, 4, 128), l.Left)
	assert.Equal(t, geom.Rt(204, 4, 208, 128), l.Right)

	assert.Equal(t, geom.Rt(144, 8, 160, 24), l.Buttons[ButtonMinimize])
	assert.Equal(t, geom.Rt(164, 8, 180, 24), l.Buttons[ButtonMaximize])
	assert.Equal(t, geom.Rt(184, 8, 200, 24), l.Buttons[ButtonClose])
	for _, r := range l.Buttons {
		assert.Equal(t, r.Dx(), r.Dy(), "button %v is not square", r)
		assert.True(t, r.In(l.Title))
	}
}

func TestLayoutChrome(t *testing.T) {
	l := NewLayout(Recompute(geom.Pt(300, 200), testConfig(), ModeNormal))
	chrome := l.Chrome()
	assert.Len(t, chrome, 4)

	var area int
	for i, r := range chrome {
		area += r.Dx() * r.Dy()
		assert.False(t, r.Overlaps(l.Content))
		for _, o := range chrome[i+1:] {
			assert.False(t, r.Overlaps(o), "%v overlaps %v", r, o)
		}
	}
	assert.Equal(t, l.Outer.Dx()*l.Outer.Dy()-l.Content.Dx()*l.Content.Dy(), area)

	hidden := NewLayout(Recompute(geom.Pt(300, 200), testConfig(), ModeFullscreen))
	assert.Empty(t, hidden.Chrome())
	assert.Equal(t, geom.Rt(0, 0, 300, 200), hidden.Content)
}

func TestLayoutNarrowTitleBar(t *testing.T) {
	config := testConfig()
	config.TitleBar = 6

	l := NewLayout(Recompute(geom.Pt(200, 100), config, ModeNormal))
	for _, r := range l.Buttons {
		assert.True(t, r.Empty())
	}
}

func TestLayoutNarrowWindow(t *testing.T) {
	config := DefaultConfig()

	l := NewLayout(Recompute(geom.Pt(30, 100), config, ModeNormal))
	assert.Equal(t, geom.Rt(14, 8, 30, 24), l.Buttons[ButtonClose])
	assert.True(t, l.Buttons[ButtonMaximize].Empty())
	assert.True(t, l.Buttons[ButtonMinimize].Empty())

	for _, width := range []int{1, 10, 16, 20, 36, 50, 56, 60} {
		l := NewLayout(Recompute(geom.Pt(width, 100), config, ModeNormal))
		for b, r := range l.Buttons {
			if r.Empty() {
				continue
			}
			assert.Equal(t, geom.Pt(16, 16), r.Size(), "width %v, button %v", width, Button(b))
			assert.True(t, r.In(l.Title), "width %v, button %v", width, Button(b))
		}
	}
}
