package wlframe

import "image/color"

const (
	DefaultBorder   = 4
	DefaultTitleBar = 24

	// ButtonPadding is the gap between a button and the top and bottom
	// of the title bar.
	ButtonPadding = 4

	// ButtonSpacing separates buttons from each other and the
	// right-most button from the right edge of the title bar.
	ButtonSpacing = 4

	// BtnLeft is the evdev code of the primary pointer button. It is
	// the only button that operates the chrome.
	BtnLeft = 0x110
)

var (
	ColorBorder   = color.NRGBA{0x44, 0x44, 0x44, 0xFF}
	ColorTitleBar = color.NRGBA{0x33, 0x33, 0x33, 0xFF}
	ColorGlyph    = color.NRGBA{0xEE, 0xEE, 0xEE, 0xFF}

	ColorButtonIdle    = color.NRGBA{0x55, 0x55, 0x55, 0xFF}
	ColorButtonHovered = color.NRGBA{0x77, 0x77, 0x77, 0xFF}
	ColorButtonPressed = color.NRGBA{0x99, 0x99, 0x99, 0xFF}
)

func buttonColor(s ButtonState) color.NRGBA {
	switch s {
	case ButtonHovered:
		return ColorButtonHovered
	case ButtonPressed:
		return ColorButtonPressed
	default:
		return ColorButtonIdle
	}
}
