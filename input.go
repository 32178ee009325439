package wlframe

import "deedles.dev/wlframe/geom"

// PointerEnter handles the pointer entering the decorated surface at
// p. Anything left over from before the pointer last left is
// discarded.
func (f *Frame) PointerEnter(serial uint32, p geom.Point[float64]) error {
	err := f.checkAlive("pointer enter")
	if err != nil {
		return err
	}

	f.inside = true
	f.cursor = ""
	f.endGrab()
	f.startIdle()
	f.setButtons(func(states *ButtonStates) {
		*states = ButtonStates{}
	})

	return f.PointerMotion(p)
}

// PointerLeave handles the pointer leaving the decorated surface.
// Pressed buttons stay pressed so that a release outside of the
// surface can still cancel them.
func (f *Frame) PointerLeave(serial uint32) error {
	err := f.checkAlive("pointer leave")
	if err != nil {
		return err
	}

	f.inside = false
	f.zone = Zone{}
	f.cursor = Zone{}.Cursor()
	if _, ok := f.mode.(modeIdle); ok {
		f.hover(f.zone)
	}
	return nil
}

// PointerMotion handles the pointer moving to p, in surface-local
// coordinates.
func (f *Frame) PointerMotion(p geom.Point[float64]) error {
	err := f.checkAlive("pointer motion")
	if err != nil {
		return err
	}

	if !p.IsFinite() {
		f.log.Warn("ignoring malformed pointer position", "pos", p)
		return nil
	}

	f.pointer = p
	z := f.classify()
	f.zone = z
	f.mode.moved(f, z)

	cursor := z.Cursor()
	if cursor != f.cursor {
		f.cursor = cursor
		f.emit(CursorEvent{Name: cursor})
	}
	return nil
}

// PointerButton handles a pointer button being pressed or released.
// Only BtnLeft operates the chrome. Other buttons are ignored.
func (f *Frame) PointerButton(serial uint32, button uint32, pressed bool) error {
	err := f.checkAlive("pointer button")
	if err != nil {
		return err
	}

	if button != BtnLeft {
		return nil
	}

	z := f.classify()
	if pressed {
		f.mode.pressed(f, serial, z)
		return nil
	}
	f.mode.released(f, z)
	return nil
}

func (f *Frame) classify() Zone {
	if !f.inside {
		return Zone{}
	}
	return Classify(f.pointer, f.layout)
}

// Cursor returns the name of the cursor image that the pointer
// should currently show.
func (f *Frame) Cursor() string {
	return f.cursor
}
