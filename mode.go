package wlframe

// pointerMode is the interaction state of the pointer over the
// chrome. Each method is called with the zone that the pointer is in
// at the time of the event.
type pointerMode interface {
	moved(f *Frame, z Zone)
	pressed(f *Frame, serial uint32, z Zone)
	released(f *Frame, z Zone)
}

// modeIdle is active while no button is held down on the chrome.
type modeIdle struct{}

func (f *Frame) startIdle() {
	f.mode = modeIdle{}
}

func (modeIdle) moved(f *Frame, z Zone) {
	f.hover(z)
}

func (modeIdle) pressed(f *Frame, serial uint32, z Zone) {
	switch z.Kind {
	case ZoneButton:
		f.startButton(z.Button)
	case ZoneTitleBar:
		f.startMove(serial)
	case ZoneResize:
		f.startResize(serial, z)
	}
}

func (modeIdle) released(f *Frame, z Zone) {
	// Release without a matching press, such as one that started in
	// the content.
}

// modeButton is active while the left button is held down after
// being pressed on one of the title bar buttons.
type modeButton struct {
	button Button
}

func (f *Frame) startButton(b Button) {
	f.log.Debug("button pressed", "button", b)

	f.setButtons(func(states *ButtonStates) {
		states[b] = ButtonPressed
	})
	f.mode = modeButton{button: b}
}

func (m modeButton) moved(f *Frame, z Zone) {}

func (m modeButton) pressed(f *Frame, serial uint32, z Zone) {}

func (m modeButton) released(f *Frame, z Zone) {
	f.setButtons(func(states *ButtonStates) {
		*states = ButtonStates{}
	})
	f.startIdle()

	if (z.Kind != ZoneButton) || (z.Button != m.button) {
		f.log.Debug("button press cancelled", "button", m.button, "zone", z)
		f.hover(z)
		return
	}

	f.activate(m.button)
	f.hover(z)
}

// modeGrab is active from the moment that an interactive move or
// resize has been requested until the grab ends.
type modeGrab struct{}

func (f *Frame) startMove(serial uint32) {
	f.log.Debug("begin move", "serial", serial)

	f.shell.Move(f.seat, serial)
	f.grab = Grab{Kind: GrabMove}
	f.mode = modeGrab{}
}

func (f *Frame) startResize(serial uint32, z Zone) {
	f.log.Debug("begin resize", "serial", serial, "edges", z.Edges)

	f.shell.Resize(f.seat, serial, z.Edges)
	f.grab = Grab{Kind: GrabResize, Edges: z.Edges}
	f.mode = modeGrab{}
}

func (modeGrab) moved(f *Frame, z Zone) {}

func (modeGrab) pressed(f *Frame, serial uint32, z Zone) {}

func (modeGrab) released(f *Frame, z Zone) {
	f.endGrab()
	f.hover(z)
}

// endGrab finishes the current move or resize, if there is one.
func (f *Frame) endGrab() {
	grab := f.grab
	if !grab.Active() {
		return
	}

	f.log.Debug("grab ended", "grab", grab)

	f.grab = Grab{}
	f.startIdle()
	f.emit(GrabEndEvent{Grab: grab})
}

// hover updates the hover styling of the buttons for z.
func (f *Frame) hover(z Zone) {
	f.setButtons(func(states *ButtonStates) {
		for b := range states {
			states[b] = ButtonIdle
			if (z.Kind == ZoneButton) && (z.Button == Button(b)) {
				states[b] = ButtonHovered
			}
		}
	})
}

// setButtons applies update to the button states, scheduling a redraw
// if anything changed.
func (f *Frame) setButtons(update func(*ButtonStates)) {
	states := f.buttons
	update(&states)
	if states == f.buttons {
		return
	}

	f.buttons = states
	f.markDirty()
}

func (f *Frame) activate(b Button) {
	f.log.Debug("button activated", "button", b)

	switch b {
	case ButtonMinimize:
		f.shell.SetMinimized()
	case ButtonMaximize:
		if f.config.MaxSize != nil {
			f.log.Debug("maximize disabled by max size")
			return
		}
		if f.Maximized() {
			f.shell.UnsetMaximized()
			return
		}
		f.shell.SetMaximized()
	case ButtonClose:
		f.emit(CloseEvent{})
	}
}
