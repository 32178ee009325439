package main

import (
	"log/slog"
	"os"

	"deedles.dev/wlframe"
	"deedles.dev/wlframe/geom"
	"deedles.dev/wlframe/internal/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Script is a recorded session.
//
//	content: {x: 640, y: 480}
//	steps:
//	  - op: configure
//	    serial: 1
//	    size: {x: 0, y: 0}
//	    states: [activated]
//	  - op: enter
//	    pos: {x: 10, y: 10}
//	  - op: press
//	  - op: release
type Script struct {
	Content geom.Point[int] `yaml:"content"`
	Title   string          `yaml:"title"`
	AppID   string          `yaml:"app_id"`
	Steps   []Step          `yaml:"steps"`
}

// Step is a single event of a Script. Which fields are used depends
// on Op.
type Step struct {
	Op      string              `yaml:"op"`
	Serial  uint32              `yaml:"serial"`
	Pos     geom.Point[float64] `yaml:"pos"`
	Size    geom.Point[int]     `yaml:"size"`
	States  []string            `yaml:"states"`
	Button  uint32              `yaml:"button"`
	Enabled bool                `yaml:"enabled"`
}

type op struct {
	name string
	run  func(*wlframe.Frame, wlframe.Surface, Step) error
}

var ops = []op{
	{"configure", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		states, err := parseStates(step.States)
		if err != nil {
			return err
		}
		return f.HandleConfigure(step.Serial, step.Size, states)
	}},
	{"bounds", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		f.HandleConfigureBounds(step.Size)
		return nil
	}},
	{"close", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		f.HandleClose()
		return nil
	}},
	{"grab_end", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		f.HandleGrabEnd()
		return nil
	}},
	{"enter", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.PointerEnter(step.Serial, step.Pos)
	}},
	{"leave", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.PointerLeave(step.Serial)
	}},
	{"motion", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.PointerMotion(step.Pos)
	}},
	{"press", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.PointerButton(step.Serial, step.button(), true)
	}},
	{"release", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.PointerButton(step.Serial, step.button(), false)
	}},
	{"resize", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.Resize(step.Size)
	}},
	{"decorate", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.SetDecorated(step.Enabled)
	}},
	{"fullscreen", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.ToggleFullscreen()
	}},
	{"draw", func(f *wlframe.Frame, s wlframe.Surface, step Step) error {
		return f.Draw(s)
	}},
}

var stateNames = map[string]wlframe.States{
	"maximized":  wlframe.StateMaximized,
	"fullscreen": wlframe.StateFullscreen,
	"resizing":   wlframe.StateResizing,
	"activated":  wlframe.StateActivated,
}

func parseStates(names []string) (wlframe.States, error) {
	var states wlframe.States
	for _, name := range names {
		s, ok := stateNames[name]
		if !ok {
			return 0, errors.Errorf("unknown window state %q", name)
		}
		states |= s
	}
	return states, nil
}

func (step Step) button() uint32 {
	if step.Button == 0 {
		return wlframe.BtnLeft
	}
	return step.Button
}

// ParseScript decodes a YAML script, checking that every step names
// a known operation.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	err := yaml.Unmarshal(data, &script)
	if err != nil {
		return nil, errors.Wrap(err, "decode script")
	}

	for i, step := range script.Steps {
		_, ok := findOp(step.Op)
		if !ok {
			return nil, errors.Errorf("step %v: unknown op %q", i, step.Op)
		}
	}
	return &script, nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return ParseScript(data)
}

func findOp(name string) (op, bool) {
	return util.FindFunc(ops, func(o op) bool { return o.name == name })
}

// Skip removes every step whose operation is one of names.
func (script *Script) Skip(names ...string) {
	script.Steps = slices.DeleteFunc(script.Steps, func(step Step) bool {
		return slices.Contains(names, step.Op)
	})
}

// Replay runs every step of the script against f. Whenever the frame
// asks to be refreshed, the chrome is redrawn onto s before the next
// step.
func (script *Script) Replay(f *wlframe.Frame, s wlframe.Surface, log *slog.Logger) error {
	if script.Title != "" {
		err := f.SetTitle(script.Title)
		if err != nil {
			return err
		}
	}
	if script.AppID != "" {
		err := f.SetAppID(script.AppID)
		if err != nil {
			return err
		}
	}

	for i, step := range script.Steps {
		op, _ := findOp(step.Op)
		err := op.run(f, s, step)
		if err != nil {
			return errors.Wrapf(err, "step %v (%v)", i, step.Op)
		}

		for _, ev := range f.Events() {
			log.Info("event", "step", i, "type", eventName(ev), "event", ev)

			switch ev.(type) {
			case wlframe.RefreshEvent:
				err := f.Refresh(s)
				if err != nil {
					return errors.Wrapf(err, "refresh after step %v", i)
				}
			case wlframe.CloseEvent:
				return f.Close()
			}
		}
	}
	return nil
}

func eventName(ev wlframe.Event) string {
	switch ev.(type) {
	case wlframe.ConfigureEvent:
		return "configure"
	case wlframe.CloseEvent:
		return "close"
	case wlframe.RefreshEvent:
		return "refresh"
	case wlframe.CursorEvent:
		return "cursor"
	case wlframe.GrabEndEvent:
		return "grab_end"
	default:
		return "unknown"
	}
}
