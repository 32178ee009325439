// wlframe-replay runs a recorded sequence of compositor and pointer
// events against a decoration and writes the resulting chrome to a
// PNG file.
package main

import (
	"flag"
	"image/png"
	"log/slog"
	"os"

	"deedles.dev/wlframe"
	"deedles.dev/wlframe/internal/util"
	"github.com/pkg/errors"
)

func run(script *Script, config wlframe.Config, out string, log *slog.Logger) error {
	shell := logShell{log: log}
	var surface wlframe.MemSurface

	frame, err := wlframe.New(shell, "seat0", script.Content,
		wlframe.WithConfig(config),
		wlframe.WithLogger(log),
	)
	if err != nil {
		return errors.Wrap(err, "create frame")
	}

	err = script.Replay(frame, &surface, log)
	if err != nil {
		return err
	}

	img := surface.Image()
	if (out == "") || (img == nil) {
		return nil
	}
	log.Info("writing chrome", "out", out, "size", img.Bounds().Size(), "format", surface.Format())

	file, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer file.Close()

	err = png.Encode(file, img)
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	return file.Close()
}

func main() {
	configPath := flag.String("config", "", "decoration config to use instead of the defaults")
	scriptPath := flag.String("script", "", "event script to replay")
	out := flag.String("out", "frame.png", "file to write the final chrome to")
	verbose := flag.Bool("v", false, "log every request sent to the compositor")
	skip := util.StringsFlag("skip", nil, "comma-separated script operations to skip")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *scriptPath == "" {
		log.Error("no script given")
		flag.Usage()
		os.Exit(2)
	}

	config := wlframe.DefaultConfig()
	if *configPath != "" {
		c, err := wlframe.LoadConfig(*configPath)
		if err != nil {
			log.Error("load config", "err", err)
			os.Exit(1)
		}
		config = c
	}

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Error("load script", "err", err)
		os.Exit(1)
	}
	script.Skip(*skip...)

	err = run(script, config, *out, log)
	if err != nil {
		log.Error("replay failed", "err", err)
		os.Exit(1)
	}
}
