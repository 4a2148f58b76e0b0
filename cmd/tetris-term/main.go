// Command tetris-term runs the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const frameInterval = 16 * time.Millisecond

// InputSystem applies at most one pending key event per frame.
type InputSystem struct {
	Game   *tetris.Game
	Source tetris.InputSource
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	if key := s.Source.Poll(); key != tetris.KeyNone {
		s.Game.HandleInput(key)
	}
}

// GravitySystem drops the active block on the game's drop interval. It reads
// wall time so a slow terminal does not slow the game down.
type GravitySystem struct {
	Game  *tetris.Game
	Clock tetris.Clock
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Tick(s.Clock.Now())
}

// RenderSystem redraws the terminal once the frame's updates are done.
type RenderSystem struct {
	Game   *tetris.Game
	Screen tcell.Screen
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	frame.Commands.Defer(func() {
		drawFrame(s.Screen, s.Game)
		s.Screen.Show()
	})
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tetris-term:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tetris-term", flag.ContinueOnError)
	seed := fs.Uint64("seed", 0, "Seed for the piece bag. Zero picks a random seed.")
	dropInterval := fs.Duration("drop-interval", tetris.DefaultDropInterval, "How often the active block falls on its own.")
	volume := fs.Float64("volume", 0.5, "Sound volume between 0 and 1.")
	mute := fs.Bool("mute", false, "Disable sound.")
	logFile := fs.String("log-file", "", "Write logs to this file. The terminal is in use, so logs are discarded by default.")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn or error.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *dropInterval <= 0 {
		return fmt.Errorf("drop-interval must be positive, got %s", *dropInterval)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("log-level %q: %w", *logLevel, err)
	}

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	var sounds tetris.SoundSink = tetris.Silence
	if !*mute {
		bs, err := newBeepSounds(*volume, logger)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer bs.Close()
			sounds = bs
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	game := tetris.New(
		tetris.WithRand(rand.New(rand.NewPCG(*seed, *seed))),
		tetris.WithSounds(sounds),
		tetris.WithLogger(logger),
		tetris.WithDropInterval(*dropInterval),
	)
	logger.Info("starting", "seed", *seed, "session", game.Session())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	input := &eventInput{events: events, quit: cancel, resize: screen.Sync}

	scheduler := loop.NewScheduler()
	scheduler.Register(&InputSystem{Game: game, Source: input})
	scheduler.Register(&GravitySystem{Game: game, Clock: tetris.NewSystemClock()})
	scheduler.Register(&RenderSystem{Game: game, Screen: screen})
	scheduler.Run(ctx, frameInterval)

	stats := game.Stats()
	logger.Info("exiting", "games", stats.Games, "best_score", stats.BestScore, "lines", stats.Lines)
	return nil
}
