// Command tetris runs the game in a desktop window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	windowTitle = "Tetris"
	debugWidth  = 1100
	debugHeight = 720
)

// App implements ebiten.Game on top of a loop.Scheduler.
type App struct {
	game      *tetris.Game
	scheduler *loop.Scheduler
	input     *keyboardInput
	overlay   *debugui_ebiten.Overlay
}

func (a *App) Update() error {
	a.input.Collect()
	if a.input.quit {
		return ebiten.Termination
	}

	if a.overlay != nil {
		a.overlay.BeginFrame()
	}

	a.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if a.overlay != nil {
		a.overlay.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	drawFrame(screen, a.game)
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("tetris exited", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tetris", flag.ContinueOnError)
	cfg, err := ParseFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting", "seed", seed, "drop_interval", cfg.DropDuration(), "debug", cfg.Debug)

	var sounds tetris.SoundSink = tetris.Silence
	if !cfg.Mute {
		sounds = newEbitenSounds(cfg.Volume, logger)
	}

	game := tetris.New(
		tetris.WithRand(rand.New(rand.NewPCG(seed, seed))),
		tetris.WithSounds(sounds),
		tetris.WithLogger(logger),
		tetris.WithDropInterval(cfg.DropDuration()),
	)

	app := &App{
		game:      game,
		scheduler: loop.NewScheduler(),
		input:     &keyboardInput{},
	}

	var inputState *debugui.InputState
	if cfg.Debug {
		app.overlay = debugui_ebiten.NewOverlay(windowTitle, debugWidth, debugHeight)
		inputState = &debugui.InputState{}
		imguiSystem := debugui.NewImguiSystem(inputState)
		imguiSystem.Add(debugui.NewPerformanceStats(app.scheduler, 120).Item())
		imguiSystem.Add(debugui.NewGameInspector(game).Item())
		app.scheduler.Register(imguiSystem)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(windowTitle)
	}

	app.scheduler.Register(&InputSystem{Game: game, Source: app.input, Overlay: inputState})
	app.scheduler.Register(&GravitySystem{Game: game, Clock: app.scheduler})

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	stats := game.Stats()
	logger.Info("exiting", "games", stats.Games, "best_score", stats.BestScore, "lines", stats.Lines)
	return nil
}
