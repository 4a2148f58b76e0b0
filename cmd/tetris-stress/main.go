// Command tetris-stress plays many headless games with random input and
// reports frame timings and game statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// PlayerSystem presses a random key on each game with probability Rate.
type PlayerSystem struct {
	Games []*tetris.Game
	Rand  *rand.Rand
	Rate  float64
}

var playerKeys = []tetris.Key{tetris.KeyLeft, tetris.KeyRight, tetris.KeyDown, tetris.KeyUp}

func (s *PlayerSystem) Execute(frame *loop.UpdateFrame) {
	for _, g := range s.Games {
		if s.Rand.Float64() >= s.Rate {
			continue
		}
		g.HandleInput(playerKeys[s.Rand.IntN(len(playerKeys))])
	}
}

// GravitySystem advances every game's drop timer.
type GravitySystem struct {
	Games []*tetris.Game
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	for _, g := range s.Games {
		g.Tick(frame.Elapsed)
	}
}

// RestartSystem restarts finished games once the frame is done.
type RestartSystem struct {
	Games []*tetris.Game
}

func (s *RestartSystem) Execute(frame *loop.UpdateFrame) {
	for _, g := range s.Games {
		if g.Over() {
			frame.Commands.Defer(g.Reset)
		}
	}
}

// newGames creates count games that share stats and draw from rngs seeded
// from seed.
func newGames(count int, seed uint64, dropInterval time.Duration, stats *tetris.Stats, logger *slog.Logger) []*tetris.Game {
	games := make([]*tetris.Game, count)
	for i := range games {
		games[i] = tetris.New(
			tetris.WithRand(rand.New(rand.NewPCG(seed, uint64(i)))),
			tetris.WithDropInterval(dropInterval),
			tetris.WithStats(stats),
			tetris.WithLogger(logger),
		)
	}
	return games
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	gameCount := flag.Int("games", 64, "The number of games played side by side.")
	seed := flag.Uint64("seed", 1, "Seed for piece bags and random input.")
	timestep := flag.Duration("timestep", time.Second/60, "Simulated time per frame.")
	dropInterval := flag.Duration("drop-interval", tetris.DefaultDropInterval, "Auto drop interval for every game.")
	inputRate := flag.Float64("input-rate", 0.3, "Probability that a game receives a key on a frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log every game over.")
	flag.Parse()

	if *gameCount < 1 {
		log.Fatalf("-games must be at least 1, got %d", *gameCount)
	}

	var logOut io.Writer = io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	log.Println("Starting tetris stress test...")

	stats := tetris.NewStats()
	games := newGames(*gameCount, *seed, *dropInterval, stats, logger)

	scheduler := loop.NewScheduler()
	scheduler.Register(&PlayerSystem{Games: games, Rand: rand.New(rand.NewPCG(*seed, ^*seed)), Rate: *inputRate})
	scheduler.Register(&GravitySystem{Games: games})
	scheduler.Register(&RestartSystem{Games: games})

	report := &Report{
		Duration:       *duration,
		Games:          *gameCount,
		Seed:           *seed,
		Timestep:       *timestep,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d games for %s...\n", *gameCount, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := timestep.Seconds()
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = scheduler.Elapsed()
	report.UpdateTime.Finalize()
	report.Collect(stats, scheduler.GetStats())
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
