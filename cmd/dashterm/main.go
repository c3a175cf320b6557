// Command dashterm runs a level in the terminal. Space or Up holds; a
// terminal only reports presses, so a hold lasts until the key repeat
// stops arriving.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/automoto/dashrunner/components"
	"github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/sim"
	"github.com/gdamore/tcell/v2"
)

// holdWindow must exceed the terminal's key repeat interval
const holdWindow = 180 * time.Millisecond

type Game struct {
	screen tcell.Screen
	sim    *sim.Simulation
	level  int

	lastPress time.Time
	last      time.Time
}

func NewGame(level int) (*Game, error) {
	s, err := sim.New(level)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Game{screen: screen, sim: s, level: level}, nil
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyUp || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
			g.lastPress = now
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			g.sim.Respawn()
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) step(now time.Time) {
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last)
	g.last = now

	g.sim.SetHold(held(g.lastPress, now))
	g.sim.Advance(dt)

	for _, ev := range g.sim.DrainEvents() {
		if ev.Kind == components.EventCompleted {
			logging.Logger.Info().Int("attempts", ev.Attempt).Msg("level complete, restarting")
			if err := g.sim.StartRun(g.level); err != nil {
				logging.Logger.Error().Err(err).Msg("restart failed")
			}
		}
	}
}

func held(lastPress, now time.Time) bool {
	return !lastPress.IsZero() && now.Sub(lastPress) < holdWindow
}

func (g *Game) run() {
	ticker := time.NewTicker(config.TickDuration())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !g.handleInput(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			g.step(now)
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()

	clk := g.sim.Clock()
	logging.Logger.Info().
		Uint64("ticks", clk.Ticks()).
		Dur("pending", clk.Remainder()).
		Msg("session ended")
}

func main() {
	configDir := flag.String("config", ".", "Directory searched for dashrunner.json")
	level := flag.Int("level", 0, "Level to play")
	logFile := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		logging.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// The terminal owns the tty while the game runs
	logging.Setup("error", io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logging.Logger.Fatal().Err(err).Msg("could not open log file")
		}
		defer f.Close()
		logging.Setup(config.LogLevel(), f)
	}

	g, err := NewGame(*level)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("could not start")
	}
	defer g.cleanup()

	g.run()
}
