// Package console runs the snake game directly on a tcell screen: a raw
// character frame buffer driven by a fixed-cadence loop.
//
// Input arrives on a producer goroutine and is handed to the loop through a
// single pending-key slot. The producer stores the latest key; the loop swaps
// the slot empty once per tick. Keys pressed faster than the tick rate
// overwrite each other, only the newest one is acted on.
package console

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/sound"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options carries the optional collaborators of a Frontend.
type Options struct {
	TickRate int            // Simulation ticks per second, 60 when zero
	Store    *storage.Store // Run ledger; nil skips recording
	Logger   *log.Logger    // nil discards log output
	Sound    sound.Player   // nil is silent
}

// Frontend drives one game on one tcell screen.
type Frontend struct {
	screen tcell.Screen
	game   registry.Game
	frame  *core.Screen
	opts   Options
	logger *log.Logger
	sound  sound.Player

	pending atomic.Pointer[engine.KeyEvent]
	resized atomic.Bool

	state    core.GameState
	runSaved bool
}

// New creates a frontend. The screen must not be initialized yet; Run owns
// its lifecycle.
func New(screen tcell.Screen, game registry.Game, opts Options) *Frontend {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Sound
	if player == nil {
		player = sound.Nop{}
	}
	return &Frontend{
		screen: screen,
		game:   game,
		opts:   opts,
		logger: logger,
		sound:  player,
	}
}

// Run initializes the screen and plays until the user quits or ctx is
// cancelled. The screen is finalized before Run returns.
func (f *Frontend) Run(ctx context.Context) error {
	if err := f.start(); err != nil {
		return err
	}
	f.loop(ctx)
	return nil
}

// loop runs the input producer and the fixed-cadence main loop on an
// initialized screen until ctx ends or a quit key arrives.
func (f *Frontend) loop(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.pollInput(cancel)
	}()
	defer func() {
		// Fini makes PollEvent return nil, which stops the producer
		f.screen.Fini()
		<-done
	}()

	ticker := time.NewTicker(time.Second / time.Duration(f.opts.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("session stopped", "variant", f.game.ID(), "score", f.state.Score)
			return
		case <-ticker.C:
			f.tick()
		}
	}
}

// start initializes the screen and resets the game to its size.
func (f *Frontend) start() error {
	if err := f.screen.Init(); err != nil {
		return err
	}
	f.screen.HideCursor()
	f.screen.Clear()

	w, h := f.screen.Size()
	f.frame = core.NewScreen(w, h)
	f.game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: f.opts.TickRate})
	f.state = f.game.State()
	f.logger.Info("session started", "variant", f.game.ID(), "width", w, "height", h,
		"fps", f.opts.TickRate, "frontend", "console")
	return nil
}

// pollInput is the producer: it decodes terminal events until the screen is
// finalized. Quit keys cancel the session directly.
func (f *Frontend) pollInput(cancel context.CancelFunc) {
	for {
		switch ev := f.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			f.resized.Store(true)
		case *tcell.EventKey:
			if isQuitKey(ev) {
				cancel()
				continue
			}
			if key, ok := decodeKey(ev); ok {
				f.Offer(key)
			}
		}
	}
}

// Offer places a key in the pending slot, replacing any key not yet consumed.
func (f *Frontend) Offer(key engine.KeyEvent) {
	f.pending.Store(&key)
}

// tick runs one iteration of the main loop: drain the pending key, step the
// game, then draw.
func (f *Frontend) tick() {
	if f.resized.Swap(false) {
		f.resize()
	}

	input := core.NewInputFrame()
	if key := f.pending.Swap(nil); key != nil {
		if action := actionForKey(*key); action != core.ActionNone {
			input.Set(action)
		}
	}

	result := f.game.Step(input)
	f.state = result.State
	for _, ev := range result.Events {
		if ev == core.EventRestart {
			f.runSaved = false
			f.logger.Info("restarted", "variant", f.game.ID())
		}
		f.sound.Play(ev)
	}
	if f.state.GameOver && !f.runSaved {
		f.recordRun()
		f.runSaved = true
	}

	f.draw()
}

func (f *Frontend) resize() {
	f.screen.Sync()
	w, h := f.screen.Size()
	f.frame.Resize(w, h)
	if r, ok := f.game.(registry.Resizer); ok {
		r.Resize(w, h)
	} else if !f.state.GameOver {
		f.game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: f.opts.TickRate})
	}
}

func (f *Frontend) recordRun() {
	st := f.state
	f.logger.Info("game over", "variant", f.game.ID(), "score", st.Score,
		"length", st.Length, "reason", st.Reason, "steps", st.Steps)
	if f.opts.Store == nil {
		return
	}
	if _, err := f.opts.Store.RecordRun(storage.RunEntry{
		Variant: f.game.ID(),
		Score:   st.Score,
		Length:  st.Length,
		Reason:  st.Reason,
		Ticks:   st.Steps,
	}); err != nil {
		f.logger.Warn("cannot record run", "err", err)
	}
}

// draw renders the game into the frame buffer and blits it to the terminal.
func (f *Frontend) draw() {
	f.game.Render(f.frame)
	for y := range f.frame.Height() {
		for x := range f.frame.Width() {
			cell := f.frame.GetCell(x, y)
			f.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Code))
		}
	}
	f.screen.Show()
}
