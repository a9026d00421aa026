package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console [variant]",
	Short: "Play on a raw terminal frame buffer",
	Long: `Start the given variant (default: snake) directly on a tcell screen.

Input is read on its own goroutine and handed to the fixed-rate game loop
through a single pending-key slot, so only the newest key per tick counts.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) {
	s, err := newSession(variantArg(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: cannot open terminal: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := console.New(screen, s.game, console.Options{
		TickRate: flagFPS,
		Store:    s.store,
		Logger:   s.logger,
		Sound:    s.sound,
	})
	if err := f.Run(ctx); err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
