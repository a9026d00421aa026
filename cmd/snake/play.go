package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the Bubble Tea UI",
	Long: `Start playing the given variant (default: snake).

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  Tab          - Run history (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start slow, speed up as you score
  normal - Start at 30% difficulty, speed up as you score
  hard   - Start at 70% difficulty, speed up as you score
  fixed  - No speed-up, always config's move_every_ticks

Examples:
  snake play
  snake play snake_vga
  snake play --difficulty hard --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := newSession(variantArg(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	err = tui.Run(s.game, cfg, tui.Options{
		Store:  s.store,
		Logger: s.logger,
		Sound:  s.sound,
	})
	if err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
