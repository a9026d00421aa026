// snake is a single-screen snake game for the terminal.
//
// Usage:
//
//	snake list                 - List available variants
//	snake play [variant]       - Play in a Bubble Tea UI (default variant: snake)
//	snake console [variant]    - Play on a raw tcell screen
//	snake config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--sound               - Enable sound cues
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a single-screen grid game: steer the snake to the food,
grow with every bite, and avoid the walls and your own tail.

Available commands:
  list     - Show all variants
  play     - Play in the Bubble Tea UI
  console  - Play on a raw terminal frame buffer
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_vga
  snake console --difficulty hard
  snake play --config ./my-snake.yaml --sound
  snake config > ~/.tui-snake/snake.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard while playing)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(configCmd)
}
