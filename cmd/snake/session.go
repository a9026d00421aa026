package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/sound"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// session bundles everything a frontend needs to run one variant.
type session struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	sound  sound.Player
	close  []func()
}

// Close releases the session's collaborators in reverse order.
func (s *session) Close() {
	for i := len(s.close) - 1; i >= 0; i-- {
		s.close[i]()
	}
}

// loadConfig resolves the effective configuration from the global flags.
func loadConfig() (config.SnakeConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	cfg, src, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, src, nil
}

// newSession loads the configuration and wires the game, run ledger, sound
// and logger. The ledger and speaker are optional: failures are logged and the
// game runs without them.
func newSession(variant string) (*session, error) {
	if !registry.Exists(variant) {
		return nil, fmt.Errorf("unknown variant %q (run 'snake list')", variant)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, close: []func(){closeLog}}

	cfg, src, err := loadConfig()
	if err != nil {
		s.Close()
		return nil, err
	}
	logger.Debug("config loaded", "source", src)

	snake.SetConfig(cfg)
	game, err := registry.Create(variant)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.game = game

	if store, err := storage.Open(); err != nil {
		logger.Warn("run ledger unavailable", "err", err)
	} else {
		s.store = store
		s.close = append(s.close, func() { store.Close() })
	}

	s.sound = sound.Nop{}
	if flagSound || cfg.Sound.Enabled {
		if sp, err := sound.NewSpeaker(); err != nil {
			logger.Warn("sound unavailable", "err", err)
		} else {
			s.sound = sp
			s.close = append(s.close, func() { sp.Close() })
		}
	}

	return s, nil
}

// variantArg returns the requested variant, defaulting to the configurable one.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return snake.VariantDefault
}
