package config

import "testing"

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultSnakeConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(100, 100); got != 0.5 {
		t.Errorf("Level() = %v, expected initial level 0.5", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultSnakeConfig().Difficulty // score, max_at 40
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := d.Level(20, 0); got != 0.5 {
		t.Errorf("Level(20) = %v, expected 0.5", got)
	}
	if got := d.Level(400, 0); got != 1 {
		t.Errorf("Level(400) = %v, expected clamp to 1", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultSnakeConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(999, 0); got != 0.5 {
		t.Errorf("Level(ticks=0) = %v, expected 0.5", got)
	}
	if got := d.Level(0, 100); got != 1 {
		t.Errorf("Level(ticks=100) = %v, expected 1", got)
	}
}

func TestMoveEvery(t *testing.T) {
	d := NewDifficultyManager(DefaultSnakeConfig().Difficulty) // speed_multiplier 2

	tests := []struct {
		base, score, want int
	}{
		{6, 0, 6},
		{6, 20, 3},  // 6 / (1 + 0.5*2)
		{6, 40, 2},  // 6 / 3
		{1, 40, 1},  // never below one tick
		{10, 40, 3}, // round(3.33)
	}
	for _, tt := range tests {
		if got := d.MoveEvery(tt.base, tt.score, 0); got != tt.want {
			t.Errorf("MoveEvery(%d, %d) = %d, expected %d", tt.base, tt.score, got, tt.want)
		}
	}
}

func TestMoveEveryFixed(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if got := d.MoveEvery(6, 1000, 1000); got != 6 {
		t.Errorf("MoveEvery() = %d, expected unchanged 6", got)
	}
}
