package track

import (
	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/level"
)

// Object placement.
const (
	PlayerX   = 1.0
	ExitInset = 3.0
)

// ObjectY returns the y shared by the start and finish objects.
func ObjectY(cfg Config) float64 {
	return cfg.Objects.BaseHeight + level.ObjectRadius
}

// PlaceObjects returns the Player start and the Exit, in that order.
func PlaceObjects(cfg Config) []level.Object {
	y := ObjectY(cfg)
	return []level.Object{
		{Position: core.Pos(PlayerX, y), Type: level.ObjectPlayer},
		{Position: core.Pos(cfg.Width-ExitInset, y), Type: level.ObjectExit},
	}
}
