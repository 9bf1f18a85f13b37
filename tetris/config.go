package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable timing and spawn parameters of a game.
type Config struct {
	// DropSpeed is the number of rows a piece falls per second.
	DropSpeed float64
	// SoftDropFactor scales the drop interval while "down" is held.
	SoftDropFactor float64
	// MoveRepeat and RotateRepeat are the hold-to-repeat cooldowns in seconds.
	MoveRepeat   float64
	RotateRepeat float64
	SpawnAnchor  Coord
	// Seed seeds the piece generator. Zero picks a random seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		DropSpeed:      15,
		SoftDropFactor: 0.2,
		MoveRepeat:     0.1,
		RotateRepeat:   0.2,
		SpawnAnchor:    Coord{Column: 4, Row: 21},
	}
}

// Validate returns the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.DropSpeed <= 0:
		return fmt.Errorf("drop speed %v must be positive: %w", c.DropSpeed, ErrInvalidConfig)
	case c.SoftDropFactor <= 0 || c.SoftDropFactor > 1:
		return fmt.Errorf("soft drop factor %v must be in (0, 1]: %w", c.SoftDropFactor, ErrInvalidConfig)
	case c.MoveRepeat < 0:
		return fmt.Errorf("move repeat %v must not be negative: %w", c.MoveRepeat, ErrInvalidConfig)
	case c.RotateRepeat < 0:
		return fmt.Errorf("rotate repeat %v must not be negative: %w", c.RotateRepeat, ErrInvalidConfig)
	case !c.SpawnAnchor.InBounds():
		return fmt.Errorf("spawn anchor %v is off the board: %w", c.SpawnAnchor, ErrInvalidConfig)
	}
	return nil
}
