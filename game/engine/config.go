package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid board configuration")

// ValidateBoardConfig validates a board configuration for correctness and playability
func ValidateBoardConfig(config *BoardConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}

	// Validate size against the layout
	if config.Size < MinBoardSize || config.Size > MaxBoardSize {
		return fmt.Errorf("%w: size must be between %d and %d, got %d",
			ErrInvalidConfig, MinBoardSize, MaxBoardSize, config.Size)
	}
	if len(config.Rows) != config.Size {
		return fmt.Errorf("%w: rows must have %d entries to match size, got %d",
			ErrInvalidConfig, config.Size, len(config.Rows))
	}
	if _, err := NewBoard(config.Rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Validate rules
	if config.MinWordLength < 0 {
		return fmt.Errorf("%w: min_word_length cannot be negative, got %d", ErrInvalidConfig, config.MinWordLength)
	}
	if config.Players < 0 || config.Players > MaxPlayers {
		return fmt.Errorf("%w: players must be between 1 and %d, got %d", ErrInvalidConfig, MaxPlayers, config.Players)
	}

	return nil
}

// ApplyDefaults fills unset optional fields
func (c *BoardConfig) ApplyDefaults() {
	if c.MinWordLength == 0 {
		c.MinWordLength = DefaultMinWordLength
	}
	if c.Players == 0 {
		c.Players = DefaultPlayers
	}
	if c.Size == 0 {
		c.Size = len(c.Rows)
	}
}

// NewBoard builds the board described by the configuration
func (c *BoardConfig) NewBoard() (*Board, error) {
	return NewBoard(c.Rows)
}

// DefaultBoardConfig returns the built-in 4x4 board used when no
// configuration files are available
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		Name:        "default",
		Description: "Built-in 4x4 board",
		Size:        4,
		Rows: []string{
			"SERS",
			"PATG",
			"LINE",
			"SERS",
		},
		MinWordLength: DefaultMinWordLength,
		Players:       DefaultPlayers,
	}
}
