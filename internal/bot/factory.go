package bot

import (
	"fmt"
)

// BotLevel selects a strategy for a bot seat.
type BotLevel int

const (
	BotLevelStandard BotLevel = iota
)

// NewBrain creates a new AI brain for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelStandard:
		return &StandardBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgent wires an identity to a fresh brain.
func NewAgent(id, name string, level BotLevel) (*Agent, error) {
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: id, Name: name, Strategy: brain}, nil
}
