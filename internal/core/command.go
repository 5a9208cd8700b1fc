// Package core holds the contract between input adapters and the board
// engine. It has no UI dependencies so the engine stays pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Command is a logical player command, abstracted from physical key presses.
// The engine only ever sees values of this closed set.
type Command int

const (
	CommandNone      Command = iota
	CommandMoveUp            // slide all tiles up
	CommandMoveDown          // slide all tiles down
	CommandMoveLeft          // slide all tiles left
	CommandMoveRight         // slide all tiles right
	CommandUndo              // restore the state before the last move
	CommandRestart           // start a fresh game
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveUp:
		return "up"
	case CommandMoveDown:
		return "down"
	case CommandMoveLeft:
		return "left"
	case CommandMoveRight:
		return "right"
	case CommandUndo:
		return "undo"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// IsMove reports whether the command is one of the four directional moves.
func (c Command) IsMove() bool {
	return c >= CommandMoveUp && c <= CommandMoveRight
}

// ParseCommand converts a textual command (as used by scripted replays) into
// a Command. Names are case-insensitive. The short forms are the default
// play keys: w, a, s, d for moves, z or u for undo and r for restart.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return CommandMoveUp, nil
	case "down", "s":
		return CommandMoveDown, nil
	case "left", "a":
		return CommandMoveLeft, nil
	case "right", "d":
		return CommandMoveRight, nil
	case "undo", "z", "u":
		return CommandUndo, nil
	case "restart", "r":
		return CommandRestart, nil
	}
	return CommandNone, fmt.Errorf("core: unknown command %q", s)
}
