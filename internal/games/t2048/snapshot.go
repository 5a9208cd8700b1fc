// Package t2048 implements the 2048 board engine: sliding and merging tiles
// on a fixed 4x4 grid, random tile spawns, single-step undo and game over
// detection. It has no UI dependencies.
package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the observable game state for renderers, determinism
// tests and replay output.
type Snapshot struct {
	Moves   int
	Score   int
	Board   Board
	MaxTile int // Highest tile on board
	CanUndo bool
	State   GameStateType
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.IsGameOver() {
		state = StateGameOver
	}

	return Snapshot{
		Moves:   g.moves,
		Score:   g.score,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		CanUndo: g.CanUndo(),
		State:   state,
	}
}
