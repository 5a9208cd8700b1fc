package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// savedState is the single history step kept for undo.
type savedState struct {
	board Board
	score int
	moves int
}

// Game is the board engine. It exclusively owns the board, the score and one
// snapshot of the state before the most recent move.
type Game struct {
	rng        *rand.Rand
	spawn4Prob float64
	logger     *log.Logger

	board Board
	score int
	moves int // accepted (board-changing) moves
	prev  *savedState
}

// MoveResult describes the outcome of a single command.
type MoveResult struct {
	Command     core.Command
	Changed     bool // board or score changed
	ScoreGained int
	Spawned     *Cell // tile spawned after the move, if any
	GameOver    bool  // no valid moves remain
}

// New creates a game with an empty board and two spawned tiles.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		spawn4Prob: cfg.Spawn4Prob,
		logger:     log.New(io.Discard),
	}
	if g.spawn4Prob <= 0 || g.spawn4Prob > 1 {
		g.spawn4Prob = core.DefaultSpawn4Prob
	}

	g.Restart()
	return g
}

// SetLogger sets the logger used for engine debug output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Restart resets the board, score and history, then spawns two tiles.
func (g *Game) Restart() {
	g.board = Board{}
	g.score = 0
	g.moves = 0
	g.prev = nil

	g.SpawnTile()
	g.SpawnTile()

	g.logger.Debug("game restarted", "board", g.board.Encode())
}

// Load installs a position and clears the undo history. The score is
// clamped to [0, MaxScore]. Cells should hold values accepted by ParseBoard.
func (g *Game) Load(board Board, score int) {
	g.board = board
	g.score = min(max(score, 0), MaxScore)
	g.moves = 0
	g.prev = nil
}

// SpawnTile places a 2 (or, with the configured probability, a 4) in a
// uniformly chosen empty cell. Returns false when the board is full.
func (g *Game) SpawnTile() (Cell, bool) {
	emptyCells := EmptyCells(g.board)
	if len(emptyCells) == 0 {
		return Cell{}, false
	}

	cell := emptyCells[g.rng.Intn(len(emptyCells))]

	cell.Value = 2
	if g.rng.Float64() < g.spawn4Prob {
		cell.Value = 4
	}

	g.board[cell.Y][cell.X] = cell.Value
	return cell, true
}

// Move slides the board in the given direction.
//
// The pre-move state is always saved for undo, even when the move turns out
// to be a no-op; undoing a no-op restores the identical state. A tile is
// spawned only when the board changed. Panics on an invalid direction.
func (g *Game) Move(dir Direction) MoveResult {
	g.prev = &savedState{board: g.board, score: g.score, moves: g.moves}

	newBoard, gained, changed := Slide(g.board, dir)
	result := MoveResult{Command: commandFor(dir)}

	if !changed {
		result.GameOver = !HasValidMoves(g.board)
		g.logger.Debug("move had no effect", "dir", dir)
		return result
	}

	g.board = newBoard
	g.score += gained
	g.moves++

	result.Changed = true
	result.ScoreGained = gained
	if cell, ok := g.SpawnTile(); ok {
		result.Spawned = &cell
	}
	result.GameOver = !HasValidMoves(g.board)

	g.logger.Debug("move",
		"dir", dir,
		"gained", gained,
		"score", g.score,
		"spawned", result.Spawned != nil,
	)
	if result.GameOver {
		g.logger.Info("game over", "score", g.score, "max_tile", MaxTile(g.board), "moves", g.moves)
	}

	return result
}

// Undo restores the state saved before the last move and clears it.
// A second consecutive Undo is a no-op. Returns whether anything was restored.
func (g *Game) Undo() bool {
	if g.prev == nil {
		return false
	}

	g.board = g.prev.board
	g.score = g.prev.score
	g.moves = g.prev.moves
	g.prev = nil

	g.logger.Debug("undo", "score", g.score)
	return true
}

// CanUndo reports whether a snapshot is available.
func (g *Game) CanUndo() bool {
	return g.prev != nil
}

// Execute dispatches a logical command to the engine.
// CommandNone and unknown commands are ignored.
func (g *Game) Execute(cmd core.Command) MoveResult {
	switch cmd {
	case core.CommandMoveUp:
		return g.Move(DirUp)
	case core.CommandMoveDown:
		return g.Move(DirDown)
	case core.CommandMoveLeft:
		return g.Move(DirLeft)
	case core.CommandMoveRight:
		return g.Move(DirRight)
	case core.CommandUndo:
		return MoveResult{Command: cmd, Changed: g.Undo(), GameOver: g.IsGameOver()}
	case core.CommandRestart:
		g.Restart()
		return MoveResult{Command: cmd, Changed: true}
	default:
		return MoveResult{Command: core.CommandNone, GameOver: g.IsGameOver()}
	}
}

// commandFor maps a direction back to its command.
func commandFor(dir Direction) core.Command {
	switch dir {
	case DirUp:
		return core.CommandMoveUp
	case DirDown:
		return core.CommandMoveDown
	case DirLeft:
		return core.CommandMoveLeft
	default:
		return core.CommandMoveRight
	}
}

// HasValidMoves reports whether any move can change the board.
func (g *Game) HasValidMoves() bool {
	return HasValidMoves(g.board)
}

// IsGameOver returns true if no moves are possible.
func (g *Game) IsGameOver() bool {
	return !HasValidMoves(g.board)
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the cumulative score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns the number of accepted moves.
func (g *Game) Moves() int {
	return g.moves
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	return MaxTile(g.board)
}
