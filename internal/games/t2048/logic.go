package t2048

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// BoardSize is the fixed board dimension.
const BoardSize = 4

// Value limits for loaded positions. MaxTileValue is far above any tile a
// 4x4 game can build (131072); keeping it small guarantees that merged tiles
// and accumulated scores cannot overflow int.
const (
	MaxTileValue = 1 << 30
	MaxScore     = 1 << 40
)

// Board represents a 4x4 game board indexed as board[row][col].
// Zero is an empty cell.
type Board [BoardSize][BoardSize]int

// Cell is a position on the board together with its value.
type Cell struct {
	X, Y  int // column, row
	Value int
}

// orientation maps a direction onto the canonical "compact left" case.
// inverse(forward(b)) == b for every entry.
type orientation struct {
	forward func(Board) Board
	inverse func(Board) Board
}

var orientations = [...]orientation{
	DirUp:    {forward: rotateCCW, inverse: rotateCW},
	DirDown:  {forward: rotateCW, inverse: rotateCCW},
	DirLeft:  {forward: identity, inverse: identity},
	DirRight: {forward: reverseRows, inverse: reverseRows},
}

func identity(b Board) Board {
	return b
}

// reverseRows mirrors the board horizontally.
func reverseRows(b Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = b[y][BoardSize-1-x]
		}
	}
	return result
}

// rotateCW rotates the board a quarter turn clockwise.
// Row r of the result is column r read bottom to top.
func rotateCW(b Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = b[BoardSize-1-x][y]
		}
	}
	return result
}

// rotateCCW rotates the board a quarter turn counter-clockwise.
// Row r of the result is column BoardSize-1-r read top to bottom.
func rotateCCW(b Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = b[x][BoardSize-1-y]
		}
	}
	return result
}

// mergeLine merges and compacts a single row toward index 0.
//
// Pairs are scanned from the end of the row (index 3 paired with 2, then 2
// with 1, then 1 with 0). An equal non-zero pair doubles into the
// higher-index cell and zeroes the lower one; both positions are then locked
// for the rest of the pass, so [2,2,2,2] gives [4,4,0,0] and never 8.
// Only directly adjacent cells merge: [2,0,0,2] compacts to [2,2,0,0].
func mergeLine(row [BoardSize]int) (result [BoardSize]int, score int) {
	var merged [BoardSize]bool

	for i := BoardSize - 1; i > 0; i-- {
		if row[i] == 0 || row[i] != row[i-1] || merged[i] || merged[i-1] {
			continue
		}
		row[i] *= 2
		row[i-1] = 0
		score += row[i]
		merged[i] = true
		merged[i-1] = true
	}

	writePos := 0
	for _, v := range row {
		if v == 0 {
			continue
		}
		result[writePos] = v
		writePos++
	}

	return result, score
}

// Slide performs a move in the given direction.
// Returns the new board, score gained, and whether the board changed.
// Panics if dir is not a valid direction.
func Slide(board Board, dir Direction) (Board, int, bool) {
	if !dir.Valid() {
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}
	o := orientations[dir]

	canonical := o.forward(board)
	totalScore := 0
	for y := range BoardSize {
		row, score := mergeLine(canonical[y])
		canonical[y] = row
		totalScore += score
	}

	result := o.inverse(canonical)
	return result, totalScore, result != board
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasValidMoves returns true if any cell is empty or any two horizontally or
// vertically adjacent cells hold the same value. A false result is the
// terminal (game over) condition.
func HasValidMoves(board Board) bool {
	for i := range BoardSize {
		for j := range BoardSize - 1 {
			if board[i][j] == 0 || board[i][j+1] == 0 {
				return true
			}
			if board[i][j] == board[i][j+1] || board[j][i] == board[j+1][i] {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// isTileValue reports whether v is a legal cell value: empty or a power of
// two between 2 and MaxTileValue.
func isTileValue(v int) bool {
	return v == 0 || (v >= 2 && v <= MaxTileValue && bits.OnesCount(uint(v)) == 1)
}

// String renders the board as four right-aligned text rows, "." for empty.
func (b Board) String() string {
	var sb strings.Builder
	for y := range BoardSize {
		for x := range BoardSize {
			cell := "."
			if b[y][x] != 0 {
				cell = strconv.Itoa(b[y][x])
			}
			fmt.Fprintf(&sb, "%6s", cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Encode returns the compact form accepted by ParseBoard,
// e.g. "2,0,0,4/0,0,0,0/0,0,0,0/0,0,0,0".
func (b Board) Encode() string {
	rows := make([]string, BoardSize)
	for y := range BoardSize {
		cells := make([]string, BoardSize)
		for x := range BoardSize {
			cells[x] = strconv.Itoa(b[y][x])
		}
		rows[y] = strings.Join(cells, ",")
	}
	return strings.Join(rows, "/")
}

// ParseBoard parses the compact board form: four rows separated by "/",
// four comma-separated cells per row. Every value must be 0 or a power of
// two between 2 and MaxTileValue.
func ParseBoard(s string) (Board, error) {
	var board Board

	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != BoardSize {
		return board, fmt.Errorf("t2048: board needs %d rows, got %d", BoardSize, len(rows))
	}

	for y, row := range rows {
		cells := strings.Split(row, ",")
		if len(cells) != BoardSize {
			return board, fmt.Errorf("t2048: row %d needs %d cells, got %d", y+1, BoardSize, len(cells))
		}
		for x, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return board, fmt.Errorf("t2048: row %d cell %d: %w", y+1, x+1, err)
			}
			if !isTileValue(v) {
				return board, fmt.Errorf("t2048: row %d cell %d: %d is not a tile value", y+1, x+1, v)
			}
			board[y][x] = v
		}
	}

	return board, nil
}
