package t2048

import (
	"fmt"
	"math"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:       seed,
		Spawn4Prob: core.DefaultSpawn4Prob,
	}
}

func countTiles(b Board) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewSpawnsTwoTiles(t *testing.T) {
	g := New(testConfig(7))

	if n := countTiles(g.Board()); n != 2 {
		t.Fatalf("new game has %d tiles, want 2", n)
	}
	for y := range BoardSize {
		for x := range BoardSize {
			v := g.Board()[y][x]
			if v != 0 && v != 2 && v != 4 {
				t.Errorf("initial tile %d at (%d,%d) should be 2 or 4", v, x, y)
			}
		}
	}
	if g.Score() != 0 || g.Moves() != 0 || g.CanUndo() {
		t.Errorf("new game state: score=%d moves=%d canUndo=%v", g.Score(), g.Moves(), g.CanUndo())
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := New(testConfig(12345))
	g2 := New(testConfig(12345))

	if g1.Board() != g2.Board() {
		t.Fatalf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}

	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}
	for i := range 40 {
		d := dirs[i%len(dirs)]
		g1.Move(d)
		g2.Move(d)
		if g1.Board() != g2.Board() || g1.Score() != g2.Score() {
			t.Fatalf("games diverged after %d moves", i+1)
		}
	}
}

func TestSpawnProbabilityOne(t *testing.T) {
	g := New(core.RuntimeConfig{Seed: 1, Spawn4Prob: 1})

	for y := range BoardSize {
		for x := range BoardSize {
			if v := g.Board()[y][x]; v != 0 && v != 4 {
				t.Errorf("tile %d with Spawn4Prob=1, want 4", v)
			}
		}
	}
}

func TestSpawnProbabilityDefaultsWhenUnset(t *testing.T) {
	g := New(core.RuntimeConfig{Seed: 1})
	if g.spawn4Prob != core.DefaultSpawn4Prob {
		t.Errorf("spawn4Prob = %v, want %v", g.spawn4Prob, core.DefaultSpawn4Prob)
	}

	g = New(core.RuntimeConfig{Seed: 1, Spawn4Prob: 3})
	if g.spawn4Prob != core.DefaultSpawn4Prob {
		t.Errorf("out-of-range spawn4Prob = %v, want default", g.spawn4Prob)
	}
}

func TestSpawnOnFullBoardIsNoop(t *testing.T) {
	g := New(testConfig(1))
	full := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	g.Load(full, 100)

	if _, ok := g.SpawnTile(); ok {
		t.Error("SpawnTile on full board should report no spawn")
	}
	if g.Board() != full {
		t.Error("SpawnTile on full board changed the board")
	}
}

func TestMoveSpawnsExactlyOneTile(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(testConfig(seed))
		g.Load(Board{
			{2, 2, 0, 0},
			{0, 4, 0, 4},
			{0, 0, 0, 0},
			{8, 0, 0, 0},
		}, 0)

		slid, _, _ := Slide(g.Board(), DirLeft)
		result := g.Move(DirLeft)

		if !result.Changed || result.Spawned == nil {
			t.Fatalf("seed %d: accepted move should spawn a tile", seed)
		}

		after := g.Board()
		diffs := 0
		for y := range BoardSize {
			for x := range BoardSize {
				if after[y][x] == slid[y][x] {
					continue
				}
				diffs++
				if slid[y][x] != 0 {
					t.Errorf("seed %d: spawn overwrote non-empty cell (%d,%d)", seed, x, y)
				}
				if v := after[y][x]; v != 2 && v != 4 {
					t.Errorf("seed %d: spawned value %d, want 2 or 4", seed, v)
				}
				if result.Spawned.X != x || result.Spawned.Y != y || result.Spawned.Value != after[y][x] {
					t.Errorf("seed %d: Spawned = %+v, board shows (%d,%d)=%d", seed, *result.Spawned, x, y, after[y][x])
				}
			}
		}
		if diffs != 1 {
			t.Errorf("seed %d: %d cells differ from slid board, want 1", seed, diffs)
		}
	}
}

func TestMergeScoring(t *testing.T) {
	g := New(testConfig(3))
	g.Load(Board{{2, 2, 2, 2}}, 10)

	result := g.Move(DirLeft)

	if result.ScoreGained != 8 {
		t.Errorf("ScoreGained = %d, want 8", result.ScoreGained)
	}
	if g.Score() != 18 {
		t.Errorf("Score = %d, want 18", g.Score())
	}
	if row := g.Board()[0]; row[0] != 4 || row[1] != 4 {
		t.Errorf("row after move = %v, want [4 4 ...]", row)
	}
}

func TestNoopMoveDoesNotSpawn(t *testing.T) {
	g := New(testConfig(5))
	board := Board{{8, 4, 2, 1}}
	g.Load(board, 40)

	result := g.Move(DirLeft)

	if result.Changed || result.Spawned != nil || result.ScoreGained != 0 {
		t.Errorf("no-op move result = %+v", result)
	}
	if g.Board() != board {
		t.Errorf("no-op move changed board:\n%v", g.Board())
	}
	if g.Score() != 40 || g.Moves() != 0 {
		t.Errorf("no-op move changed score/moves: %d/%d", g.Score(), g.Moves())
	}

	// The snapshot is still taken; undoing restores the identical state.
	if !g.CanUndo() {
		t.Fatal("no-op move should still record an undo snapshot")
	}
	if !g.Undo() {
		t.Fatal("Undo after no-op move should restore")
	}
	if g.Board() != board || g.Score() != 40 {
		t.Error("Undo after no-op move should leave state unchanged")
	}
}

func TestUndoRoundTrip(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			g := New(testConfig(99))
			start := Board{
				{2, 0, 2, 0},
				{0, 4, 0, 4},
				{2, 0, 2, 0},
				{0, 4, 0, 4},
			}
			g.Load(start, 64)

			if result := g.Move(dir); !result.Changed {
				t.Fatalf("move %s should change the board", dir)
			}

			if !g.Undo() {
				t.Fatal("Undo should restore after a move")
			}
			if g.Board() != start {
				t.Errorf("Undo board = \n%v\nwant\n%v", g.Board(), start)
			}
			if g.Score() != 64 || g.Moves() != 0 {
				t.Errorf("Undo score/moves = %d/%d, want 64/0", g.Score(), g.Moves())
			}

			if g.Undo() {
				t.Error("second consecutive Undo should be a no-op")
			}
			if g.Board() != start || g.Score() != 64 {
				t.Error("second Undo changed state")
			}
		})
	}
}

func TestUndoWithoutSnapshot(t *testing.T) {
	g := New(testConfig(11))
	before := g.Board()

	if g.Undo() {
		t.Error("Undo on fresh game should be a no-op")
	}
	if g.Board() != before {
		t.Error("Undo on fresh game changed the board")
	}
}

func TestRestart(t *testing.T) {
	g := New(testConfig(21))
	g.Load(Board{{1024, 1024, 0, 0}}, 5000)
	g.Move(DirLeft)

	g.Restart()

	if g.Score() != 0 || g.Moves() != 0 {
		t.Errorf("Restart score/moves = %d/%d, want 0/0", g.Score(), g.Moves())
	}
	if g.CanUndo() {
		t.Error("Restart should clear the undo snapshot")
	}
	if n := countTiles(g.Board()); n != 2 {
		t.Errorf("Restart left %d tiles, want 2", n)
	}
}

func TestMoveReportsGameOver(t *testing.T) {
	g := New(testConfig(8))
	g.Load(Board{
		{0, 8, 16, 32},
		{64, 128, 256, 512},
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
	}, 0)

	result := g.Move(DirLeft)

	if !result.Changed {
		t.Fatal("move should change the board")
	}
	if result.Spawned == nil || result.Spawned.X != 3 || result.Spawned.Y != 0 {
		t.Fatalf("spawn should fill the only empty cell, got %+v", result.Spawned)
	}
	if !result.GameOver || !g.IsGameOver() || g.HasValidMoves() {
		t.Error("board should be terminal after filling the last cell")
	}
	if snap := g.Snapshot(); snap.State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", snap.State)
	}

	// Undo is still allowed after game over.
	if !g.Undo() || g.IsGameOver() {
		t.Error("Undo after game over should restore a playable board")
	}
}

func TestScoreMonotonic(t *testing.T) {
	g := New(testConfig(2024))
	dirs := []Direction{DirLeft, DirDown, DirRight, DirUp, DirLeft, DirLeft}

	last := g.Score()
	for i := 0; i < 600 && !g.IsGameOver(); i++ {
		g.Move(dirs[i%len(dirs)])
		if g.Score() < last {
			t.Fatalf("score decreased from %d to %d at move %d", last, g.Score(), i)
		}
		last = g.Score()
	}
}

func TestBoardValuesStayPowersOfTwo(t *testing.T) {
	g := New(testConfig(77))
	dirs := []Direction{DirUp, DirLeft, DirDown, DirRight}

	for i := 0; i < 300 && !g.IsGameOver(); i++ {
		g.Move(dirs[(i*7)%len(dirs)])
		b := g.Board()
		for y := range BoardSize {
			for x := range BoardSize {
				if !isTileValue(b[y][x]) {
					t.Fatalf("cell (%d,%d) = %d is not a tile value", x, y, b[y][x])
				}
			}
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	g := New(testConfig(4))
	g.Load(Board{{0, 0, 0, 2}}, 0)

	result := g.Execute(core.CommandMoveLeft)
	if result.Command != core.CommandMoveLeft || !result.Changed {
		t.Errorf("Execute(MoveLeft) = %+v", result)
	}
	if g.Board()[0][0] != 2 {
		t.Errorf("tile should have moved to (0,0), board:\n%v", g.Board())
	}

	result = g.Execute(core.CommandUndo)
	if result.Command != core.CommandUndo || !result.Changed {
		t.Errorf("Execute(Undo) = %+v", result)
	}
	if g.Board() != (Board{{0, 0, 0, 2}}) {
		t.Errorf("Undo via Execute did not restore board:\n%v", g.Board())
	}

	before := g.Board()
	result = g.Execute(core.CommandNone)
	if result.Changed || g.Board() != before {
		t.Error("Execute(None) should not change anything")
	}

	g.Execute(core.CommandMoveRight)
	result = g.Execute(core.CommandRestart)
	if result.Command != core.CommandRestart || g.Score() != 0 || g.CanUndo() {
		t.Errorf("Execute(Restart) left score=%d canUndo=%v", g.Score(), g.CanUndo())
	}
}

func TestExecuteMapsDirections(t *testing.T) {
	tests := []struct {
		cmd  core.Command
		want Board
	}{
		{core.CommandMoveUp, Board{{0, 2, 0, 0}}},
		{core.CommandMoveDown, Board{{}, {}, {}, {0, 2, 0, 0}}},
		{core.CommandMoveLeft, Board{{}, {2, 0, 0, 0}}},
		{core.CommandMoveRight, Board{{}, {0, 0, 0, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			start := Board{{}, {0, 2, 0, 0}}
			slid, _, _ := Slide(start, directionFor(t, tt.cmd))
			if slid != tt.want {
				t.Errorf("slide %s = \n%v\nwant\n%v", tt.cmd, slid, tt.want)
			}

			g := New(testConfig(6))
			g.Load(start, 0)
			result := g.Execute(tt.cmd)
			if result.Command != tt.cmd || !result.Changed {
				t.Errorf("Execute(%s) = %+v", tt.cmd, result)
			}
			got := g.Board()
			got[result.Spawned.Y][result.Spawned.X] = 0
			if got != tt.want {
				t.Errorf("Execute(%s) board without spawn = \n%v\nwant\n%v", tt.cmd, got, tt.want)
			}
		})
	}
}

func directionFor(t *testing.T, cmd core.Command) Direction {
	t.Helper()
	switch cmd {
	case core.CommandMoveUp:
		return DirUp
	case core.CommandMoveDown:
		return DirDown
	case core.CommandMoveLeft:
		return DirLeft
	case core.CommandMoveRight:
		return DirRight
	}
	t.Fatalf("no direction for %s", cmd)
	return DirLeft
}

func TestSnapshot(t *testing.T) {
	g := New(testConfig(42))
	g.Load(Board{{2, 2, 0, 0}}, 0)
	g.Move(DirLeft)

	snap := g.Snapshot()

	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if snap.Score != 4 || snap.Moves != 1 {
		t.Errorf("Snapshot Score/Moves = %d/%d, want 4/1", snap.Score, snap.Moves)
	}
	if snap.MaxTile != 4 {
		t.Errorf("Snapshot MaxTile = %d, want 4", snap.MaxTile)
	}
	if !snap.CanUndo {
		t.Error("Snapshot CanUndo should be true after a move")
	}
	if snap.Board != g.Board() {
		t.Error("Snapshot Board should match the game board")
	}
}

func TestDirectionString(t *testing.T) {
	if DirUp.String() != "up" || DirRight.String() != "right" {
		t.Errorf("unexpected direction names %s %s", DirUp, DirRight)
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should be invalid")
	}
}

func TestLargestLoadableTilesMergeWithoutOverflow(t *testing.T) {
	board, err := ParseBoard(fmt.Sprintf("%d,%d,0,0/0,0,0,0/0,0,0,0/0,0,0,0", MaxTileValue, MaxTileValue))
	if err != nil {
		t.Fatalf("ParseBoard rejected MaxTileValue: %v", err)
	}

	g := New(testConfig(5))
	g.Load(board, MaxScore)
	result := g.Move(DirLeft)

	if got := g.Board()[0][0]; got != 2*MaxTileValue {
		t.Errorf("merged tile = %d, want %d", got, 2*MaxTileValue)
	}
	if result.ScoreGained != 2*MaxTileValue {
		t.Errorf("ScoreGained = %d, want %d", result.ScoreGained, 2*MaxTileValue)
	}
	if g.Score() != MaxScore+2*MaxTileValue {
		t.Errorf("Score = %d, want %d", g.Score(), MaxScore+2*MaxTileValue)
	}
}

func TestLoadClampsScore(t *testing.T) {
	g := New(testConfig(6))

	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{1234, 1234},
		{MaxScore, MaxScore},
		{math.MaxInt, MaxScore},
	}

	for _, tt := range tests {
		g.Load(Board{{2}}, tt.in)
		if g.Score() != tt.want {
			t.Errorf("Load(score=%d) gave %d, want %d", tt.in, g.Score(), tt.want)
		}
	}
}
