package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hudValueStyle = lipgloss.NewStyle().
			Bold(true)

	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2)
)

// RenderBoard draws the 4x4 grid. Every cell is a fixed-size block colored
// by its value; empty cells are blank.
func RenderBoard(board t2048.Board, theme Theme) string {
	rows := make([]string, t2048.BoardSize)
	for y := range t2048.BoardSize {
		cells := make([]string, 0, t2048.BoardSize*2-1)
		for x := range t2048.BoardSize {
			if x > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, renderTile(board[y][x], theme))
		}
		rows[y] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boardFrameStyle.Render(strings.Join(rows, "\n"))
}

func renderTile(value int, theme Theme) string {
	label := ""
	if value != 0 {
		label = fmt.Sprintf("%d", value)
	}
	return theme.TileStyle(value).Render(label)
}

// renderHUD draws the title and the score line.
func renderHUD(score, best, moves int) string {
	item := func(label string, value int) string {
		return hudLabelStyle.Render(label+" ") + hudValueStyle.Render(FormatScore(value))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("2 0 4 8"),
		strings.Join([]string{
			item("Score", score),
			item("Best", best),
			item("Moves", moves),
		}, "   "),
	)
}

// renderGameOver draws the terminal-state banner.
func renderGameOver(keys KeyMap) string {
	hint := fmt.Sprintf("%s: %s  %s: %s",
		keys.Restart.Help().Key, keys.Restart.Help().Desc,
		keys.Undo.Help().Key, keys.Undo.Help().Desc,
	)
	return gameOverStyle.Render("GAME OVER") + "\n" + hudLabelStyle.Render(hint)
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
