package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Tile cell dimensions in terminal columns/rows.
const (
	tileWidth  = 7
	tileHeight = 3
)

// Theme maps tile values to lipgloss styles.
type Theme struct {
	empty    lipgloss.Style
	fallback lipgloss.Style
	tiles    map[int]lipgloss.Style
}

// NewTheme builds tile styles from configuration.
func NewTheme(cfg config.ThemeConfig) Theme {
	t := Theme{
		empty:    tileStyle(cfg.Empty),
		fallback: tileStyle(cfg.Fallback).Bold(true),
		tiles:    make(map[int]lipgloss.Style, len(cfg.Tiles)),
	}
	for value, s := range cfg.Tiles {
		t.tiles[value] = tileStyle(s).Bold(true)
	}
	return t
}

// DefaultTheme returns the built-in tile colors.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultConfig().Theme)
}

func tileStyle(s config.TileStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Background)).
		Foreground(lipgloss.Color(s.Foreground)).
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center)
}

// TileStyle returns the style for a cell value. Zero is the empty cell;
// values without a configured color use the fallback style.
func (t Theme) TileStyle(value int) lipgloss.Style {
	if value == 0 {
		return t.empty
	}
	if s, ok := t.tiles[value]; ok {
		return s
	}
	return t.fallback
}

// HasColor reports whether value has its own configured color.
func (t Theme) HasColor(value int) bool {
	_, ok := t.tiles[value]
	return ok
}
