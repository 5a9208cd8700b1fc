package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/t2048.yaml.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Spawn4Probability: 0.10,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		Theme: ThemeConfig{
			Empty:    TileStyle{Background: "#d3d3d3", Foreground: "#776e65"},
			Fallback: TileStyle{Background: "#3c3a32", Foreground: "#f9f6f2"},
			Tiles: map[int]TileStyle{
				2:    {Background: "#eee4da", Foreground: "#000000"},
				4:    {Background: "#ede0c8", Foreground: "#000000"},
				8:    {Background: "#f2b179", Foreground: "#000000"},
				16:   {Background: "#f59563", Foreground: "#000000"},
				32:   {Background: "#f67c5f", Foreground: "#000000"},
				64:   {Background: "#f65e3b", Foreground: "#000000"},
				128:  {Background: "#edcf72", Foreground: "#000000"},
				256:  {Background: "#edcc61", Foreground: "#000000"},
				512:  {Background: "#edc850", Foreground: "#000000"},
				1024: {Background: "#edc53f", Foreground: "#000000"},
				2048: {Background: "#edc22e", Foreground: "#000000"},
			},
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Undo:    []string{"z", "u"},
			Restart: []string{"r"},
			Help:    []string{"?"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}
