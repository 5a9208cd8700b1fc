// Package config provides YAML-based configuration loading for the game:
// spawn odds, score storage, logging, tile colors and key bindings.
package config

import (
	"errors"
	"fmt"
	"math/bits"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Theme   ThemeConfig   `yaml:"theme"`
	Keys    KeysConfig    `yaml:"keys"`
}

// GameConfig defines engine parameters.
type GameConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Chance a spawned tile is a 4 (0.0-1.0]
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LoggingConfig defines log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging during play
}

// TileStyle is a pair of terminal colors: "#rrggbb", "#rgb" or an ANSI
// 256-color index.
type TileStyle struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// ThemeConfig maps tile values to colors. Values missing from Tiles are
// drawn with Fallback.
type ThemeConfig struct {
	Empty    TileStyle         `yaml:"empty"`
	Fallback TileStyle         `yaml:"fallback"`
	Tiles    map[int]TileStyle `yaml:"tiles"`
}

// KeysConfig lists the key names bound to each command, as reported by
// Bubble Tea (e.g. "up", "w", "ctrl+c").
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Undo    []string `yaml:"undo"`
	Restart []string `yaml:"restart"`
	Help    []string `yaml:"help"`
	Quit    []string `yaml:"quit"`
}

// Runtime builds the engine configuration for the given seed.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:       seed,
		Spawn4Prob: c.Game.Spawn4Probability,
	}
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validColor accepts hex colors and ANSI 256-color indexes.
func validColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error

	if p := c.Game.Spawn4Probability; p <= 0 || p > 1 {
		errs = append(errs, fmt.Errorf("game.spawn4_probability must be in (0, 1], got %v", p))
	}

	if strings.TrimSpace(c.Storage.DBPath) == "" {
		errs = append(errs, errors.New("storage.db_path must not be empty"))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("logging.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Logging.Level))
	}

	errs = append(errs, validateStyle("theme.empty", c.Theme.Empty)...)
	errs = append(errs, validateStyle("theme.fallback", c.Theme.Fallback)...)
	for value, style := range c.Theme.Tiles {
		if value < 2 || bits.OnesCount(uint(value)) != 1 {
			errs = append(errs, fmt.Errorf("theme.tiles: %d is not a tile value", value))
			continue
		}
		errs = append(errs, validateStyle(fmt.Sprintf("theme.tiles.%d", value), style)...)
	}

	errs = append(errs, c.Keys.validate()...)

	return errors.Join(errs...)
}

func validateStyle(name string, s TileStyle) []error {
	var errs []error
	if !validColor(s.Background) {
		errs = append(errs, fmt.Errorf("%s.background: invalid color %q", name, s.Background))
	}
	if !validColor(s.Foreground) {
		errs = append(errs, fmt.Errorf("%s.foreground: invalid color %q", name, s.Foreground))
	}
	return errs
}

// validate checks that every command has a key and no key is bound twice.
func (k KeysConfig) validate() []error {
	var errs []error
	owner := make(map[string]string)

	for _, b := range []struct {
		name string
		keys []string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"undo", k.Undo},
		{"restart", k.Restart},
		{"help", k.Help},
		{"quit", k.Quit},
	} {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must list at least one key", b.name))
			continue
		}
		for _, key := range b.keys {
			if prev, ok := owner[key]; ok {
				errs = append(errs, fmt.Errorf("keys: %q is bound to both %s and %s", key, prev, b.name))
				continue
			}
			owner[key] = b.name
		}
	}

	return errs
}
