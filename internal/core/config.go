package core

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// RuntimeConfig contains configuration passed to the engine at creation.
type RuntimeConfig struct {
	Seed       int64   // RNG seed for deterministic spawns
	Spawn4Prob float64 // Probability of spawning a 4; 0 means DefaultSpawn4Prob
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:       0, // 0 means use current time in platform layer
		Spawn4Prob: DefaultSpawn4Prob,
	}
}
