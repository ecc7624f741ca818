package config

import "sync"

// WorldGenSettings holds world generation configuration that a caller
// may want to change between world loads without rebuilding the whole
// config surface.
type WorldGenSettings struct {
	mu       sync.RWMutex
	seed     int64
	seaLevel int
	caves    bool
}

var globalWorldGenSettings = &WorldGenSettings{
	seed:     1,
	seaLevel: 64,
	caves:    true,
}

// GetWorldSeed returns the configured world seed.
func GetWorldSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetWorldSeed sets the world seed. Takes effect on the next world load.
func SetWorldSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}

// GetSeaLevel returns the configured sea level.
func GetSeaLevel() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seaLevel
}

// SetSeaLevel sets the sea level.
func SetSeaLevel(level int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seaLevel = level
}

// GetCaves returns whether cave carving is enabled.
func GetCaves() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.caves
}

// SetCaves sets whether cave carving is enabled.
func SetCaves(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.caves = enabled
}
