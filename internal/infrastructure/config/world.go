package config

// WorldConfig describes the static world a session simulates in: spawn
// position, terrain generation parameters, and the obstacle set. Loaded from
// worlds/<name>.json.
type WorldConfig struct {
	Spawn     PositionConfig   `json:"spawn"`
	Terrain   TerrainConfig    `json:"terrain"`
	Obstacles []ObstacleConfig `json:"obstacles"`
}

// PositionConfig is a 2D point in world units.
type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TerrainConfig drives deterministic height-field generation: a base height
// plus two summed sine components sampled across the width.
type TerrainConfig struct {
	StartX     float64 `json:"startX"`
	Width      float64 `json:"width"`
	Samples    int     `json:"samples"`
	BaseHeight float64 `json:"baseHeight"`
	Amplitude1 float64 `json:"amplitude1"`
	Frequency1 float64 `json:"frequency1"`
	Amplitude2 float64 `json:"amplitude2"`
	Frequency2 float64 `json:"frequency2"`
}

// ObstacleConfig is one axis-aligned box entry. X and Y are the box center.
// Unknown Type values are skipped with a warning at world build time.
type ObstacleConfig struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ApplyDefaults fills zero-valued terrain fields so a world file can omit
// the generation parameters and still get a usable surface.
func (c *WorldConfig) ApplyDefaults() {
	if c.Terrain.Width == 0 {
		c.Terrain.Width = 200.0
	}
	if c.Terrain.Samples == 0 {
		c.Terrain.Samples = 100
	}
}
