package entity

import "github.com/go-gl/mathgl/mgl64"

// World is the static geometry a session simulates against: the terrain
// height-field plus the fixed obstacle set. Immutable once built from
// configuration.
type World struct {
	Terrain   *HeightField
	Obstacles []Obstacle
	Spawn     mgl64.Vec2
}

// ObstacleByID returns the obstacle with the given id, or false when no such
// obstacle exists.
func (w *World) ObstacleByID(id string) (Obstacle, bool) {
	for _, o := range w.Obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return Obstacle{}, false
}

// ObstacleCount returns the number of obstacles in the set.
func (w *World) ObstacleCount() int {
	return len(w.Obstacles)
}
