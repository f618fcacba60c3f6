package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// SimConfig holds all loaded configurations.
type SimConfig struct {
	Physics *PhysicsConfig
	World   *WorldConfig
}

// Loader loads simulation configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json and applies defaults for omitted fields.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	cfg.ApplyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid physics.json: %w", err)
	}
	return &cfg, nil
}

// LoadWorld loads a world JSON file by name from the worlds/ subdirectory.
func (l *Loader) LoadWorld(name string) (*WorldConfig, error) {
	path := "worlds/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world %s: %w", name, err)
	}

	var cfg WorldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world %s: %w", name, err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// LoadAll loads physics.json plus the named world.
func (l *Loader) LoadAll(world string) (*SimConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	worldCfg, err := l.LoadWorld(world)
	if err != nil {
		return nil, err
	}

	return &SimConfig{
		Physics: physics,
		World:   worldCfg,
	}, nil
}

func (c *PhysicsConfig) validate() error {
	if c.Body.Mass <= 0 {
		return fmt.Errorf("body.mass must be positive, got %g", c.Body.Mass)
	}
	if c.Body.Radius <= 0 {
		return fmt.Errorf("body.radius must be positive, got %g", c.Body.Radius)
	}
	if c.Timestep.Max <= 0 {
		return fmt.Errorf("timestep.max must be positive, got %g", c.Timestep.Max)
	}
	if c.Resolver.Passes < 1 {
		return fmt.Errorf("resolver.passes must be at least 1, got %d", c.Resolver.Passes)
	}
	if c.Resolver.Workers < 1 {
		return fmt.Errorf("resolver.workers must be at least 1, got %d", c.Resolver.Workers)
	}
	return nil
}
