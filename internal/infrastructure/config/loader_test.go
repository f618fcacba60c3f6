package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/sim/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Body.Mass)
	assert.Equal(t, 0.5, cfg.Body.Radius)
	assert.Equal(t, 1.0, cfg.Gravity.Scale)
	assert.Equal(t, 0.04, cfg.Drag.Air)
	assert.Equal(t, 0.7, cfg.Input.AirControlDistribution)
	assert.Equal(t, 0.3, cfg.Contact.Restitution)
	assert.Equal(t, 0.05, cfg.Timestep.Max)
}

func TestLoader_LoadWorld(t *testing.T) {
	loader := NewLoader("../../../cmd/sim/configs")

	cfg, err := loader.LoadWorld("hills")
	require.NoError(t, err)

	assert.Equal(t, 200.0, cfg.Terrain.Width)
	assert.Equal(t, 100, cfg.Terrain.Samples)
	assert.NotEmpty(t, cfg.Obstacles)

	first := cfg.Obstacles[0]
	assert.Equal(t, "floor-1", first.ID)
	assert.Equal(t, "floor", first.Type)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/sim/configs")

	cfg, err := loader.LoadAll("flat")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.World)
}

func TestLoader_AppliesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json":     {Data: []byte(`{"body": {"mass": 2.0}}`)},
		"worlds/tiny.json": {Data: []byte(`{"spawn": {"x": 5, "y": 15}}`)},
	}
	loader := NewFSLoader(fsys, "configs")

	physics, err := loader.LoadPhysics()
	require.NoError(t, err)
	assert.Equal(t, 2.0, physics.Body.Mass)
	assert.Equal(t, 0.5, physics.Body.Radius)
	assert.Equal(t, 0.5, physics.Contact.Tolerance)
	assert.Equal(t, 0.6, physics.Contact.GroundedNormalY)
	assert.Equal(t, 4, physics.Resolver.Passes)
	assert.Equal(t, 1, physics.Resolver.Workers)

	world, err := loader.LoadWorld("tiny")
	require.NoError(t, err)
	assert.Equal(t, 5.0, world.Spawn.X)
	assert.Equal(t, 200.0, world.Terrain.Width)
	assert.Equal(t, 100, world.Terrain.Samples)
}

func TestLoader_RejectsBadPhysics(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json": {Data: []byte(`{"body": {"mass": -1.0}}`)},
	}
	loader := NewFSLoader(fsys, "configs")

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mass")
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "configs")

	_, err := loader.LoadPhysics()
	require.Error(t, err)

	_, err = loader.LoadWorld("nope")
	require.Error(t, err)
}
