package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestField(t *testing.T, xs, hs []float64) *HeightField {
	t.Helper()
	f, err := NewHeightField(xs, hs)
	require.NoError(t, err)
	return f
}

func TestNewHeightField_Validation(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		hs   []float64
	}{
		{name: "too few samples", xs: []float64{0}, hs: []float64{5}},
		{name: "mismatched lengths", xs: []float64{0, 10}, hs: []float64{5}},
		{name: "non increasing x", xs: []float64{0, 10, 10}, hs: []float64{1, 2, 3}},
		{name: "decreasing x", xs: []float64{0, 10, 5}, hs: []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHeightField(tt.xs, tt.hs)
			assert.Error(t, err)
		})
	}
}

func TestHeightField_HeightAt_Interpolation(t *testing.T) {
	// Segments: flat from (0,10) to (100,10), then rising to (200,60).
	f := createTestField(t, []float64{0, 100, 200}, []float64{10, 10, 60})

	tests := []struct {
		name       string
		x          float64
		wantHeight float64
	}{
		{name: "left sample", x: 0, wantHeight: 10},
		{name: "middle of flat segment", x: 50, wantHeight: 10},
		{name: "segment boundary", x: 100, wantHeight: 10},
		{name: "quarter of slope", x: 125, wantHeight: 22.5},
		{name: "middle of slope", x: 150, wantHeight: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n := f.HeightAt(tt.x)
			assert.InDelta(t, tt.wantHeight, h, 1e-12)
			assert.InDelta(t, 1.0, n.Len(), 1e-12, "normal stays unit length")
			assert.GreaterOrEqual(t, n.Y(), 0.0, "normal faces upward")
		})
	}
}

func TestHeightField_HeightAt_SlopeNormal(t *testing.T) {
	// 3-4-5 slope: dx=40, dh=30 gives normal (-30,40)/50 = (-0.6, 0.8).
	f := createTestField(t, []float64{0, 40}, []float64{0, 30})

	_, n := f.HeightAt(20)
	assert.InDelta(t, -0.6, n.X(), 1e-12)
	assert.InDelta(t, 0.8, n.Y(), 1e-12)
}

func TestHeightField_HeightAt_EdgeClamp(t *testing.T) {
	f := createTestField(t, []float64{0, 100}, []float64{10, 40})

	h, n := f.HeightAt(-50)
	assert.Equal(t, 10.0, h, "before the first sample clamps to it")
	assert.Equal(t, mgl64.Vec2{0, 1}, n)

	h, n = f.HeightAt(250)
	assert.Equal(t, 40.0, h, "past the last sample clamps to it")
	assert.Equal(t, mgl64.Vec2{0, 1}, n)
}

func TestGenerateHeightField_Deterministic(t *testing.T) {
	params := TerrainParams{
		StartX:     -400,
		Width:      800,
		Samples:    64,
		BaseHeight: 20,
		Amplitude1: 12,
		Frequency1: 0.02,
		Amplitude2: 5,
		Frequency2: 0.09,
	}

	a, err := GenerateHeightField(params)
	require.NoError(t, err)
	b, err := GenerateHeightField(params)
	require.NoError(t, err)

	assert.Equal(t, a.MinX(), b.MinX())
	assert.Equal(t, a.MaxX(), b.MaxX())
	for x := -400.0; x <= 400.0; x += 13.7 {
		ha, _ := a.HeightAt(x)
		hb, _ := b.HeightAt(x)
		assert.Equal(t, ha, hb, "same parameters must produce the same terrain")
	}

	// Sample points carry the exact two-sine sum.
	h, _ := a.HeightAt(-400)
	want := 20 + 12*math.Sin(-400*0.02) + 5*math.Sin(-400*0.09)
	assert.InDelta(t, want, h, 1e-12)
}

func TestGenerateHeightField_Validation(t *testing.T) {
	_, err := GenerateHeightField(TerrainParams{Width: 100, Samples: 0})
	assert.Error(t, err, "at least one segment required")

	_, err = GenerateHeightField(TerrainParams{Width: 0, Samples: 8})
	assert.Error(t, err, "width must be positive")
}

func TestHeightField_SurfaceInfo(t *testing.T) {
	// Flat terrain at height 10.
	f := createTestField(t, []float64{-100, 100}, []float64{10, 10})

	t.Run("resting overlap", func(t *testing.T) {
		contact, ok := f.SurfaceInfo(mgl64.Vec2{0, 16}, 8, 0.5)
		require.True(t, ok)
		assert.Equal(t, TerrainSurfaceID, contact.SurfaceID)
		assert.Equal(t, KindTerrain, contact.Kind)
		assert.Equal(t, mgl64.Vec2{0, 1}, contact.Normal)
		assert.InDelta(t, 2.0, contact.Depth, 1e-12)
		assert.True(t, contact.AllowGrounded)
	})

	t.Run("clear of the surface", func(t *testing.T) {
		_, ok := f.SurfaceInfo(mgl64.Vec2{0, 30}, 8, 0.5)
		assert.False(t, ok)
	})

	t.Run("perpendicular distance on a slope", func(t *testing.T) {
		// 45° slope: vertical gap of 10 is a perpendicular gap of 10/√2.
		slope := createTestField(t, []float64{0, 100}, []float64{0, 100})
		contact, ok := slope.SurfaceInfo(mgl64.Vec2{50, 60}, 8, 0.5)
		require.True(t, ok)
		perp := 10 / math.Sqrt2
		assert.InDelta(t, 8-perp, contact.Depth, 1e-12)
		assert.InDelta(t, -1/math.Sqrt2, contact.Normal.X(), 1e-12)
		assert.InDelta(t, 1/math.Sqrt2, contact.Normal.Y(), 1e-12)
	})
}
