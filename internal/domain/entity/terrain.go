package entity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrBadSamples is returned when height-field samples are not strictly
// increasing in x.
var ErrBadSamples = errors.New("height samples must be strictly increasing in x")

// TerrainParams drives deterministic height-field generation: the surface is
// a base height plus two summed sine components sampled across the width.
type TerrainParams struct {
	StartX     float64
	Width      float64
	Samples    int // number of segments; Samples+1 points are generated
	BaseHeight float64
	Amplitude1 float64
	Frequency1 float64
	Amplitude2 float64
	Frequency2 float64
}

// HeightField is the piecewise-linear terrain surface: ordered (x, height)
// samples queried by linear interpolation. Immutable after construction.
type HeightField struct {
	xs []float64
	hs []float64
}

// NewHeightField builds a height field from explicit sample points.
// The x values must be strictly increasing and at least two points are
// required to form a segment.
func NewHeightField(xs, hs []float64) (*HeightField, error) {
	if len(xs) < 2 || len(xs) != len(hs) {
		return nil, fmt.Errorf("need at least two matched samples, got %d/%d", len(xs), len(hs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%g after x[%d]=%g", ErrBadSamples, i, xs[i], i-1, xs[i-1])
		}
	}

	f := &HeightField{
		xs: make([]float64, len(xs)),
		hs: make([]float64, len(hs)),
	}
	copy(f.xs, xs)
	copy(f.hs, hs)
	return f, nil
}

// GenerateHeightField samples the two-sine surface described by p.
// Generation is deterministic: the same parameters always produce the same
// terrain.
func GenerateHeightField(p TerrainParams) (*HeightField, error) {
	if p.Samples < 1 {
		return nil, fmt.Errorf("terrain needs at least one segment, got %d", p.Samples)
	}
	if p.Width <= 0 {
		return nil, fmt.Errorf("terrain width must be positive, got %g", p.Width)
	}

	n := p.Samples + 1
	xs := make([]float64, n)
	hs := make([]float64, n)
	step := p.Width / float64(p.Samples)
	for i := 0; i < n; i++ {
		x := p.StartX + float64(i)*step
		xs[i] = x
		hs[i] = p.BaseHeight +
			p.Amplitude1*math.Sin(x*p.Frequency1) +
			p.Amplitude2*math.Sin(x*p.Frequency2)
	}
	return NewHeightField(xs, hs)
}

// MinX returns the x of the first sample.
func (f *HeightField) MinX() float64 { return f.xs[0] }

// MaxX returns the x of the last sample.
func (f *HeightField) MaxX() float64 { return f.xs[len(f.xs)-1] }

// HeightAt returns the interpolated surface height at x and the upward-facing
// unit normal of the segment under x. Queries outside the sampled range clamp
// to the edge sample and report a straight-up normal.
func (f *HeightField) HeightAt(x float64) (float64, mgl64.Vec2) {
	up := mgl64.Vec2{0, 1}
	if x <= f.xs[0] {
		return f.hs[0], up
	}
	last := len(f.xs) - 1
	if x >= f.xs[last] {
		return f.hs[last], up
	}

	// Index of the first sample strictly right of x; the segment is [i-1, i].
	i := sort.SearchFloat64s(f.xs, x)
	if f.xs[i] == x && i < last {
		i++
	}
	x0, x1 := f.xs[i-1], f.xs[i]
	h0, h1 := f.hs[i-1], f.hs[i]

	t := (x - x0) / (x1 - x0)
	h := h0 + t*(h1-h0)

	// Perpendicular of the segment direction (dx, dh), oriented upward.
	// dx > 0 always holds, so the y component stays non-negative.
	dx := x1 - x0
	dh := h1 - h0
	n := mgl64.Vec2{-dh, dx}
	return h, n.Mul(1 / n.Len())
}

// SurfaceInfo runs the circle-vs-terrain query at the body center. The
// separation is the perpendicular distance from the center to the segment
// line under it, so correcting by Normal·Depth removes an overlap exactly.
//
// Returns false when the circle is farther than radius+tolerance above the
// surface.
func (f *HeightField) SurfaceInfo(center mgl64.Vec2, radius, tolerance float64) (SurfaceContact, bool) {
	h, n := f.HeightAt(center.X())
	dist := (center.Y() - h) * n.Y()
	if dist > radius+tolerance {
		return SurfaceContact{}, false
	}

	return SurfaceContact{
		SurfaceID:     TerrainSurfaceID,
		Kind:          KindTerrain,
		Normal:        n,
		Depth:         radius - dist,
		AllowGrounded: true,
	}, true
}
