package entity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TerrainSurfaceID identifies the height-field in contact results.
const TerrainSurfaceID = "terrain"

// SurfaceKind tags the collider variants the resolver dispatches over.
type SurfaceKind int

const (
	KindTerrain SurfaceKind = iota
	KindObstacle
)

// String returns the string representation of the surface kind
func (k SurfaceKind) String() string {
	switch k {
	case KindTerrain:
		return "terrain"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ObstacleType classifies a static box collider.
type ObstacleType int

const (
	ObstacleFloor ObstacleType = iota
	ObstaclePlatform
	ObstacleWall
	ObstacleStack
	ObstacleStair
)

// String returns the string representation of the obstacle type
func (t ObstacleType) String() string {
	switch t {
	case ObstacleFloor:
		return "floor"
	case ObstaclePlatform:
		return "platform"
	case ObstacleWall:
		return "wall"
	case ObstacleStack:
		return "stack"
	case ObstacleStair:
		return "stair"
	default:
		return "unknown"
	}
}

// ParseObstacleType maps a configuration tag to an ObstacleType.
// Unrecognized tags return an error; the world loader skips those entries.
func ParseObstacleType(tag string) (ObstacleType, error) {
	switch tag {
	case "floor":
		return ObstacleFloor, nil
	case "platform":
		return ObstaclePlatform, nil
	case "wall":
		return ObstacleWall, nil
	case "stack":
		return ObstacleStack, nil
	case "stair":
		return ObstacleStair, nil
	default:
		return 0, fmt.Errorf("unknown obstacle type %q", tag)
	}
}

// AllowsGrounded reports whether resting on this obstacle type may set the
// body's grounded flag. Walls never ground, even when touched from above.
func (t ObstacleType) AllowsGrounded() bool {
	return t != ObstacleWall
}

// SurfaceContact describes one candidate collision between the body and a
// surface. It is an ephemeral value produced by a surface query.
//
// Normal is unit length and points away from the surface into free space.
// Depth is signed: >= 0 means overlap, and moving the body by Normal·Depth
// removes the overlap exactly. A slightly negative Depth within the contact
// tolerance means touching without overlap.
type SurfaceContact struct {
	SurfaceID     string
	Kind          SurfaceKind
	ObstacleType  ObstacleType // valid only when Kind == KindObstacle
	Normal        mgl64.Vec2
	Depth         float64
	AllowGrounded bool
}

// IsVertical reports whether the contact is against a predominantly vertical
// face (side contact rather than top or bottom).
func (c SurfaceContact) IsVertical() bool {
	return math.Abs(c.Normal.X()) > math.Abs(c.Normal.Y())
}

// Ref converts the contact into the weak reference cached on the body.
func (c SurfaceContact) Ref() SurfaceRef {
	return SurfaceRef{
		SurfaceID:     c.SurfaceID,
		Kind:          c.Kind,
		ObstacleType:  c.ObstacleType,
		Normal:        c.Normal,
		AllowGrounded: c.AllowGrounded,
	}
}

// SurfaceRef is the body's borrowed reference to the surface it rests on:
// the surface id plus the cached contact normal. Obstacles outlive any tick,
// so the ref never owns the collider.
type SurfaceRef struct {
	SurfaceID     string
	Kind          SurfaceKind
	ObstacleType  ObstacleType
	Normal        mgl64.Vec2
	AllowGrounded bool
}

// Obstacle is an immutable axis-aligned box collider, built once from the
// world configuration.
type Obstacle struct {
	ID     string
	Type   ObstacleType
	Center mgl64.Vec2
	HalfW  float64
	HalfH  float64
}

// NewObstacle builds a box collider from its center and full extents.
func NewObstacle(id string, typ ObstacleType, center mgl64.Vec2, width, height float64) (Obstacle, error) {
	if width <= 0 || height <= 0 {
		return Obstacle{}, fmt.Errorf("obstacle %q: extents must be positive, got %gx%g", id, width, height)
	}
	return Obstacle{
		ID:     id,
		Type:   typ,
		Center: center,
		HalfW:  width / 2,
		HalfH:  height / 2,
	}, nil
}

// SurfaceInfo runs the closest-point circle-vs-box query. The query center is
// clamped into the box extents; the vector from the clamped point back to the
// center gives both the contact normal and the separation distance. One path
// covers top, bottom, side, and corner contacts.
//
// Returns false when the circle is farther than radius+tolerance from the box.
func (o *Obstacle) SurfaceInfo(center mgl64.Vec2, radius, tolerance float64) (SurfaceContact, bool) {
	closest := mgl64.Vec2{
		clamp(center.X(), o.Center.X()-o.HalfW, o.Center.X()+o.HalfW),
		clamp(center.Y(), o.Center.Y()-o.HalfH, o.Center.Y()+o.HalfH),
	}

	delta := center.Sub(closest)
	dist := delta.Len()
	if dist > radius+tolerance {
		return SurfaceContact{}, false
	}

	// Degenerate case: the center sits exactly on the boundary (or inside
	// the box), so the delta carries no direction. Fall back to straight up.
	normal := mgl64.Vec2{0, 1}
	if dist > 1e-9 {
		normal = delta.Mul(1 / dist)
	}

	return SurfaceContact{
		SurfaceID:     o.ID,
		Kind:          KindObstacle,
		ObstacleType:  o.Type,
		Normal:        normal,
		Depth:         radius - dist,
		AllowGrounded: o.Type.AllowsGrounded(),
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
