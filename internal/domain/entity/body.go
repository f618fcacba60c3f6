package entity

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Construction errors for invalid mass properties.
var (
	ErrNonPositiveMass   = errors.New("mass must be positive")
	ErrNonPositiveRadius = errors.New("radius must be positive")
)

// RigidBody is the rolling sphere the simulation advances each tick.
// Mass properties are fixed at construction; the kinematic state and the
// contact flags are mutated by the physics system every tick.
type RigidBody struct {
	Position        mgl64.Vec2
	LinearVelocity  mgl64.Vec2
	AngularVelocity float64 // rad/s about the z axis
	Orientation     float64 // radians

	Mass            float64
	Radius          float64
	MomentOfInertia float64 // (2/5)·m·r² for a solid sphere

	// Grounded is a per-tick classification, recomputed by the collision
	// responder; it is never latched across ticks.
	Grounded bool

	// CurrentSurface is the surface the body rests on this tick, nil when
	// airborne. It caches the contact normal and id, it does not own the
	// collider.
	CurrentSurface *SurfaceRef
}

// NewRigidBody creates a body at the given spawn position with zero velocity.
// Non-positive mass or radius is rejected here so the tick path never has to
// guard against division by zero.
func NewRigidBody(spawn mgl64.Vec2, mass, radius float64) (*RigidBody, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveMass, mass)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveRadius, radius)
	}

	return &RigidBody{
		Position:        spawn,
		Mass:            mass,
		Radius:          radius,
		MomentOfInertia: 0.4 * mass * radius * radius,
	}, nil
}

// ClearContact resets the per-tick contact classification.
func (b *RigidBody) ClearContact() {
	b.Grounded = false
	b.CurrentSurface = nil
}

// SetContact records a qualifying resting contact for this tick.
func (b *RigidBody) SetContact(ref SurfaceRef) {
	b.Grounded = true
	b.CurrentSurface = &ref
}
