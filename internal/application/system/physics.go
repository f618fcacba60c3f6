package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/yechan-k/rollball/internal/domain/entity"
	"github.com/yechan-k/rollball/internal/infrastructure/config"
)

// StandardGravity is the baseline gravitational acceleration in m/s²,
// scaled by the configured gravity scale.
const StandardGravity = 9.8

// Penetrations shallower than this are treated as resting contact during
// the sequential resolve loop, not corrected again.
const restDepthEpsilon = 1e-6

// groundedDepthSlack is how far outside the surface a contact may sit and
// still count as resting on it. Resting contact jitters a hair above zero
// depth; a body that just jumped clears this band within one tick.
const groundedDepthSlack = 0.01

// PhysicsSystem advances the ball one tick at a time: force accumulation,
// semi-implicit Euler integration, then collision resolution against the
// contacts the resolver reports at the predicted position.
//
// Sign conventions: positive angular velocity rolls the ball leftward, so
// rightward input applies negative torque and the no-slip relation is
// vx = -ω·r. The orientation decreases with positive angular velocity to
// keep the visual roll matching the travel direction.
type PhysicsSystem struct {
	config   *config.PhysicsConfig
	resolver *SurfaceResolver
}

// NewPhysicsSystem creates a physics system bound to its tuning config and
// surface resolver. The resolver is injected here; the tick path never
// reaches into globals.
func NewPhysicsSystem(cfg *config.PhysicsConfig, resolver *SurfaceResolver) *PhysicsSystem {
	return &PhysicsSystem{
		config:   cfg,
		resolver: resolver,
	}
}

// Tick runs one full accumulate → integrate → resolve pass. dt == 0 is a
// no-op; dt above the configured maximum is clamped to keep a stalled host
// from tunneling the ball through thin geometry.
func (s *PhysicsSystem) Tick(body *entity.RigidBody, input InputState, dt float64) {
	if dt <= 0 {
		return
	}
	if dt > s.config.Timestep.Max {
		dt = s.config.Timestep.Max
	}

	force, torque, jumped := s.accumulate(body, input)
	predicted := s.integrate(body, force, torque, dt)
	s.resolve(body, predicted, jumped, dt)
}

// accumulate computes this tick's net force and torque from gravity, drag,
// and input. A jump converts the held jump key into a one-shot impulse force
// along the resting surface normal and clears the grounded state; the
// returned flag suppresses re-grounding in the same tick.
func (s *PhysicsSystem) accumulate(body *entity.RigidBody, input InputState) (mgl64.Vec2, float64, bool) {
	cfg := s.config
	v := body.LinearVelocity
	speed := v.Len()

	force := mgl64.Vec2{0, -StandardGravity * cfg.Gravity.Scale * body.Mass}

	// Quadratic air drag opposes motion at any speed.
	force = force.Sub(v.Mul(cfg.Drag.Air * speed))
	if body.Grounded {
		force = force.Sub(v.Mul(cfg.Drag.Ground * speed))
	}

	var torque float64
	dir := 0.0
	if input.Left {
		dir += 1
	}
	if input.Right {
		dir -= 1
	}
	if dir != 0 {
		if body.Grounded {
			torque += dir * cfg.Input.TorqueMagnitude
		} else {
			// Reduced rotational authority in the air: the configured
			// fraction stays as torque, the rest becomes lateral thrust.
			torque += dir * cfg.Input.TorqueMagnitude * cfg.Input.AirControlDistribution
			lateral := (1 - cfg.Input.AirControlDistribution) * cfg.Input.TorqueMagnitude / body.Radius
			force = force.Add(mgl64.Vec2{-dir * lateral, 0})
		}
	}

	if !body.Grounded {
		w := body.AngularVelocity
		torque -= cfg.Drag.Angular * w * abs(w)
	}

	jumped := false
	if input.Jump && body.Grounded && body.CurrentSurface != nil {
		force = force.Add(body.CurrentSurface.Normal.Mul(cfg.Jump.Force))
		body.ClearContact()
		jumped = true
	}

	return force, torque, jumped
}

// integrate advances velocity, angular velocity, and orientation by
// semi-implicit Euler, and returns the predicted position. The position is
// committed only after collision resolution.
func (s *PhysicsSystem) integrate(body *entity.RigidBody, force mgl64.Vec2, torque, dt float64) mgl64.Vec2 {
	body.LinearVelocity = body.LinearVelocity.Add(force.Mul(dt / body.Mass))
	body.AngularVelocity += torque / body.MomentOfInertia * dt
	body.Orientation -= body.AngularVelocity * dt

	return body.Position.Add(body.LinearVelocity.Mul(dt))
}

// resolve queries the world at the predicted position and applies the
// collision response: exact penetration correction, normal impulse with
// restitution, grounded classification, and rolling reconciliation for
// top-facing resting contacts. Contacts resolve deepest-first with a
// re-query between passes so corner and wedge cases converge.
func (s *PhysicsSystem) resolve(body *entity.RigidBody, predicted mgl64.Vec2, jumped bool, dt float64) {
	cfg := s.config
	pos := predicted
	if !jumped {
		body.ClearContact()
	}

	contacts := s.resolver.Contacts(pos, body.Radius)
	if len(contacts) == 0 {
		// Free flight: the predicted state stands.
		body.Position = pos
		return
	}

	for pass := 0; pass < cfg.Resolver.Passes && len(contacts) > 0; pass++ {
		c := contacts[0]

		// Correction and impulse only act on true overlap. Contacts in the
		// negative-depth tolerance band are close-but-separated: bouncing
		// off those would leave the ball hovering above the surface.
		if c.Depth > 0 {
			pos = pos.Add(c.Normal.Mul(c.Depth))

			vn := body.LinearVelocity.Dot(c.Normal)
			if vn < 0 {
				// j = -(1+e)·vn·m, applied as Δv = n·(j/m).
				body.LinearVelocity = body.LinearVelocity.Add(c.Normal.Mul(-(1 + cfg.Contact.Restitution) * vn))
			}
		}

		grounding := !jumped && c.AllowGrounded &&
			c.Normal.Y() > cfg.Contact.GroundedNormalY &&
			c.Depth > -groundedDepthSlack
		if grounding {
			body.SetContact(c.Ref())
			s.reconcileRolling(body, c.Normal, dt)
		}

		// Re-query at the corrected position; only remaining overlaps need
		// further passes.
		contacts = overlapping(s.resolver.Contacts(pos, body.Radius))
	}

	body.Position = pos
}

// reconcileRolling drives the contact-tangential linear speed and the
// angular velocity toward the no-slip relation. The linear side gets a
// friction-proportional impulse; the angular side is a damped feedback
// correction rather than a hard snap.
func (s *PhysicsSystem) reconcileRolling(body *entity.RigidBody, normal mgl64.Vec2, dt float64) {
	cfg := s.config

	// Normal rotated -90°: on flat ground (0,1) this is +x.
	tangent := mgl64.Vec2{normal.Y(), -normal.X()}

	desired := -body.AngularVelocity * body.Radius
	current := body.LinearVelocity.Dot(tangent)
	impulse := (desired - current) * cfg.Contact.Friction * dt
	body.LinearVelocity = body.LinearVelocity.Add(tangent.Mul(impulse))

	current = body.LinearVelocity.Dot(tangent)
	body.AngularVelocity += cfg.Contact.RollingCorrection * (-current/body.Radius - body.AngularVelocity) * dt
}

// overlapping filters a contact list down to actual penetrations.
func overlapping(contacts []entity.SurfaceContact) []entity.SurfaceContact {
	out := contacts[:0]
	for _, c := range contacts {
		if c.Depth > restDepthEpsilon {
			out = append(out, c)
		}
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
