package config

// PhysicsConfig is the root config for physics.json. Every tuning constant
// of the simulation lives here so nothing is hardcoded in the tick path.
type PhysicsConfig struct {
	Body     BodyConfig     `json:"body"`
	Gravity  GravityConfig  `json:"gravity"`
	Drag     DragConfig     `json:"drag"`
	Input    InputConfig    `json:"input"`
	Jump     JumpConfig     `json:"jump"`
	Contact  ContactConfig  `json:"contact"`
	Timestep TimestepConfig `json:"timestep"`
	Resolver ResolverConfig `json:"resolver"`
}

// BodyConfig sets the sphere's immutable mass properties.
type BodyConfig struct {
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
}

// GravityConfig scales the standard gravity constant.
type GravityConfig struct {
	Scale float64 `json:"scale"`
}

// DragConfig holds the quadratic drag coefficients. Air drag always applies;
// ground drag only while grounded; angular drag only while airborne.
type DragConfig struct {
	Air     float64 `json:"air"`
	Ground  float64 `json:"ground"`
	Angular float64 `json:"angular"`
}

// InputConfig tunes player authority. AirControlDistribution is the fraction
// of input torque kept as rotation while airborne; the remainder becomes a
// direct lateral force.
type InputConfig struct {
	TorqueMagnitude        float64 `json:"torqueMagnitude"`
	AirControlDistribution float64 `json:"airControlDistribution"`
}

// JumpConfig sets the jump impulse strength along the surface normal.
type JumpConfig struct {
	Force float64 `json:"force"`
}

// ContactConfig tunes collision response. Tolerance widens the contact query
// band; GroundedNormalY is the minimum normal.y for a surface to count as
// ground.
type ContactConfig struct {
	Restitution       float64 `json:"restitution"`
	Friction          float64 `json:"friction"`
	RollingCorrection float64 `json:"rollingCorrection"`
	Tolerance         float64 `json:"tolerance"`
	GroundedNormalY   float64 `json:"groundedNormalY"`
}

// TimestepConfig bounds the per-tick dt. Oversized timesteps (a stalled
// host) are clamped to Max instead of tunneling through thin geometry.
type TimestepConfig struct {
	Max float64 `json:"max"`
}

// ResolverConfig tunes contact aggregation: Passes bounds the sequential
// resolve/re-query loop, Workers > 1 fans obstacle queries out in parallel.
type ResolverConfig struct {
	Passes  int `json:"passes"`
	Workers int `json:"workers"`
}

// ApplyDefaults fills zero-valued fields with the canonical defaults so a
// sparse physics.json still yields a runnable simulation.
func (c *PhysicsConfig) ApplyDefaults() {
	if c.Body.Mass == 0 {
		c.Body.Mass = 1.0
	}
	if c.Body.Radius == 0 {
		c.Body.Radius = 0.5
	}
	if c.Gravity.Scale == 0 {
		c.Gravity.Scale = 1.0
	}
	if c.Drag.Air == 0 {
		c.Drag.Air = 0.04
	}
	if c.Drag.Ground == 0 {
		c.Drag.Ground = 0.08
	}
	if c.Drag.Angular == 0 {
		c.Drag.Angular = 0.05
	}
	if c.Input.TorqueMagnitude == 0 {
		c.Input.TorqueMagnitude = 1.5
	}
	if c.Input.AirControlDistribution == 0 {
		c.Input.AirControlDistribution = 0.7
	}
	if c.Jump.Force == 0 {
		c.Jump.Force = 420.0
	}
	if c.Contact.Restitution == 0 {
		c.Contact.Restitution = 0.3
	}
	if c.Contact.Friction == 0 {
		c.Contact.Friction = 8.0
	}
	if c.Contact.RollingCorrection == 0 {
		c.Contact.RollingCorrection = 30.0
	}
	if c.Contact.Tolerance == 0 {
		c.Contact.Tolerance = 0.5
	}
	if c.Contact.GroundedNormalY == 0 {
		c.Contact.GroundedNormalY = 0.6
	}
	if c.Timestep.Max == 0 {
		c.Timestep.Max = 0.05
	}
	if c.Resolver.Passes == 0 {
		c.Resolver.Passes = 4
	}
	if c.Resolver.Workers == 0 {
		c.Resolver.Workers = 1
	}
}
