package session

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/yechan-k/rollball/internal/application/replay"
	"github.com/yechan-k/rollball/internal/application/state"
	"github.com/yechan-k/rollball/internal/application/system"
	"github.com/yechan-k/rollball/internal/domain/entity"
)

// InputSource supplies the per-tick input snapshot and timestep. Next
// returns false when the source is exhausted, which finishes the session.
type InputSource interface {
	Next() (system.InputState, float64, bool)
}

// RenderState is the read-only snapshot collaborators consume after each
// tick. The core never calls into a renderer; it only exposes this value.
type RenderState struct {
	Tick            int
	Position        mgl64.Vec2
	LinearVelocity  mgl64.Vec2
	AngularVelocity float64
	Orientation     float64
	Grounded        bool
	SurfaceID       string
	SurfaceKind     string
	SurfaceNormal   mgl64.Vec2
}

// Session drives one body through the world: it pulls input, runs the
// physics tick, folds the committed state into the determinism digest, and
// publishes the render snapshot.
type Session struct {
	world    *entity.World
	body     *entity.RigidBody
	physics  *system.PhysicsSystem
	source   InputSource
	recorder *replay.Recorder
	digest   *replay.StateDigest
	st       state.SessionState
	tick     int
}

// NewSession creates an idle session. Stepping starts it; an exhausted
// input source finishes it.
func NewSession(world *entity.World, body *entity.RigidBody, physics *system.PhysicsSystem, source InputSource) *Session {
	return &Session{
		world:   world,
		body:    body,
		physics: physics,
		source:  source,
		digest:  replay.NewStateDigest(),
		st:      state.StateIdle,
	}
}

// AttachRecorder records every stepped frame and state into rec.
func (s *Session) AttachRecorder(rec *replay.Recorder) {
	s.recorder = rec
}

// Step runs one tick. It returns false once the input source is exhausted
// and the session has finished.
func (s *Session) Step() bool {
	if s.st == state.StateFinished {
		return false
	}

	input, dt, ok := s.source.Next()
	if !ok {
		s.finish()
		return false
	}
	s.st = state.StateRunning

	s.physics.Tick(s.body, input, dt)
	s.tick++

	b := s.body
	s.digest.Fold(b.Position, b.LinearVelocity, b.AngularVelocity, b.Orientation, b.Grounded)
	if s.recorder != nil {
		s.recorder.RecordFrame(replay.RecordedInput{
			Left:  input.Left,
			Right: input.Right,
			Jump:  input.Jump,
		}, dt)
		s.recorder.RecordState(b.Position, b.LinearVelocity, b.AngularVelocity, b.Orientation, b.Grounded)
	}

	return true
}

// Run steps until the input source is exhausted and returns the number of
// ticks executed.
func (s *Session) Run() int {
	for s.Step() {
	}
	return s.tick
}

func (s *Session) finish() {
	s.st = state.StateFinished
	if s.recorder != nil {
		s.recorder.Stop()
	}
}

// Snapshot returns the committed state of the last tick.
func (s *Session) Snapshot() RenderState {
	b := s.body
	rs := RenderState{
		Tick:            s.tick,
		Position:        b.Position,
		LinearVelocity:  b.LinearVelocity,
		AngularVelocity: b.AngularVelocity,
		Orientation:     b.Orientation,
		Grounded:        b.Grounded,
	}
	if b.CurrentSurface != nil {
		rs.SurfaceID = b.CurrentSurface.SurfaceID
		rs.SurfaceKind = b.CurrentSurface.Kind.String()
		rs.SurfaceNormal = b.CurrentSurface.Normal
	}
	return rs
}

// Digest returns the fold of every committed tick so far.
func (s *Session) Digest() string {
	return s.digest.Sum()
}

// State returns the session lifecycle state.
func (s *Session) State() state.SessionState {
	return s.st
}

// Tick returns the number of ticks executed so far.
func (s *Session) Tick() int {
	return s.tick
}
