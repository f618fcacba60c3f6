package session

import (
	"github.com/yechan-k/rollball/internal/application/replay"
	"github.com/yechan-k/rollball/internal/application/system"
)

// ScriptedSource adapts a keyframed input script to the InputSource
// interface, stepping at a fixed timestep.
type ScriptedSource struct {
	script *system.Script
	dt     float64
	tick   int
}

// NewScriptedSource creates a source that plays the script at dt seconds
// per tick.
func NewScriptedSource(script *system.Script, dt float64) *ScriptedSource {
	return &ScriptedSource{script: script, dt: dt}
}

// Next returns the scripted input for the current tick.
func (s *ScriptedSource) Next() (system.InputState, float64, bool) {
	input, ok := s.script.InputAt(s.tick)
	if !ok {
		return system.InputState{}, 0, false
	}
	s.tick++
	return input, s.dt, true
}

// ReplaySource feeds a recording's frames back as session input, including
// each frame's original timestep.
type ReplaySource struct {
	replayer *replay.Replayer
}

// NewReplaySource creates a source playing back the given recording.
func NewReplaySource(replayer *replay.Replayer) *ReplaySource {
	return &ReplaySource{replayer: replayer}
}

// Next returns the next recorded frame's input and dt.
func (s *ReplaySource) Next() (system.InputState, float64, bool) {
	f, ok := s.replayer.Next()
	if !ok {
		return system.InputState{}, 0, false
	}
	return system.InputState{Left: f.L, Right: f.R, Jump: f.J}, f.DT, true
}
