package system

// InputState holds one tick's input snapshot. The physics core treats it as
// read-only; producing it from an actual device is the job of an external
// collaborator.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// ScriptKeyframe holds the input from tick From (inclusive) until the next
// keyframe takes over.
type ScriptKeyframe struct {
	From  int
	Input InputState
}

// Script is a deterministic keyframed input sequence, used by demos and
// tests in place of a device. Keyframes must be ordered by From.
type Script struct {
	keyframes []ScriptKeyframe
	length    int
}

// NewScript creates a script that runs for length ticks.
func NewScript(length int, keyframes ...ScriptKeyframe) *Script {
	return &Script{
		keyframes: keyframes,
		length:    length,
	}
}

// InputAt returns the scripted input for the given tick, and false once the
// script has run out.
func (s *Script) InputAt(tick int) (InputState, bool) {
	if tick >= s.length {
		return InputState{}, false
	}

	var in InputState
	for _, kf := range s.keyframes {
		if kf.From > tick {
			break
		}
		in = kf.Input
	}
	return in, true
}

// Length returns the script duration in ticks.
func (s *Script) Length() int {
	return s.length
}
