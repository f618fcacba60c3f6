package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RecordedInput is the per-tick input the recorder captures.
type RecordedInput struct {
	Left  bool
	Right bool
	Jump  bool
}

// Recorder captures input frames and the per-tick state digest of a running
// session for later playback and verification.
type Recorder struct {
	data      Recording
	digest    *StateDigest
	recording bool
	frame     int
}

// NewRecorder creates a recorder for the named world. Each recording gets a
// fresh session id.
func NewRecorder(world string) *Recorder {
	return &Recorder{
		data: Recording{
			Version: "1.0",
			ID:      uuid.New().String(),
			World:   world,
			Created: time.Now().Format(time.RFC3339),
			Frames:  make([]Frame, 0, 3600), // ~1 minute at 60 ticks/s
		},
		digest:    NewStateDigest(),
		recording: true,
	}
}

// RecordFrame records a single tick's input and timestep.
func (r *Recorder) RecordFrame(input RecordedInput, dt float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, Frame{
		F:  r.frame,
		DT: dt,
		L:  input.Left,
		R:  input.Right,
		J:  input.Jump,
	})
	r.frame++
}

// RecordState folds the committed tick state into the recording's digest.
func (r *Recorder) RecordState(position, velocity mgl64.Vec2, angular, orientation float64, grounded bool) {
	if !r.recording {
		return
	}
	r.digest.Fold(position, velocity, angular, orientation, grounded)
}

// Stop stops recording and seals the digest.
func (r *Recorder) Stop() {
	if !r.recording {
		return
	}
	r.recording = false
	r.data.Digest = r.digest.Sum()
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data seals the recording if needed and returns it.
func (r *Recorder) Data() Recording {
	r.Stop()
	return r.data
}

// Save seals the recording and writes it to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}
	r.Stop()

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create recording file")
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return errors.Wrap(err, "failed to encode recording")
	}

	return nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("recording_%s.json", time.Now().Format("20060102_150405"))
}
