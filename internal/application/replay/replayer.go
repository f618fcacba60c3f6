package replay

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Replayer plays a recording's frames back in order.
type Replayer struct {
	data  Recording
	frame int
}

// NewReplayer creates a new replayer from a recording.
func NewReplayer(data Recording) *Replayer {
	return &Replayer{data: data}
}

// Load reads a recording from a file.
func Load(filename string) (*Recording, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open recording file")
	}
	defer func() { _ = file.Close() }()

	var data Recording
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode recording")
	}

	return &data, nil
}

// Next returns the next frame and advances, or false at the end.
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return Frame{}, false
	}

	f := r.data.Frames[r.frame]
	r.frame++
	return f, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// World returns the world name the recording was made against.
func (r *Replayer) World() string {
	return r.data.World
}

// Digest returns the recorded state digest.
func (r *Replayer) Digest() string {
	return r.data.Digest
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestRecording creates a recording for testing: n idle frames at a
// fixed timestep.
func CreateTestRecording(frames int, dt float64) Recording {
	data := Recording{
		Version: "1.0",
		ID:      "00000000-0000-0000-0000-000000000000",
		World:   "test",
		Created: "2026-01-01T00:00:00Z",
		Frames:  make([]Frame, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = Frame{F: i, DT: dt}
	}

	return data
}
