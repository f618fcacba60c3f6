package replay

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordFrames(t *testing.T) {
	rec := NewRecorder("hills")
	require.True(t, rec.IsRecording())

	rec.RecordFrame(RecordedInput{Right: true}, 1.0/60.0)
	rec.RecordFrame(RecordedInput{Right: true, Jump: true}, 1.0/60.0)
	rec.RecordFrame(RecordedInput{}, 1.0/60.0)

	assert.Equal(t, 3, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "hills", data.World)
	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err, "recording id must be a valid uuid")

	assert.Equal(t, Frame{F: 0, DT: 1.0 / 60.0, R: true}, data.Frames[0])
	assert.Equal(t, Frame{F: 1, DT: 1.0 / 60.0, R: true, J: true}, data.Frames[1])
	assert.Equal(t, Frame{F: 2, DT: 1.0 / 60.0}, data.Frames[2])
}

func TestRecorder_StopSealsDigest(t *testing.T) {
	rec := NewRecorder("flat")
	rec.RecordFrame(RecordedInput{}, 0.016)
	rec.RecordState(mgl64.Vec2{1, 2}, mgl64.Vec2{0.5, -1}, 0.25, 0.1, true)
	rec.Stop()

	assert.False(t, rec.IsRecording())
	data := rec.Data()
	assert.NotEmpty(t, data.Digest)

	// Folding the same state by hand must reproduce the sealed digest.
	d := NewStateDigest()
	d.Fold(mgl64.Vec2{1, 2}, mgl64.Vec2{0.5, -1}, 0.25, 0.1, true)
	assert.Equal(t, d.Sum(), data.Digest)

	// Recording after Stop is ignored.
	rec.RecordFrame(RecordedInput{Left: true}, 0.016)
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("hills")
	rec.RecordFrame(RecordedInput{Left: true}, 0.02)
	rec.RecordFrame(RecordedInput{Jump: true}, 0.02)
	rec.RecordState(mgl64.Vec2{3, 4}, mgl64.Vec2{}, 0, 0, false)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().ID, loaded.ID)
	assert.Equal(t, rec.Data().Digest, loaded.Digest)
	require.Len(t, loaded.Frames, 2)
	assert.True(t, loaded.Frames[0].L)
	assert.True(t, loaded.Frames[1].J)
	assert.Equal(t, 0.02, loaded.Frames[1].DT)
}

func TestRecorder_SaveEmptyFails(t *testing.T) {
	rec := NewRecorder("hills")
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open recording file")
}

func TestReplayer_Playback(t *testing.T) {
	data := CreateTestRecording(3, 0.016)
	data.Frames[1].R = true

	r := NewReplayer(data)
	assert.Equal(t, 3, r.TotalFrames())
	assert.Equal(t, "test", r.World())

	f, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 0, f.F)
	assert.False(t, f.R)

	f, ok = r.Next()
	require.True(t, ok)
	assert.True(t, f.R)

	_, ok = r.Next()
	require.True(t, ok)
	_, ok = r.Next()
	assert.False(t, ok, "playback ends after the last frame")
	assert.Equal(t, 3, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	f, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, 0, f.F)
}

func TestStateDigest_Deterministic(t *testing.T) {
	a, b := NewStateDigest(), NewStateDigest()
	for i := 0; i < 100; i++ {
		p := mgl64.Vec2{float64(i), float64(i) * 0.5}
		v := mgl64.Vec2{-float64(i), 1}
		a.Fold(p, v, float64(i)*0.1, 0.3, i%2 == 0)
		b.Fold(p, v, float64(i)*0.1, 0.3, i%2 == 0)
	}
	assert.Equal(t, a.Sum(), b.Sum())
}

func TestStateDigest_SensitiveToState(t *testing.T) {
	a, b := NewStateDigest(), NewStateDigest()
	a.Fold(mgl64.Vec2{1, 2}, mgl64.Vec2{}, 0, 0, false)
	b.Fold(mgl64.Vec2{1, 2.0000001}, mgl64.Vec2{}, 0, 0, false)
	assert.NotEqual(t, a.Sum(), b.Sum(), "any state divergence must change the digest")

	c, d := NewStateDigest(), NewStateDigest()
	c.Fold(mgl64.Vec2{1, 2}, mgl64.Vec2{}, 0, 0, false)
	d.Fold(mgl64.Vec2{1, 2}, mgl64.Vec2{}, 0, 0, true)
	assert.NotEqual(t, c.Sum(), d.Sum())
}
