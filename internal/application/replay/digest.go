package replay

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// StateDigest folds committed tick states into a streaming xxhash. Two runs
// of the same world with the same input and dt sequences produce the same
// digest, which is how replay verification detects divergence.
type StateDigest struct {
	h *xxhash.Digest
}

// NewStateDigest creates an empty digest.
func NewStateDigest() *StateDigest {
	return &StateDigest{h: xxhash.New()}
}

// Fold mixes one committed tick state into the digest. Float bits are
// written verbatim, so the check is bit-for-bit, not tolerance-based.
func (d *StateDigest) Fold(position, velocity mgl64.Vec2, angular, orientation float64, grounded bool) {
	var buf [49]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(position.X()))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(position.Y()))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(velocity.X()))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(velocity.Y()))
	binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(angular))
	binary.LittleEndian.PutUint64(buf[40:], math.Float64bits(orientation))
	if grounded {
		buf[48] = 1
	}
	_, _ = d.h.Write(buf[:])
}

// Sum returns the digest of everything folded so far as a hex string.
func (d *StateDigest) Sum() string {
	return fmt.Sprintf("%016x", d.h.Sum64())
}
