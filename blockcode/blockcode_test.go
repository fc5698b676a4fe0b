package blockcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFormatRecoversExactly(t *testing.T) {
	for level := uint32(0); level < 4; level++ {
		for pattern := uint32(0); pattern < 8; pattern++ {
			bits := EncodeFormat(level, pattern)
			gotLevel, gotPattern, ok := RecoverFormat(bits)
			assert.True(t, ok)
			assert.Equal(t, level, gotLevel)
			assert.Equal(t, pattern, gotPattern)
		}
	}
}

func TestRecoverFormatCorrectsUpToThreeBitErrors(t *testing.T) {
	clean := EncodeFormat(2, 5)
	for mask := uint32(0); mask < 1<<15; mask++ {
		if popcount(mask) > 3 {
			continue
		}
		noisy := clean ^ mask
		level, pattern, ok := RecoverFormat(noisy)
		assert.True(t, ok, "error pattern %015b should correct", mask)
		assert.Equal(t, uint32(2), level)
		assert.Equal(t, uint32(5), pattern)
	}
}

func TestEncodeVersionRecoversExactly(t *testing.T) {
	for v := uint32(7); v <= 40; v++ {
		bits := EncodeVersion(v)
		got, ok := RecoverVersion(bits)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestRecoverVersionCorrectsUpToThreeBitErrors(t *testing.T) {
	clean := EncodeVersion(23)
	noisy := clean
	for bit := uint(0); bit < 3; bit++ {
		noisy ^= 1 << bit // One, then two, then three flipped bits.
		got, ok := RecoverVersion(noisy)
		assert.True(t, ok)
		assert.Equal(t, uint32(23), got)
	}
}

func TestEncodeFormatRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { EncodeFormat(4, 0) })
	assert.Panics(t, func() { EncodeFormat(0, 8) })
}

func TestEncodeVersionRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { EncodeVersion(0) })
	assert.Panics(t, func() { EncodeVersion(41) })
}
