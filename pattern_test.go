package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskInvertPattern0(t *testing.T) {
	assert.True(t, maskInvert(0, 0, 0))
	assert.False(t, maskInvert(0, 0, 1))
	assert.True(t, maskInvert(0, 1, 1))
}

func TestMaskInvertPattern1(t *testing.T) {
	assert.True(t, maskInvert(1, 0, 5))
	assert.False(t, maskInvert(1, 1, 5))
}

func TestMaskInvertAllPatternsDefined(t *testing.T) {
	for p := Pattern(0); p < 8; p++ {
		assert.NotPanics(t, func() { maskInvert(p, 3, 4) })
	}
}

func TestMaskInvertPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { maskInvert(8, 0, 0) })
	assert.Panics(t, func() { maskInvert(-1, 0, 0) })
}

func TestPatternAutoIsNegative(t *testing.T) {
	assert.Equal(t, Pattern(-1), PatternAuto)
}
