package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFormatBits(t *testing.T) {
	assert.Equal(t, uint32(1), LevelL.formatBits())
	assert.Equal(t, uint32(0), LevelM.formatBits())
	assert.Equal(t, uint32(3), LevelQ.formatBits())
	assert.Equal(t, uint32(2), LevelH.formatBits())
}

func TestLevelFromFormatBitsRoundTrip(t *testing.T) {
	for _, l := range []Level{LevelL, LevelM, LevelQ, LevelH} {
		got, ok := levelFromFormatBits(l.formatBits())
		assert.True(t, ok)
		assert.Equal(t, l, got)
	}
}

func TestLevelFromFormatBitsRejectsInvalid(t *testing.T) {
	_, ok := levelFromFormatBits(9)
	assert.False(t, ok)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "L", LevelL.String())
	assert.Equal(t, "M", LevelM.String())
	assert.Equal(t, "Q", LevelQ.String())
	assert.Equal(t, "H", LevelH.String())
}

func TestLevelFromString(t *testing.T) {
	for _, name := range []string{"L", "l", "M", "m", "Q", "q", "H", "h"} {
		_, ok := LevelFromString(name)
		assert.True(t, ok, "expected %q to parse", name)
	}
	_, ok := LevelFromString("X")
	assert.False(t, ok)
}
