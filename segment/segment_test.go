package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeNumeric(t *testing.T) {
	seg, ok := MakeNumeric("12345")
	assert.True(t, ok)
	assert.Equal(t, Numeric, seg.Kind)
	assert.Equal(t, 5, seg.NumChars())

	_, ok = MakeNumeric("12a45")
	assert.False(t, ok)
}

func TestMakeAlphanumeric(t *testing.T) {
	seg, ok := MakeAlphanumeric("HELLO")
	assert.True(t, ok)
	assert.Equal(t, Alphanumeric, seg.Kind)

	_, ok = MakeAlphanumeric("hello")
	assert.False(t, ok)
}

func TestMakeBytes(t *testing.T) {
	seg := MakeBytes([]byte{1, 2, 3})
	assert.Equal(t, Bytes, seg.Kind)
	assert.Equal(t, 3, seg.NumChars())
}

func TestMakeBytesCopiesInput(t *testing.T) {
	octets := []byte{1, 2, 3}
	seg := MakeBytes(octets)
	octets[0] = 0xFF
	assert.Equal(t, byte(1), seg.Octets[0])
}

func TestMakeKanji(t *testing.T) {
	seg, ok := MakeKanji("点")
	assert.True(t, ok)
	assert.Equal(t, Kanji, seg.Kind)
	assert.Equal(t, 1, seg.NumChars())

	_, ok = MakeKanji("A")
	assert.False(t, ok)
}

func TestPayloadBitsNumeric(t *testing.T) {
	assert.Equal(t, 0, payloadBits(Numeric, 0))
	assert.Equal(t, 4, payloadBits(Numeric, 1))
	assert.Equal(t, 7, payloadBits(Numeric, 2))
	assert.Equal(t, 10, payloadBits(Numeric, 3))
	assert.Equal(t, 20, payloadBits(Numeric, 6))
}

func TestPayloadBitsAlphanumeric(t *testing.T) {
	assert.Equal(t, 0, payloadBits(Alphanumeric, 0))
	assert.Equal(t, 6, payloadBits(Alphanumeric, 1))
	assert.Equal(t, 11, payloadBits(Alphanumeric, 2))
}

func TestSegmentBitsIncludesHeader(t *testing.T) {
	got := segmentBits(Numeric, 1, 3)
	assert.Equal(t, 4+10+10, got)
}
