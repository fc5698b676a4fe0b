package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitReaderReadsMSBFirst(t *testing.T) {
	r := newBitReader([]byte{0b10110100})
	v, err := r.readBits(4)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0b1011), v)
	v, err = r.readBits(4)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0b0100), v)
}

func TestBitReaderCrossesByteBoundary(t *testing.T) {
	r := newBitReader([]byte{0xFF, 0x00})
	v, err := r.readBits(12)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xFF0), v)
}

func TestBitReaderTruncatedErrors(t *testing.T) {
	r := newBitReader([]byte{0x01})
	_, err := r.readBits(9)
	assert.Error(t, err)
}

func TestBitReaderRemaining(t *testing.T) {
	r := newBitReader([]byte{0x00, 0x00})
	assert.Equal(t, 16, r.remaining())
	_, err := r.readBits(5)
	assert.NoError(t, err)
	assert.Equal(t, 11, r.remaining())
}
