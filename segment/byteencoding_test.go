package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF8RoundTrip(t *testing.T) {
	octets, ok := UTF8.Encode('€')
	assert.True(t, ok)
	decoded, err := UTF8.Decode(octets)
	assert.NoError(t, err)
	assert.Equal(t, "€", decoded)
}

func TestISO88591RejectsOutOfRepertoire(t *testing.T) {
	_, ok := ISO88591.Encode('€') // Not representable in Latin-1.
	assert.False(t, ok)
}

func TestISO88597EncodesGreek(t *testing.T) {
	octets, ok := ISO88597.Encode('α')
	assert.True(t, ok)
	assert.Len(t, octets, 1)
}

func TestByteEncodingByName(t *testing.T) {
	enc, ok := ByteEncodingByName("ISO-8859-1")
	assert.True(t, ok)
	assert.Equal(t, "ISO-8859-1", enc.Name())

	enc, ok = ByteEncodingByName("")
	assert.True(t, ok)
	assert.Equal(t, "UTF-8", enc.Name())

	_, ok = ByteEncodingByName("nonsense")
	assert.False(t, ok)
}

func TestECIValueRoundTrip(t *testing.T) {
	for _, enc := range []ByteEncoding{UTF8, ISO88591, ISO88597} {
		value, ok := ECIValue(enc)
		assert.True(t, ok)
		got, ok := EncodingForECI(value)
		assert.True(t, ok)
		assert.Equal(t, enc.Name(), got.Name())
	}
}
