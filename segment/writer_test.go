package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendNumericRoundTrip(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendNumeric("01234567"))
	codewords, ok := w.ToCodewords(26)
	assert.True(t, ok)
	assert.Len(t, codewords, 26)

	result, err := Parse(codewords, 1, UTF8)
	assert.NoError(t, err)
	assert.Equal(t, "01234567", result.Text)
}

func TestAppendAlphanumericRoundTrip(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendAlphanumeric("HELLO WORLD"))
	codewords, ok := w.ToCodewords(19)
	assert.True(t, ok)

	result, err := Parse(codewords, 1, UTF8)
	assert.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", result.Text)
}

func TestAppendBytesRoundTrip(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendBytes([]byte("Hello, world!")))
	codewords, ok := w.ToCodewords(16)
	assert.True(t, ok)

	result, err := Parse(codewords, 1, UTF8)
	assert.NoError(t, err)
	assert.Equal(t, "Hello, world!", result.Text)
}

func TestAppendNumericRejectsNonDigits(t *testing.T) {
	w := NewWriter(1)
	assert.Error(t, w.AppendNumeric("12a4"))
}

func TestAppendAlphanumericRejectsLowercase(t *testing.T) {
	w := NewWriter(1)
	assert.Error(t, w.AppendAlphanumeric("hello"))
}

func TestToCodewordsRejectsOverflow(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendBytes(make([]byte, 100)))
	_, ok := w.ToCodewords(10)
	assert.False(t, ok)
}

func TestToCodewordsPadsWithAlternatingBytes(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendNumeric("1"))
	codewords, ok := w.ToCodewords(5)
	assert.True(t, ok)
	assert.Len(t, codewords, 5)
	// After the short numeric segment, terminator, and byte padding, the
	// remaining capacity alternates the two standard pad codewords.
	assert.Equal(t, byte(0xEC), codewords[len(codewords)-2])
	assert.Equal(t, byte(0x11), codewords[len(codewords)-1])
}

func TestECIDesignatorRoundTrip(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendECIDesignator(9)) // ISO-8859-7
	assert.NoError(t, w.AppendBytes([]byte{0x41}))
	codewords, ok := w.ToCodewords(10)
	assert.True(t, ok)

	result, err := Parse(codewords, 1, UTF8)
	assert.NoError(t, err)
	assert.Equal(t, []uint32{9}, result.ECI)
}

func TestStructuredAppendRoundTrip(t *testing.T) {
	w := NewWriter(1)
	assert.NoError(t, w.AppendStructuredAppendMarker(1, 3, 0x42))
	assert.NoError(t, w.AppendNumeric("5"))
	codewords, ok := w.ToCodewords(10)
	assert.True(t, ok)

	result, err := Parse(codewords, 1, UTF8)
	assert.NoError(t, err)
	assert.NotNil(t, result.StructuredAppend)
	assert.Equal(t, 1, result.StructuredAppend.Index)
	assert.Equal(t, 3, result.StructuredAppend.Count)
	assert.Equal(t, byte(0x42), result.StructuredAppend.Parity)
	assert.Equal(t, "5", result.Text)
}
